// Package cli holds the bulk entry points that create topics outside the web
// form. Every row goes through the same validation as a form submission.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"quiz-topics/internal/opentdb"
	"quiz-topics/internal/topic"
)

// Creator stores one validated submission.
type Creator interface {
	Create(ctx context.Context, sub topic.Submission) (topic.Topic, error)
}

// Fetcher loads raw trivia questions.
type Fetcher interface {
	FetchQuestions(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)
}

// formatErrors lists field errors in form order.
func formatErrors(errs topic.FieldErrors) string {
	parts := make([]string, 0, len(errs))
	for _, field := range topic.Fields {
		if msg, ok := errs[field.Name]; ok {
			parts = append(parts, field.Name+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

func printTopic(out io.Writer, t topic.Topic) {
	fmt.Fprintf(out, "#%d [%s] %s\n", t.ID, t.TopicType, t.TopicName)
	fmt.Fprintf(out, "  A. %s\n  B. %s\n  C. %s\n  D. %s\n", t.OptionA, t.OptionB, t.OptionC, t.OptionD)
	fmt.Fprintf(out, "  answer: %s\n", t.Answer)
}
