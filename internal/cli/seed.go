package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"quiz-topics/internal/topic"
)

type SeedReport struct {
	Fetched int
	Created int
	Skipped int
}

// Seed stores trivia questions as topics dated at now. Questions without
// exactly four choices, or that fail validation, are skipped.
func Seed(ctx context.Context, fetch Fetcher, svc Creator, out io.Writer, amount int, now time.Time) (SeedReport, error) {
	var report SeedReport

	rawQuestions, err := fetch.FetchQuestions(ctx, amount)
	if err != nil {
		return report, err
	}
	report.Fetched = len(rawQuestions)

	for idx, raw := range rawQuestions {
		values, ok := topic.TriviaValues(raw, now, nil)
		if !ok {
			report.Skipped++
			fmt.Fprintf(out, "question %d skipped: expected 4 choices, got %d\n", idx+1, len(raw.IncorrectAnswers)+1)
			continue
		}

		result := topic.Validate(values)
		if !result.Valid() {
			report.Skipped++
			fmt.Fprintf(out, "question %d skipped: %s\n", idx+1, formatErrors(result.Errors))
			continue
		}

		created, err := svc.Create(ctx, result.Submission)
		if err != nil {
			return report, fmt.Errorf("question %d: %w", idx+1, err)
		}
		report.Created++
		printTopic(out, created)
	}

	fmt.Fprintf(out, "seeded %d of %d questions, %d skipped\n", report.Created, report.Fetched, report.Skipped)
	return report, nil
}
