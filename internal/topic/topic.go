// Package topic holds the multiple-choice question record, the submission
// validator that guards it, and the create flow that persists it.
package topic

import (
	"strconv"
	"time"
)

// DefaultAuthor is recorded as created_by when no author is configured.
const DefaultAuthor = "子渡"

// Topic is one persisted multiple-choice question.
type Topic struct {
	ID          int64     `db:"id"`
	TopicName   string    `db:"topic_name"`
	TopicType   string    `db:"topic_type"`
	OptionA     string    `db:"option_a"`
	OptionB     string    `db:"option_b"`
	OptionC     string    `db:"option_c"`
	OptionD     string    `db:"option_d"`
	Answer      string    `db:"answer"`
	Explanation *string   `db:"explanation"`
	TopicYear   string    `db:"topic_year"`
	TopicMonth  string    `db:"topic_month"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// Defaults supplies the values a Topic gets when the submission does not
// carry them. Zero fields fall back to DefaultAuthor and time.Now.
type Defaults struct {
	Author string
	Now    func() time.Time
}

func (d Defaults) author() string {
	if d.Author == "" {
		return DefaultAuthor
	}
	return d.Author
}

func (d Defaults) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// NewTopic builds the record for a validated submission. Year and month are
// stored as their decimal text.
func NewTopic(sub Submission, d Defaults) Topic {
	t := Topic{
		TopicName:  sub.TopicName,
		TopicType:  sub.TopicType,
		OptionA:    sub.OptionA,
		OptionB:    sub.OptionB,
		OptionC:    sub.OptionC,
		OptionD:    sub.OptionD,
		Answer:     sub.Answer,
		TopicYear:  strconv.Itoa(sub.TopicYear),
		TopicMonth: strconv.Itoa(sub.TopicMonth),
		CreatedBy:  d.author(),
		CreatedAt:  d.now(),
	}
	if sub.Explanation != "" {
		explanation := sub.Explanation
		t.Explanation = &explanation
	}
	return t
}
