package topic

import (
	"net/url"
	"strconv"
	"strings"
)

// Submission field names, as posted by the form.
const (
	FieldTopicName   = "topic_name"
	FieldTopicType   = "topic_type"
	FieldOptionA     = "option_a"
	FieldOptionB     = "option_b"
	FieldOptionC     = "option_c"
	FieldOptionD     = "option_d"
	FieldAnswer      = "answer"
	FieldExplanation = "explanation"
	FieldTopicYear   = "topic_year"
	FieldTopicMonth  = "topic_month"
)

// Field error messages shown next to the offending input.
const (
	MsgRequired   = "this field is required"
	MsgNotInteger = "must be an integer"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindInteger
)

// FieldSpec describes one submission field.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
	kind     fieldKind
}

// Integer reports whether the field is coerced to an int.
func (f FieldSpec) Integer() bool { return f.kind == kindInteger }

// Fields lists every submission field in form order.
var Fields = []FieldSpec{
	{Name: FieldTopicName, Label: "Question", Required: true},
	{Name: FieldTopicType, Label: "Type", Required: true},
	{Name: FieldOptionA, Label: "Option A", Required: true},
	{Name: FieldOptionB, Label: "Option B", Required: true},
	{Name: FieldOptionC, Label: "Option C", Required: true},
	{Name: FieldOptionD, Label: "Option D", Required: true},
	{Name: FieldAnswer, Label: "Answer", Required: true},
	{Name: FieldExplanation, Label: "Explanation"},
	{Name: FieldTopicYear, Label: "Year", Required: true, kind: kindInteger},
	{Name: FieldTopicMonth, Label: "Month", Required: true, kind: kindInteger},
}

// Submission is a validated, trimmed and typed form submission.
type Submission struct {
	TopicName   string
	TopicType   string
	OptionA     string
	OptionB     string
	OptionC     string
	OptionD     string
	Answer      string
	Explanation string
	TopicYear   int
	TopicMonth  int
}

// FieldErrors maps a field name to its error message.
type FieldErrors map[string]string

// ValidationResult is the outcome of Validate. Submission is only meaningful
// when Valid reports true. Values always holds the raw input per field so a
// rejected form can be shown back unchanged.
type ValidationResult struct {
	Submission Submission
	Errors     FieldErrors
	Values     map[string]string
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a raw submission. It never fails: every problem is reported
// as a field error. Answer is not checked against the options and year/month
// are not range-checked.
func Validate(raw url.Values) ValidationResult {
	result := ValidationResult{
		Errors: make(FieldErrors),
		Values: make(map[string]string, len(Fields)),
	}

	text := make(map[string]string, len(Fields))
	ints := make(map[string]int, 2)

	for _, field := range Fields {
		value := raw.Get(field.Name)
		result.Values[field.Name] = value

		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if field.Required {
				result.Errors[field.Name] = MsgRequired
			}
			continue
		}

		if field.Integer() {
			n, err := strconv.Atoi(trimmed)
			if err != nil {
				result.Errors[field.Name] = MsgNotInteger
				continue
			}
			ints[field.Name] = n
			continue
		}
		text[field.Name] = trimmed
	}

	if !result.Valid() {
		return result
	}

	result.Submission = Submission{
		TopicName:   text[FieldTopicName],
		TopicType:   text[FieldTopicType],
		OptionA:     text[FieldOptionA],
		OptionB:     text[FieldOptionB],
		OptionC:     text[FieldOptionC],
		OptionD:     text[FieldOptionD],
		Answer:      text[FieldAnswer],
		Explanation: text[FieldExplanation],
		TopicYear:   ints[FieldTopicYear],
		TopicMonth:  ints[FieldTopicMonth],
	}
	return result
}
