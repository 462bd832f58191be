package topic

import (
	"html"
	"math/rand"
	"net/url"
	"strconv"
	"time"

	"quiz-topics/internal/opentdb"
)

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

var optionFields = [4]string{FieldOptionA, FieldOptionB, FieldOptionC, FieldOptionD}

// TriviaValues converts an OpenTriviaDB question into raw form values ready
// for Validate. The answer is the letter of the correct option after
// shuffling. Questions that do not have exactly four choices are rejected.
func TriviaValues(raw opentdb.RawQuestion, at time.Time, shuffle ShuffleFunc) (url.Values, bool) {
	if len(raw.IncorrectAnswers) != len(optionFields)-1 {
		return nil, false
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(optionFields))
	for _, incorrect := range raw.IncorrectAnswers {
		choices = append(choices, choice{text: html.UnescapeString(incorrect)})
	}
	choices = append(choices, choice{
		text:      html.UnescapeString(raw.CorrectAnswer),
		isCorrect: true,
	})

	shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	values := url.Values{}
	values.Set(FieldTopicName, html.UnescapeString(raw.Question))
	values.Set(FieldTopicType, html.UnescapeString(raw.Category))
	for idx, candidate := range choices {
		values.Set(optionFields[idx], candidate.text)
		if candidate.isCorrect {
			values.Set(FieldAnswer, string(rune('A'+idx)))
		}
	}
	if raw.Difficulty != "" {
		values.Set(FieldExplanation, "difficulty: "+raw.Difficulty)
	}
	values.Set(FieldTopicYear, strconv.Itoa(at.Year()))
	values.Set(FieldTopicMonth, strconv.Itoa(int(at.Month())))

	return values, true
}
