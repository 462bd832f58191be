package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-topics/internal/opentdb"
	"quiz-topics/internal/topic"
)

var seedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func rawQuestion(question string) opentdb.RawQuestion {
	return opentdb.RawQuestion{
		Category:         "Science &amp; Nature",
		Difficulty:       "easy",
		Question:         question,
		CorrectAnswer:    "Jupiter",
		IncorrectAnswers: []string{"Mars", "Venus", "Earth"},
	}
}

func optionText(t topic.Topic, letter string) string {
	switch letter {
	case "A":
		return t.OptionA
	case "B":
		return t.OptionB
	case "C":
		return t.OptionC
	case "D":
		return t.OptionD
	}
	return ""
}

func TestSeed_CreatesTopics(t *testing.T) {
	fetcher := &fakeFetcher{questions: []opentdb.RawQuestion{rawQuestion("Largest planet?"), rawQuestion("Biggest planet?")}}
	creator := &fakeCreator{}
	out := &bytes.Buffer{}

	report, err := Seed(context.Background(), fetcher, creator, out, 2, seedNow)

	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.amount)
	assert.Equal(t, SeedReport{Fetched: 2, Created: 2}, report)
	require.Len(t, creator.created, 2)

	got := creator.created[0]
	assert.Equal(t, "Largest planet?", got.TopicName)
	assert.Equal(t, "Science & Nature", got.TopicType)
	assert.Equal(t, "Jupiter", optionText(got, got.Answer))
	assert.Equal(t, "2025", got.TopicYear)
	assert.Equal(t, "3", got.TopicMonth)
	require.NotNil(t, got.Explanation)
	assert.Equal(t, "difficulty: easy", *got.Explanation)
	assert.Contains(t, out.String(), "seeded 2 of 2 questions, 0 skipped")
}

func TestSeed_SkipsNonFourChoiceQuestions(t *testing.T) {
	boolean := rawQuestion("Is Pluto a planet?")
	boolean.CorrectAnswer = "False"
	boolean.IncorrectAnswers = []string{"True"}
	fetcher := &fakeFetcher{questions: []opentdb.RawQuestion{boolean, rawQuestion("Largest planet?")}}
	creator := &fakeCreator{}
	out := &bytes.Buffer{}

	report, err := Seed(context.Background(), fetcher, creator, out, 2, seedNow)

	require.NoError(t, err)
	assert.Equal(t, SeedReport{Fetched: 2, Created: 1, Skipped: 1}, report)
	assert.Contains(t, out.String(), "question 1 skipped: expected 4 choices, got 2")
}

func TestSeed_FetchError(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("unexpected status code 503")}
	creator := &fakeCreator{}

	_, err := Seed(context.Background(), fetcher, creator, &bytes.Buffer{}, 5, seedNow)

	require.Error(t, err)
	assert.Empty(t, creator.created)
}

func TestSeed_StorageFailureStops(t *testing.T) {
	fetcher := &fakeFetcher{questions: []opentdb.RawQuestion{rawQuestion("a?"), rawQuestion("b?")}}
	creator := &fakeCreator{failAt: 1, err: errStore}

	report, err := Seed(context.Background(), fetcher, creator, &bytes.Buffer{}, 2, seedNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, topic.ErrStorage)
	assert.Equal(t, 0, report.Created)
}
