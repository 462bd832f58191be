package cli

import (
	"context"
	"errors"

	"quiz-topics/internal/opentdb"
	"quiz-topics/internal/topic"
)

type fakeCreator struct {
	created []topic.Topic
	failAt  int
	err     error
}

func (f *fakeCreator) Create(_ context.Context, sub topic.Submission) (topic.Topic, error) {
	if f.err != nil && len(f.created)+1 == f.failAt {
		return topic.Topic{}, f.err
	}
	t := topic.NewTopic(sub, topic.Defaults{})
	t.ID = int64(len(f.created) + 1)
	f.created = append(f.created, t)
	return t, nil
}

type fakeFetcher struct {
	questions []opentdb.RawQuestion
	err       error
	amount    int
}

func (f *fakeFetcher) FetchQuestions(_ context.Context, amount int) ([]opentdb.RawQuestion, error) {
	f.amount = amount
	return f.questions, f.err
}

var errStore = &topic.StoreError{Kind: topic.KindConnectivity, Op: "topic.create", Err: errors.New("connection refused")}
