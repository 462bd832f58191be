package topic

import (
	"context"
	"errors"
)

type Service struct {
	repo     Repository
	defaults Defaults
}

func NewService(repo Repository, defaults Defaults) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
	}
}

// Create builds a Topic from a validated submission and stores it. No retry
// is attempted on failure.
func (s *Service) Create(ctx context.Context, sub Submission) (Topic, error) {
	if s.repo == nil {
		return Topic{}, &StoreError{Kind: KindConnectivity, Op: "topic.create", Err: errors.New("repository is not configured")}
	}

	t := NewTopic(sub, s.defaults)
	if err := s.repo.Create(ctx, &t); err != nil {
		return Topic{}, err
	}
	return t, nil
}

// Ping reports whether the backing storage is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if s.repo == nil {
		return errors.New("repository is not configured")
	}
	return s.repo.Ping(ctx)
}
