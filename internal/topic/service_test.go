package topic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID    int64
	created   []Topic
	createErr error
	pingErr   error
}

func (f *fakeRepo) Create(_ context.Context, t *Topic) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	t.ID = f.nextID
	f.created = append(f.created, *t)
	return nil
}

func (f *fakeRepo) Ping(context.Context) error {
	return f.pingErr
}

func TestServiceCreateAppliesDefaultsAndStores(t *testing.T) {
	repo := &fakeRepo{}
	at := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	svc := NewService(repo, Defaults{Author: "editor", Now: func() time.Time { return at }})

	got, err := svc.Create(context.Background(), Validate(validValues()).Submission)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "editor", got.CreatedBy)
	assert.Equal(t, at, got.CreatedAt)
	require.Len(t, repo.created, 1)
	assert.Equal(t, got, repo.created[0])
}

func TestServiceCreateTwiceCreatesTwoRows(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, Defaults{})
	sub := Validate(validValues()).Submission

	first, err := svc.Create(context.Background(), sub)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), sub)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.created, 2)
}

func TestServiceCreatePropagatesStoreError(t *testing.T) {
	storeErr := &StoreError{Kind: KindConstraint, Op: "topic.create", Err: errors.New("NOT NULL constraint failed")}
	svc := NewService(&fakeRepo{createErr: storeErr}, Defaults{})

	_, err := svc.Create(context.Background(), Submission{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, KindConstraint, KindOf(err))
}

func TestServiceWithoutRepository(t *testing.T) {
	svc := NewService(nil, Defaults{})

	_, err := svc.Create(context.Background(), Submission{})
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, KindConnectivity, KindOf(err))
	assert.Error(t, svc.Ping(context.Background()))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.NotErrorIs(t, errors.New("boom"), ErrStorage)
}
