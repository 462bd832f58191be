package topic

import (
	"context"
	"errors"
	"fmt"
)

// ErrStorage matches every error returned by a Repository write.
var ErrStorage = errors.New("topic storage failure")

// Kind classifies why a storage write failed.
type Kind string

const (
	KindConnectivity Kind = "connectivity"
	KindConstraint   Kind = "constraint"
	KindCanceled     Kind = "canceled"
	KindUnknown      Kind = "unknown"
)

// StoreError is the failure result of a Repository write. Err keeps the
// driver detail for operators; callers facing users only need the Kind.
type StoreError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStorage }

// KindOf returns the storage failure kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return KindUnknown
}

// Repository persists topics. Create runs in its own transaction: on success
// t.ID is set, on failure nothing is committed and the error is a *StoreError.
type Repository interface {
	Create(ctx context.Context, t *Topic) error
	Ping(ctx context.Context) error
}
