package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
)

// Map is a keyed durable map of records of type T.
//
// Implementations are safe for concurrent use. A single call is atomic, but
// sequences of calls are not; callers that check and then write hold their
// own lock around the sequence.
type Map[T any] interface {
	// Insert stores value under key, replacing any previous value.
	Insert(ctx context.Context, key string, value T) error

	// Get returns the value stored under key. The boolean is false when the
	// key is absent.
	Get(ctx context.Context, key string) (T, bool, error)

	// Remove deletes key and returns the value it held. The boolean is false
	// when the key was absent; nothing is changed in that case.
	Remove(ctx context.Context, key string) (T, bool, error)

	// Values returns every stored value in ascending key order.
	Values(ctx context.Context) ([]T, error)

	// Len returns the number of stored values.
	Len(ctx context.Context) (int, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
