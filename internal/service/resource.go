package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
	"github.com/MKhiriev/go-fit-keeper/internal/store"
)

// resource serializes access to one record map. Reads share the lock; every
// mutation holds it exclusively across its check-then-write sequence, so a
// failed check never leaves a partial write behind.
type resource[T any] struct {
	kind    string
	records store.Map[T]
	mu      sync.RWMutex
}

func newResource[T any](kind string, records store.Map[T]) *resource[T] {
	return &resource[T]{
		kind:    kind,
		records: records,
	}
}

func (r *resource[T]) notFound(id string) error {
	return fmt.Errorf("%s with id %q %w", r.kind, id, ErrNotFound)
}

func (r *resource[T]) internal(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Err(err).
		Str("func", "resource.internal").
		Str("resource", r.kind).
		Str("op", op).
		Msg("storage failure")
	return fmt.Errorf("%w: %s %s: %w", ErrInternal, op, r.kind, err)
}

// lookup reads id; the caller holds r.mu.
func (r *resource[T]) lookup(ctx context.Context, id string) (T, error) {
	record, ok, err := r.records.Get(ctx, id)
	if err != nil {
		return record, r.internal(ctx, "get", err)
	}
	if !ok {
		return record, r.notFound(id)
	}
	return record, nil
}

func (r *resource[T]) get(ctx context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lookup(ctx, id)
}

// create inserts the record returned by build under id. build runs under
// the lock; when it fails nothing is written.
func (r *resource[T]) create(ctx context.Context, id string, build func() (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := build()
	if err != nil {
		var zero T
		return zero, err
	}

	if err = r.records.Insert(ctx, id, record); err != nil {
		var zero T
		return zero, r.internal(ctx, "insert", err)
	}
	return record, nil
}

// update applies change to the record stored under id and writes the result
// back under the same key.
func (r *resource[T]) update(ctx context.Context, id string, change func(T) T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.lookup(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	updated := change(current)
	if err = r.records.Insert(ctx, id, updated); err != nil {
		var zero T
		return zero, r.internal(ctx, "update", err)
	}
	return updated, nil
}

func (r *resource[T]) remove(ctx context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, ok, err := r.records.Remove(ctx, id)
	if err != nil {
		var zero T
		return zero, r.internal(ctx, "remove", err)
	}
	if !ok {
		var zero T
		return zero, r.notFound(id)
	}
	return removed, nil
}

// filter returns the records for which keep reports true, in key order.
// A nil keep returns every record. The result is never nil.
func (r *resource[T]) filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.records.Values(ctx)
	if err != nil {
		return nil, r.internal(ctx, "list", err)
	}

	result := make([]T, 0, len(records))
	for _, record := range records {
		if keep == nil || keep(record) {
			result = append(result, record)
		}
	}
	return result, nil
}
