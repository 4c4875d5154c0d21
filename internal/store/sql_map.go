package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-fit-keeper/internal/logger"
)

// sqlMap is the relational implementation of [Map]. Every record is stored
// JSON-encoded in the value column of its table, keyed by the id column.
type sqlMap[T any] struct {
	db      *DB
	queries queryBuilder
	logger  *logger.Logger
}

// NewSQLMap returns a [Map] backed by table. The table must be one created by
// the migrations.
func NewSQLMap[T any](db *DB, table string, logger *logger.Logger) (Map[T], error) {
	if !slices.Contains(knownTables, table) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	logger.Debug().Str("table", table).Msg("creating sql map")
	return &sqlMap[T]{
		db:      db,
		queries: newQueryBuilder(table, db.placeholder),
		logger:  logger,
	}, nil
}

func (m *sqlMap[T]) Insert(ctx context.Context, key string, value T) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	query, args, err := m.queries.upsert(key, string(encoded))
	if err != nil {
		return err
	}

	if _, err = m.db.ExecContext(ctx, query, args...); err != nil {
		m.db.classify(log, "*sqlMap.Insert", err)
		log.Err(err).Str("func", "*sqlMap.Insert").Str("table", m.queries.table).Msg("error inserting record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (m *sqlMap[T]) Get(ctx context.Context, key string) (T, bool, error) {
	query, args, err := m.queries.selectOne(key)
	if err != nil {
		var zero T
		return zero, false, err
	}

	return m.scanOne(ctx, "*sqlMap.Get", query, args)
}

func (m *sqlMap[T]) Remove(ctx context.Context, key string) (T, bool, error) {
	query, args, err := m.queries.deleteOne(key)
	if err != nil {
		var zero T
		return zero, false, err
	}

	return m.scanOne(ctx, "*sqlMap.Remove", query, args)
}

func (m *sqlMap[T]) Values(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.queries.selectAll()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		m.db.classify(log, "*sqlMap.Values", err)
		log.Err(err).Str("func", "*sqlMap.Values").Str("table", m.queries.table).Msg("error listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]T, 0)
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		value, err := decodeRecord[T](raw)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

func (m *sqlMap[T]) Len(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.queries.count()
	if err != nil {
		return 0, err
	}

	var n int
	if err = m.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		m.db.classify(log, "*sqlMap.Len", err)
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}

// scanOne runs a query returning at most one value column.
func (m *sqlMap[T]) scanOne(ctx context.Context, fn, query string, args []any) (T, bool, error) {
	log := logger.FromContext(ctx)
	var zero T

	var raw string
	err := m.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		m.db.classify(log, fn, err)
		log.Err(err).Str("func", fn).Str("table", m.queries.table).Msg("error reading record")
		return zero, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	value, err := decodeRecord[T](raw)
	if err != nil {
		return zero, false, err
	}

	return value, true, nil
}

func decodeRecord[T any](raw string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}
	return value, nil
}
