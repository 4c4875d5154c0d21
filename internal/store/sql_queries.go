package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Tables of the four record maps. Each has the columns id and value.
const (
	TableUsers       = "users"
	TableUserInfos   = "user_infos"
	TableWorkouts    = "workouts"
	TableFoodIntakes = "food_intakes"
)

const (
	columnID    = "id"
	columnValue = "value"

	upsertSuffix    = "ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value"
	returningSuffix = "RETURNING value"
)

var knownTables = []string{TableUsers, TableUserInfos, TableWorkouts, TableFoodIntakes}

// queryBuilder renders the statements of a single record table.
type queryBuilder struct {
	table   string
	builder sq.StatementBuilderType
}

func newQueryBuilder(table string, placeholder sq.PlaceholderFormat) queryBuilder {
	return queryBuilder{
		table:   table,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (q queryBuilder) upsert(key, value string) (string, []any, error) {
	query, args, err := q.builder.
		Insert(q.table).
		Columns(columnID, columnValue).
		Values(key, value).
		Suffix(upsertSuffix).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (q queryBuilder) selectOne(key string) (string, []any, error) {
	query, args, err := q.builder.
		Select(columnValue).
		From(q.table).
		Where(sq.Eq{columnID: key}).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (q queryBuilder) deleteOne(key string) (string, []any, error) {
	query, args, err := q.builder.
		Delete(q.table).
		Where(sq.Eq{columnID: key}).
		Suffix(returningSuffix).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (q queryBuilder) selectAll() (string, []any, error) {
	query, args, err := q.builder.
		Select(columnValue).
		From(q.table).
		OrderBy(columnID).
		ToSql()
	return wrapBuildError(query, args, err)
}

func (q queryBuilder) count() (string, []any, error) {
	query, args, err := q.builder.
		Select("COUNT(*)").
		From(q.table).
		ToSql()
	return wrapBuildError(query, args, err)
}

func wrapBuildError(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
