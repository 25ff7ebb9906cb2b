package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"usertodo/infras/otel"
	"usertodo/infras/postgres"
	"usertodo/shared/constant"
	"usertodo/shared/dto"
	"usertodo/shared/logger"
)

var (
	errRequiredFilter = errors.New("required filter")
	errEmptyUpdate    = errors.New("nothing to update")
)

// Expr is written into the statement as-is instead of being bound, e.g. Expr("NOW()").
type Expr string

type column struct {
	name  string
	table string
}

type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       getColumns(tableName, reflect.TypeOf(zero)),
	}
}

// Insert writes one row and returns it as stored, defaults included.
func (repo *Repository[T]) Insert(ctx context.Context, values map[string]any) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query, args := repo.buildInsertQuery(values)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// Get returns the zero value of T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.getSelectQuery(), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// GetAll returns every matching row ordered by the primary column.
func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s.%s", repo.getSelectQuery(), repo.table, where, repo.table, repo.primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &models, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// Update overwrites the given columns on the matching row and returns it. The zero
// value of T means nothing matched.
func (repo *Repository[T]) Update(ctx context.Context, values map[string]any, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	var model T

	where, whereArgs := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return model, errRequiredFilter
	}

	query, args, err := repo.buildUpdateQuery(values, where)
	if err != nil {
		return model, err
	}

	maps.Copy(args, whereArgs)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// Delete removes the matching rows and reports how many were gone.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entitas, err)
	}

	return affected, nil
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.BuildWhereClause", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) buildInsertQuery(values map[string]any) (string, map[string]any) {
	if len(values) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", repo.table, repo.getReturningQuery()), map[string]any{}
	}

	columns := slices.Sorted(maps.Keys(values))
	placeholders := make([]string, 0, len(columns))
	args := map[string]any{}

	for _, col := range columns {
		if expr, ok := values[col].(Expr); ok {
			placeholders = append(placeholders, string(expr))

			continue
		}

		placeholders = append(placeholders, ":"+col)
		args[col] = values[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), repo.getReturningQuery())

	return query, args
}

func (repo *Repository[T]) buildUpdateQuery(values map[string]any, where string) (string, map[string]any, error) {
	if len(values) == 0 {
		return "", nil, errEmptyUpdate
	}

	updateField := []string{}
	args := map[string]any{}

	for _, col := range slices.Sorted(maps.Keys(values)) {
		if expr, ok := values[col].(Expr); ok {
			updateField = append(updateField, fmt.Sprintf("%s = %s", col, expr))

			continue
		}

		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
		args[col] = values[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s RETURNING %s", repo.table, strings.Join(updateField, ", "), where, repo.getReturningQuery())

	return query, args, nil
}

func (repo *Repository[T]) getSelectQuery() string {
	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		columns = append(columns, fmt.Sprintf("%s.%s", col.table, col.name))
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) getReturningQuery() string {
	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		columns = append(columns, col.name)
	}

	return strings.Join(columns, ", ")
}

func getColumns(table string, reflectType reflect.Type) []column {
	columns := []column{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(table, field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, column{name: dbTag, table: table})
	}

	return columns
}
