// Package repositories provides the generic data-access layer. A single
// type-parameterized Repository serves every entity; per-entity table
// metadata lives in tables.go.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adewale/gradlink/internal/app/repositories/predicate"
	"github.com/adewale/gradlink/internal/pkg/apperrors"
)

// TableSpec binds an entity type to its table: name, column order, and how
// to extract values from an instance. Columns[0] must be the id column and
// Values must emit values in Columns order.
type TableSpec[T any] struct {
	Name    string
	Columns []string
	Values  func(*T) []any
	ID      func(*T) string
	Touch   func(*T)
}

// Repository is the generic repository over one entity type. It holds no
// cross-request state; the pool is scoped by the caller.
type Repository[T any] struct {
	db     *pgxpool.Pool
	spec   TableSpec[T]
	logger zerolog.Logger

	insertSQL string
	updateSQL string
	deleteSQL string
	selectSQL string
}

// New creates a repository bound to one entity table.
func New[T any](db *pgxpool.Pool, spec TableSpec[T], lgr zerolog.Logger) *Repository[T] {
	return &Repository[T]{
		db:        db,
		spec:      spec,
		logger:    lgr.With().Str("table", spec.Name).Logger(),
		insertSQL: buildInsertSQL(spec.Name, spec.Columns),
		updateSQL: buildUpdateSQL(spec.Name, spec.Columns),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", spec.Name, spec.Columns[0]),
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(spec.Columns, ", "), spec.Name),
	}
}

func buildInsertSQL(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

func buildUpdateSQL(table string, columns []string) string {
	// id is the first column; it becomes the trailing WHERE argument.
	assignments := make([]string, 0, len(columns)-1)
	for i, col := range columns[1:] {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(assignments, ", "), columns[0], len(columns))
}

func (r *Repository[T]) persistenceError(op string, err error) error {
	r.logger.Error().Err(err).Str("op", op).Msg("Store operation failed")
	return fmt.Errorf("%w: %s on %s: %v", apperrors.ErrPersistenceFailed, op, r.spec.Name, err)
}

// Add inserts one record. The returned bool reports whether the commit
// affected at least one row.
func (r *Repository[T]) Add(ctx context.Context, entity *T) (bool, error) {
	tag, err := r.db.Exec(ctx, r.insertSQL, r.spec.Values(entity)...)
	if err != nil {
		return false, r.persistenceError("insert", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddBatch inserts many records in a single persist operation.
func (r *Repository[T]) AddBatch(ctx context.Context, entities []*T) (bool, error) {
	if len(entities) == 0 {
		return false, nil
	}

	batch := &pgx.Batch{}
	for _, entity := range entities {
		batch.Queue(r.insertSQL, r.spec.Values(entity)...)
	}

	results := r.db.SendBatch(ctx, batch)
	var affected int64
	var execErr error
	for range entities {
		tag, err := results.Exec()
		if err != nil {
			execErr = err
			break
		}
		affected += tag.RowsAffected()
	}
	if closeErr := results.Close(); execErr == nil {
		execErr = closeErr
	}
	if execErr != nil {
		return false, r.persistenceError("batch insert", execErr)
	}
	return affected > 0, nil
}

// Update commits the full in-memory record by id; it does not diff. The
// updated timestamp is refreshed as part of the commit.
func (r *Repository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	r.spec.Touch(entity)

	values := r.spec.Values(entity)
	args := make([]any, 0, len(values))
	args = append(args, values[1:]...)
	args = append(args, values[0])

	tag, err := r.db.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return false, r.persistenceError("update", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a record and commits. No soft delete.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	tag, err := r.db.Exec(ctx, r.deleteSQL, r.spec.ID(entity))
	if err != nil {
		return false, r.persistenceError("delete", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID retrieves a record by identifier, or nil when absent.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.GetByPredicate(ctx, predicate.FieldEq(r.spec.Columns[0], id))
}

// GetByPredicate retrieves the first record matching the predicate, or nil.
// The predicate is normalized before translation.
func (r *Repository[T]) GetByPredicate(ctx context.Context, p predicate.Expr) (*T, error) {
	where, args, err := predicate.ToSQL(predicate.Normalize(p), 1)
	if err != nil {
		return nil, fmt.Errorf("translating predicate for %s: %w", r.spec.Name, err)
	}

	rows, err := r.db.Query(ctx, r.selectSQL+" WHERE "+where+" LIMIT 1", args...)
	if err != nil {
		return nil, r.persistenceError("select", err)
	}

	entity, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.persistenceError("select", err)
	}
	return entity, nil
}

// GetAllByPredicate retrieves every record matching the predicate. The
// predicate is normalized before translation.
func (r *Repository[T]) GetAllByPredicate(ctx context.Context, p predicate.Expr) ([]*T, error) {
	where, args, err := predicate.ToSQL(predicate.Normalize(p), 1)
	if err != nil {
		return nil, fmt.Errorf("translating predicate for %s: %w", r.spec.Name, err)
	}

	rows, err := r.db.Query(ctx, r.selectSQL+" WHERE "+where, args...)
	if err != nil {
		return nil, r.persistenceError("select", err)
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, r.persistenceError("select", err)
	}
	return entities, nil
}

// GetAll retrieves every record. Unpaginated by contract; table sizes in
// this domain are small.
func (r *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	rows, err := r.db.Query(ctx, r.selectSQL)
	if err != nil {
		return nil, r.persistenceError("select", err)
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, r.persistenceError("select", err)
	}
	return entities, nil
}

// GetAllNoTracking retrieves matching records as detached value copies, for
// read-only listing paths. A nil predicate selects every record. The copies
// are not meant to be fed back through Update.
func (r *Repository[T]) GetAllNoTracking(ctx context.Context, p predicate.Expr) ([]T, error) {
	query := r.selectSQL
	var args []any
	if p != nil {
		where, whereArgs, err := predicate.ToSQL(predicate.Normalize(p), 1)
		if err != nil {
			return nil, fmt.Errorf("translating predicate for %s: %w", r.spec.Name, err)
		}
		query += " WHERE " + where
		args = whereArgs
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.persistenceError("select", err)
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, r.persistenceError("select", err)
	}
	return entities, nil
}
