package repository

import (
	"context"
	"database/sql"

	"github.com/locvowork/crm_admin/internal/domain"
	"github.com/locvowork/crm_admin/internal/logger"
)

// Store is the sole owner of the store connection. Every statement the
// application runs goes through it, and every failure comes back as a
// *domain.RepositoryExecutionError.
type Store struct {
	db *sql.DB
}

// NewStore wraps an already connected database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Row is one result row keyed by column name.
type Row map[string]interface{}

// Query runs a query and returns every row as a Row, in store order.
// Text the driver hands back as []byte is converted to string.
func (s *Store) Query(ctx context.Context, op, query string, args ...interface{}) ([]Row, error) {
	var (
		cols []string
		out  []Row
	)
	err := s.QueryEach(ctx, op, query, args, func(rows *sql.Rows) error {
		if cols == nil {
			var err error
			if cols, err = rows.Columns(); err != nil {
				return err
			}
		}
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryEach runs a query and hands each row to scan, in store order.
func (s *Store) QueryEach(ctx context.Context, op, query string, args []interface{}, scan func(*sql.Rows) error) error {
	logger.DebugLog(ctx, "%s: %s %v", op, query, args)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return &domain.RepositoryExecutionError{Op: op, Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return &domain.RepositoryExecutionError{Op: op, Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return &domain.RepositoryExecutionError{Op: op, Err: err}
	}
	return nil
}

// Exec runs a write statement and returns the number of affected rows.
func (s *Store) Exec(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	logger.DebugLog(ctx, "%s: %s %v", op, query, args)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &domain.RepositoryExecutionError{Op: op, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &domain.RepositoryExecutionError{Op: op, Err: err}
	}
	return n, nil
}

// Ping checks the connection is still usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &domain.RepositoryExecutionError{Op: "ping", Err: err}
	}
	return nil
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.db.Close()
}
