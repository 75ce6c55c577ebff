package sql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rossjcooper/laravel-enum/dialect"
)

// Driver executes rendered statements against a database/sql connection.
type Driver struct {
	db      *sql.DB
	dialect string
}

// Open opens a connection for the given dialect and source, using the
// dialect name as the database/sql driver name.
func Open(dialect, source string) (*Driver, error) {
	db, err := sql.Open(dialect, source)
	if err != nil {
		return nil, err
	}
	return &Driver{db: db, dialect: dialect}, nil
}

// OpenDB wraps an existing database/sql.DB with a Driver.
func OpenDB(dialect string, db *sql.DB) *Driver {
	return &Driver{db: db, dialect: dialect}
}

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB {
	return d.db
}

// Dialect returns the driver's dialect. Suffixed names registered by
// instrumented drivers reduce to their base dialect.
func (d *Driver) Dialect() string {
	for _, name := range []string{dialect.MySQL, dialect.SQLite, dialect.Postgres} {
		if strings.HasPrefix(d.dialect, name) {
			return name
		}
	}
	return d.dialect
}

// Close closes the underlying connection.
func (d *Driver) Close() error {
	return d.db.Close()
}

// Query renders s for the driver's dialect and executes it.
func (d *Driver) Query(ctx context.Context, s *Selector) (*sql.Rows, error) {
	query, args := s.Dialect(d.Dialect()).Query()
	return d.db.QueryContext(ctx, query, args...)
}

// Exec executes a raw statement, e.g. table setup in tests and examples.
func (d *Driver) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.db.ExecContext(ctx, query, args...)
}
