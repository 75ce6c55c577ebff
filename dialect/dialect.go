// Package dialect names the database dialects the query layer can render
// for. The constants double as database/sql driver names for the drivers
// registered by callers.
package dialect

// Database dialects.
const (
	// MySQL is the MySQL/MariaDB dialect.
	MySQL = "mysql"

	// SQLite is the SQLite dialect.
	SQLite = "sqlite"

	// Postgres is the PostgreSQL dialect.
	Postgres = "postgres"
)
