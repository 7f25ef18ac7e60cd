package storage

import (
	"strconv"
	"strings"
)

// dialect selects the SQL driver and placeholder style.
type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// dialectFor picks PostgreSQL for postgres:// URLs and SQLite otherwise.
func dialectFor(dsn string) dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return dialectPostgres
	}
	return dialectSQLite
}

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

func (d dialect) driver() string {
	if d == dialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
// Queries never contain a literal question mark.
func (d dialect) rebind(query string) string {
	if d != dialectPostgres {
		return query
	}

	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
