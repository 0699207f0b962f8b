package dialect

import (
	"fmt"
	"strings"
)

type Postgres struct{}

func (d *Postgres) Name() string { return "postgres" }

func (d *Postgres) TablesQuery() string {
	return `SELECT table_name AS table_name
FROM information_schema.tables
WHERE table_schema = $1 AND table_type = 'BASE TABLE'
ORDER BY table_name`
}

func (d *Postgres) ColumnsQuery() string {
	// udt_name (int4, timestamptz, jsonb, ...) is more precise than the
	// standard data_type, so it is surfaced as the native type name. The
	// column default doubles as the EXTRA channel: nextval(...) marks serial
	// columns the same way auto_increment does in MySQL.
	return `SELECT
    c.column_name AS column_name,
    c.udt_name AS data_type,
    c.data_type AS column_type,
    c.is_nullable AS is_nullable,
    (SELECT 'PRI'
     FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'PRIMARY KEY'
       AND kcu.table_schema = c.table_schema
       AND kcu.table_name = c.table_name
       AND kcu.column_name = c.column_name
     LIMIT 1) AS column_key,
    COALESCE(c.column_default, '') AS extra,
    c.column_default AS column_default,
    c.ordinal_position AS ordinal_position
FROM information_schema.columns c
WHERE c.table_schema = $1 AND c.table_name = $2
ORDER BY c.ordinal_position`
}

func (d *Postgres) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *Postgres) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *Postgres) DefaultSchema(input string) string {
	if input == "" {
		return "public"
	}
	return input
}

func (d *Postgres) MigrationsTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT NOT NULL PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, d.QuoteIdentifier(table))
}

func (d *Postgres) AppliedMigrationsQuery(table string) string {
	return fmt.Sprintf("SELECT name FROM %s ORDER BY name", d.QuoteIdentifier(table))
}

func (d *Postgres) InsertMigrationQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (name) VALUES ($1)", d.QuoteIdentifier(table))
}
