package dialect

import (
	"fmt"
	"strings"
)

type SQLite struct{}

func (d *SQLite) Name() string { return "sqlite" }

func (d *SQLite) TablesQuery() string {
	// SQLite has no schemas; the dummy clause consumes the schema bind the
	// reader passes for every dialect.
	return `SELECT name AS table_name
FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND ?1 IS NOT NULL
ORDER BY name`
}

func (d *SQLite) ColumnsQuery() string {
	// pragma_table_info is the table-valued form of PRAGMA table_info. An
	// INTEGER single-column primary key aliases the rowid and auto-assigns,
	// which is the closest SQLite gets to auto_increment.
	return `SELECT
    p.name AS column_name,
    p.type AS data_type,
    p.type AS column_type,
    CASE WHEN p."notnull" = 0 THEN 'YES' ELSE 'NO' END AS is_nullable,
    CASE WHEN p.pk > 0 THEN 'PRI' ELSE '' END AS column_key,
    CASE WHEN p.pk = 1 AND lower(p.type) = 'integer' THEN 'auto_increment' ELSE '' END AS extra,
    p.dflt_value AS column_default,
    p.cid + 1 AS ordinal_position
FROM pragma_table_info(?2) p
WHERE ?1 IS NOT NULL
ORDER BY p.cid`
}

func (d *SQLite) Placeholder(index int) string {
	return fmt.Sprintf("?%d", index+1)
}

func (d *SQLite) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *SQLite) DefaultSchema(input string) string {
	if input == "" {
		return "main"
	}
	return input
}

func (d *SQLite) MigrationsTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT NOT NULL PRIMARY KEY,
    applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, d.QuoteIdentifier(table))
}

func (d *SQLite) AppliedMigrationsQuery(table string) string {
	return fmt.Sprintf("SELECT name FROM %s ORDER BY name", d.QuoteIdentifier(table))
}

func (d *SQLite) InsertMigrationQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (name) VALUES (?1)", d.QuoteIdentifier(table))
}
