package dialect

import (
	"fmt"
	"strings"
)

type MySQL struct{}

func (d *MySQL) Name() string { return "mysql" }

func (d *MySQL) TablesQuery() string {
	return `SELECT TABLE_NAME AS table_name
FROM information_schema.TABLES
WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE'
ORDER BY TABLE_NAME`
}

func (d *MySQL) ColumnsQuery() string {
	// COLUMN_TYPE carries display width, so tinyint(1) survives for boolean
	// detection downstream.
	return `SELECT
    COLUMN_NAME AS column_name,
    DATA_TYPE AS data_type,
    COLUMN_TYPE AS column_type,
    IS_NULLABLE AS is_nullable,
    COLUMN_KEY AS column_key,
    EXTRA AS extra,
    COLUMN_DEFAULT AS column_default,
    ORDINAL_POSITION AS ordinal_position
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
ORDER BY ORDINAL_POSITION`
}

func (d *MySQL) Placeholder(index int) string {
	return "?"
}

func (d *MySQL) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MySQL) DefaultSchema(input string) string {
	return input // the connected database, resolved by the caller via SELECT DATABASE()
}

func (d *MySQL) MigrationsTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name VARCHAR(255) NOT NULL PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, d.QuoteIdentifier(table))
}

func (d *MySQL) AppliedMigrationsQuery(table string) string {
	return fmt.Sprintf("SELECT name FROM %s ORDER BY name", d.QuoteIdentifier(table))
}

func (d *MySQL) InsertMigrationQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", d.QuoteIdentifier(table))
}
