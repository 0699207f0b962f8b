package dialect

import (
	"fmt"
	"strings"
)

type MSSQL struct{}

func (d *MSSQL) Name() string { return "sqlserver" }

func (d *MSSQL) TablesQuery() string {
	return `SELECT TABLE_NAME AS table_name
FROM INFORMATION_SCHEMA.TABLES
WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE'
ORDER BY TABLE_NAME`
}

func (d *MSSQL) ColumnsQuery() string {
	// IsIdentity is surfaced through the extra channel so auto-increment
	// detection stays uniform across dialects.
	return `SELECT
    c.COLUMN_NAME AS column_name,
    c.DATA_TYPE AS data_type,
    c.DATA_TYPE AS column_type,
    c.IS_NULLABLE AS is_nullable,
    CASE WHEN pk.COLUMN_NAME IS NOT NULL THEN 'PRI' ELSE '' END AS column_key,
    CASE WHEN COLUMNPROPERTY(OBJECT_ID(c.TABLE_SCHEMA + '.' + c.TABLE_NAME), c.COLUMN_NAME, 'IsIdentity') = 1
         THEN 'identity' ELSE '' END AS extra,
    c.COLUMN_DEFAULT AS column_default,
    c.ORDINAL_POSITION AS ordinal_position
FROM INFORMATION_SCHEMA.COLUMNS c
LEFT JOIN (
    SELECT kcu.TABLE_SCHEMA, kcu.TABLE_NAME, kcu.COLUMN_NAME
    FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
    JOIN INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
        ON kcu.CONSTRAINT_NAME = tc.CONSTRAINT_NAME
    WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
) pk ON pk.TABLE_SCHEMA = c.TABLE_SCHEMA AND pk.TABLE_NAME = c.TABLE_NAME AND pk.COLUMN_NAME = c.COLUMN_NAME
WHERE c.TABLE_SCHEMA = @p1 AND c.TABLE_NAME = @p2
ORDER BY c.ORDINAL_POSITION`
}

func (d *MSSQL) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQL) QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQL) DefaultSchema(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}

func (d *MSSQL) MigrationsTableDDL(table string) string {
	return fmt.Sprintf(`IF OBJECT_ID('%s', 'U') IS NULL
CREATE TABLE %s (
    name NVARCHAR(255) NOT NULL PRIMARY KEY,
    applied_at DATETIME2 NOT NULL DEFAULT SYSUTCDATETIME()
)`, table, d.QuoteIdentifier(table))
}

func (d *MSSQL) AppliedMigrationsQuery(table string) string {
	return fmt.Sprintf("SELECT name FROM %s ORDER BY name", d.QuoteIdentifier(table))
}

func (d *MSSQL) InsertMigrationQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (name) VALUES (@p1)", d.QuoteIdentifier(table))
}
