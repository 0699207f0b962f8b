package dialect

import (
	"fmt"
	"strings"
)

type Oracle struct{}

func (d *Oracle) Name() string { return "oracle" }

func (d *Oracle) TablesQuery() string {
	// USER_TABLES lists tables owned by the connected user; the dummy clause
	// consumes the schema bind that other dialects need.
	return `SELECT TABLE_NAME AS table_name
FROM USER_TABLES
WHERE :1 IS NOT NULL
ORDER BY TABLE_NAME`
}

func (d *Oracle) ColumnsQuery() string {
	// NUMBER splits on scale: a nonzero scale means a true decimal, scale
	// zero behaves like an integer.
	return `SELECT
    t.COLUMN_NAME AS column_name,
    CASE
        WHEN t.DATA_TYPE = 'NUMBER' AND COALESCE(t.DATA_SCALE, 0) > 0 THEN 'DECIMAL'
        WHEN t.DATA_TYPE = 'NUMBER' THEN 'INTEGER'
        ELSE t.DATA_TYPE
    END AS data_type,
    t.DATA_TYPE AS column_type,
    CASE WHEN t.NULLABLE = 'Y' THEN 'YES' ELSE 'NO' END AS is_nullable,
    CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 'PRI' ELSE '' END AS column_key,
    CASE WHEN t.IDENTITY_COLUMN = 'YES' THEN 'auto_increment' ELSE '' END AS extra,
    t.DATA_DEFAULT AS column_default,
    t.COLUMN_ID AS ordinal_position
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON p.TABLE_NAME = t.TABLE_NAME AND p.COLUMN_NAME = t.COLUMN_NAME
WHERE :1 IS NOT NULL AND t.TABLE_NAME = :2
ORDER BY t.COLUMN_ID`
}

func (d *Oracle) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *Oracle) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *Oracle) DefaultSchema(input string) string {
	if input == "" {
		return "USER"
	}
	return input
}

func (d *Oracle) MigrationsTableDDL(table string) string {
	return fmt.Sprintf(`BEGIN
    EXECUTE IMMEDIATE 'CREATE TABLE %s (
        name VARCHAR2(255) NOT NULL PRIMARY KEY,
        applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL
    )';
EXCEPTION WHEN OTHERS THEN
    IF SQLCODE != -955 THEN RAISE; END IF;
END;`, table)
}

func (d *Oracle) AppliedMigrationsQuery(table string) string {
	return fmt.Sprintf("SELECT name FROM %s ORDER BY name", table)
}

func (d *Oracle) InsertMigrationQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (name) VALUES (:1)", table)
}
