package dialect

// Dialect abstracts database-specific operations: catalog introspection
// queries, placeholder style, identifier quoting, and the bookkeeping
// statements used by the migration runner.
//
// Catalog queries are read-only and must return a uniform column shape so the
// reader can scan them into one row struct regardless of dialect:
//
//	TablesQuery:  table_name                       (binds: schema)
//	ColumnsQuery: column_name, data_type, column_type, is_nullable,
//	              column_key, extra, column_default, ordinal_position
//	                                               (binds: schema, table)
type Dialect interface {
	// Name returns the driver name this dialect registers under.
	Name() string

	// Metadata queries (schema introspection)
	TablesQuery() string
	ColumnsQuery() string

	// Placeholder returns the bind marker for a zero-based index: ?, $1, @p1, :1.
	Placeholder(index int) string

	// QuoteIdentifier quotes a table or column name for literal use in SQL.
	QuoteIdentifier(name string) string

	// DefaultSchema resolves the schema to introspect when the caller gave
	// none (public, dbo, the connected database, ...).
	DefaultSchema(input string) string

	// Migration bookkeeping
	MigrationsTableDDL(table string) string
	AppliedMigrationsQuery(table string) string
	InsertMigrationQuery(table string) string
}
