package dialect

// Get returns the Dialect implementation for a driver name.
func Get(driver string) Dialect {
	switch driver {
	case "postgres":
		return &Postgres{}
	case "sqlserver", "mssql":
		return &MSSQL{}
	case "oracle":
		return &Oracle{}
	case "sqlite":
		return &SQLite{}
	default: // mysql
		return &MySQL{}
	}
}

// Ensure interface implementation
var _ Dialect = (*MySQL)(nil)
var _ Dialect = (*Postgres)(nil)
var _ Dialect = (*MSSQL)(nil)
var _ Dialect = (*Oracle)(nil)
var _ Dialect = (*SQLite)(nil)
