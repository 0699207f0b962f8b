package types

import "strings"

// baseTypes covers ANSI-ish names shared across dialects. Per-dialect tables
// below are merged over it at init, so a dialect only declares what differs.
var baseTypes = map[string]InternalType{
	// integer family
	"int":       Number,
	"integer":   Number,
	"smallint":  Number,
	"mediumint": Number,
	"tinyint":   Number,
	"bigint":    Bigint,

	// exact numerics
	"decimal":    Decimal,
	"numeric":    Decimal,
	"money":      Decimal,
	"smallmoney": Decimal,

	// floating point
	"float":            Number,
	"real":             Number,
	"double":           Number,
	"double precision": Number,

	"boolean": Boolean,
	"bool":    Boolean,

	// character family
	"char":              String,
	"character":         String,
	"varchar":           String,
	"character varying": String,
	"nchar":             String,
	"nvarchar":          String,
	"text":              String,
	"tinytext":          String,
	"mediumtext":        String,
	"longtext":          String,
	"ntext":             String,
	"clob":              String,
	"nclob":             String,

	// temporal
	"date":                        Date,
	"time":                        Time,
	"time without time zone":      Time,
	"time with time zone":         Time,
	"timetz":                      Time,
	"datetime":                    DateTime,
	"datetime2":                   DateTime,
	"smalldatetime":               DateTime,
	"datetimeoffset":              DateTime,
	"timestamp":                   DateTime,
	"timestamp without time zone": DateTime,
	"timestamp with time zone":    DateTime,
	"timestamptz":                 DateTime,

	// binary family
	"binary":     Binary,
	"varbinary":  Binary,
	"blob":       Binary,
	"tinyblob":   Binary,
	"mediumblob": Binary,
	"longblob":   Binary,
	"bytea":      Binary,
	"image":      Binary,

	"json":  JSON,
	"jsonb": JSONB,

	"uuid":             UUID,
	"uniqueidentifier": UUID,
	"guid":             UUID,

	"enum": Enum,
	"set":  Set,
}

var mysqlTypes = map[string]InternalType{
	"year":       Number,
	"fixed":      Decimal,
	"geometry":   Unknown,
	"point":      Unknown,
	"linestring": Unknown,
	"polygon":    Unknown,
	"bit":        Unknown,
}

var postgresTypes = map[string]InternalType{
	// udt_name spellings
	"int2":      Number,
	"int4":      Number,
	"int8":      Bigint,
	"serial":    Number,
	"bigserial": Bigint,
	"float4":    Number,
	"float8":    Number,
	"bpchar":    String,
	"name":      String,
	// deliberately unmapped families resolve to Unknown: inet/cidr/macaddr,
	// tsvector/tsquery, bit/varbit, ranges, geometry
}

var mssqlTypes = map[string]InternalType{
	"bit": Boolean,
}

var oracleTypes = map[string]InternalType{
	"number":                         Decimal,
	"binary_float":                   Number,
	"binary_double":                  Number,
	"varchar2":                       String,
	"nvarchar2":                      String,
	"long":                           String,
	"raw":                            Binary,
	"long raw":                       Binary,
	"timestamp with local time zone": DateTime,
}

var sqliteTypes = map[string]InternalType{
	// SQLite DDL is free-form; common declared names beyond the base table.
	"int8":             Bigint,
	"unsigned big int": Bigint,
}

var dialectTypes = func() map[string]map[string]InternalType {
	mssql := merge(baseTypes, mssqlTypes)
	return map[string]map[string]InternalType{
		"mysql":     merge(baseTypes, mysqlTypes),
		"postgres":  merge(baseTypes, postgresTypes),
		"mssql":     mssql,
		"sqlserver": mssql,
		"oracle":    merge(baseTypes, oracleTypes),
		"sqlite":    merge(baseTypes, sqliteTypes),
	}
}()

func merge(ms ...map[string]InternalType) map[string]InternalType {
	out := make(map[string]InternalType)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Normalize maps a native database type name to its InternalType for the
// given dialect. It is a pure lookup: the same (nativeType, dialect) pair
// always yields the same result, and unrecognized names yield Unknown
// rather than an error.
func Normalize(nativeType, dialect string) InternalType {
	t := strings.ToLower(strings.TrimSpace(nativeType))

	// MySQL encodes booleans as single-byte integers.
	if dialect == "mysql" && strings.HasPrefix(t, "tinyint(1)") {
		return Boolean
	}

	t = stripArgs(t)

	table, ok := dialectTypes[dialect]
	if !ok {
		table = baseTypes
	}
	if it, ok := table[t]; ok {
		return it
	}
	return Unknown
}

// stripArgs removes a parenthesized length/precision segment while keeping
// any qualifier after it, so "timestamp(6) with time zone" becomes
// "timestamp with time zone" and "decimal(10,2) unsigned" becomes "decimal".
func stripArgs(t string) string {
	open := strings.IndexByte(t, '(')
	if open >= 0 {
		rest := ""
		if close := strings.IndexByte(t[open:], ')'); close >= 0 {
			rest = t[open+close+1:]
		}
		t = strings.TrimSpace(t[:open]) + rest
	}
	t = strings.TrimSuffix(t, " zerofill")
	t = strings.TrimSuffix(t, " unsigned")
	return strings.TrimSpace(t)
}
