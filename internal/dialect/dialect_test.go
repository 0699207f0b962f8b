package dialect_test

import (
	"strings"
	"testing"

	"schemagen/internal/dialect"
)

func TestGet(t *testing.T) {
	cases := []struct {
		driver string
		want   string
	}{
		{"mysql", "mysql"},
		{"postgres", "postgres"},
		{"mssql", "sqlserver"},
		{"sqlserver", "sqlserver"},
		{"oracle", "oracle"},
		{"sqlite", "sqlite"},
		{"anything-else", "mysql"},
	}
	for _, c := range cases {
		if got := dialect.Get(c.driver).Name(); got != c.want {
			t.Errorf("Get(%q).Name() = %q, want %q", c.driver, got, c.want)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	cases := []struct {
		driver string
		idx    int
		want   string
	}{
		{"mysql", 0, "?"},
		{"mysql", 5, "?"},
		{"postgres", 0, "$1"},
		{"postgres", 2, "$3"},
		{"mssql", 0, "@p1"},
		{"oracle", 1, ":2"},
		{"sqlite", 0, "?1"},
	}
	for _, c := range cases {
		if got := dialect.Get(c.driver).Placeholder(c.idx); got != c.want {
			t.Errorf("%s.Placeholder(%d) = %q, want %q", c.driver, c.idx, got, c.want)
		}
	}
}

func TestQuoteIdentifier(t *testing.T) {
	if got := dialect.Get("mysql").QuoteIdentifier("a`b"); got != "`a``b`" {
		t.Errorf("mysql quote = %q", got)
	}
	if got := dialect.Get("postgres").QuoteIdentifier(`a"b`); got != `"a""b"` {
		t.Errorf("postgres quote = %q", got)
	}
	if got := dialect.Get("mssql").QuoteIdentifier("a]b"); got != "[a]]b]" {
		t.Errorf("mssql quote = %q", got)
	}
}

func TestDefaultSchema(t *testing.T) {
	cases := []struct {
		driver string
		input  string
		want   string
	}{
		{"postgres", "", "public"},
		{"postgres", "analytics", "analytics"},
		{"mssql", "", "dbo"},
		{"sqlite", "", "main"},
		{"mysql", "app", "app"},
	}
	for _, c := range cases {
		if got := dialect.Get(c.driver).DefaultSchema(c.input); got != c.want {
			t.Errorf("%s.DefaultSchema(%q) = %q, want %q", c.driver, c.input, got, c.want)
		}
	}
}

func TestColumnsQueryShape(t *testing.T) {
	// Every dialect must project the uniform column aliases the reader
	// scans into, lowercased.
	required := []string{
		"column_name", "data_type", "column_type", "is_nullable",
		"column_key", "extra", "column_default", "ordinal_position",
	}
	for _, driver := range []string{"mysql", "postgres", "mssql", "oracle", "sqlite"} {
		q := strings.ToLower(dialect.Get(driver).ColumnsQuery())
		for _, alias := range required {
			if !strings.Contains(q, "as "+alias) {
				t.Errorf("%s ColumnsQuery missing alias %q", driver, alias)
			}
		}
	}
	for _, driver := range []string{"mysql", "postgres", "mssql", "oracle", "sqlite"} {
		q := strings.ToLower(dialect.Get(driver).TablesQuery())
		if !strings.Contains(q, "as table_name") {
			t.Errorf("%s TablesQuery missing table_name alias", driver)
		}
	}
}
