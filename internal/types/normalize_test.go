package types_test

import (
	"testing"

	"schemagen/internal/types"
)

func TestNormalize_IntegerFamily(t *testing.T) {
	cases := []struct {
		native  string
		dialect string
		want    types.InternalType
	}{
		{"int", "mysql", types.Number},
		{"integer", "postgres", types.Number},
		{"smallint", "mssql", types.Number},
		{"mediumint", "mysql", types.Number},
		{"tinyint", "mysql", types.Number},
		{"bigint", "mysql", types.Bigint},
		{"int8", "postgres", types.Bigint},
		{"int4", "postgres", types.Number},
		{"int2", "postgres", types.Number},
		{"INTEGER", "oracle", types.Number},
		{"int(11)", "mysql", types.Number},
		{"bigint(20) unsigned", "mysql", types.Bigint},
	}
	for _, c := range cases {
		if got := types.Normalize(c.native, c.dialect); got != c.want {
			t.Errorf("Normalize(%q, %q) = %s, want %s", c.native, c.dialect, got, c.want)
		}
	}
}

func TestNormalize_BooleanEncodedTinyint(t *testing.T) {
	if got := types.Normalize("tinyint(1)", "mysql"); got != types.Boolean {
		t.Errorf("mysql tinyint(1) = %s, want boolean", got)
	}
	// Only MySQL treats the display width as a boolean marker.
	if got := types.Normalize("tinyint(1)", "mssql"); got != types.Number {
		t.Errorf("mssql tinyint(1) = %s, want number", got)
	}
	if got := types.Normalize("tinyint(4)", "mysql"); got != types.Number {
		t.Errorf("mysql tinyint(4) = %s, want number", got)
	}
}

func TestNormalize_Temporal(t *testing.T) {
	cases := []struct {
		native  string
		dialect string
		want    types.InternalType
	}{
		{"date", "mysql", types.Date},
		{"time", "mysql", types.Time},
		{"timetz", "postgres", types.Time},
		{"datetime", "mysql", types.DateTime},
		{"timestamp", "mysql", types.DateTime},
		{"timestamptz", "postgres", types.DateTime},
		{"timestamp with time zone", "postgres", types.DateTime},
		{"timestamp(6) with time zone", "oracle", types.DateTime},
		{"timestamp with local time zone", "oracle", types.DateTime},
		{"datetime2", "mssql", types.DateTime},
		{"datetimeoffset", "mssql", types.DateTime},
		{"smalldatetime", "mssql", types.DateTime},
	}
	for _, c := range cases {
		if got := types.Normalize(c.native, c.dialect); got != c.want {
			t.Errorf("Normalize(%q, %q) = %s, want %s", c.native, c.dialect, got, c.want)
		}
	}
}

func TestNormalize_JSONAndSpecials(t *testing.T) {
	cases := []struct {
		native  string
		dialect string
		want    types.InternalType
	}{
		{"json", "mysql", types.JSON},
		{"json", "postgres", types.JSON},
		{"jsonb", "postgres", types.JSONB},
		{"uuid", "postgres", types.UUID},
		{"uniqueidentifier", "mssql", types.UUID},
		{"enum('a','b')", "mysql", types.Enum},
		{"set('x','y')", "mysql", types.Set},
		{"decimal(10,2)", "mysql", types.Decimal},
		{"numeric", "postgres", types.Decimal},
		{"money", "mssql", types.Decimal},
		{"number", "oracle", types.Decimal},
		{"bit", "mssql", types.Boolean},
		{"bytea", "postgres", types.Binary},
		{"varbinary(255)", "mysql", types.Binary},
		{"clob", "oracle", types.String},
		{"varchar2(100)", "oracle", types.String},
		{"nvarchar(max)", "mssql", types.String},
	}
	for _, c := range cases {
		if got := types.Normalize(c.native, c.dialect); got != c.want {
			t.Errorf("Normalize(%q, %q) = %s, want %s", c.native, c.dialect, got, c.want)
		}
	}
}

func TestNormalize_UnknownFallback(t *testing.T) {
	// Network addresses, search vectors, bit strings, ranges, geometry: all
	// resolve to unknown, never an error.
	unknowns := []struct {
		native  string
		dialect string
	}{
		{"inet", "postgres"},
		{"cidr", "postgres"},
		{"macaddr", "postgres"},
		{"tsvector", "postgres"},
		{"int4range", "postgres"},
		{"geometry", "mysql"},
		{"bit", "mysql"},
		{"hierarchyid", "mssql"},
		{"sdo_geometry", "oracle"},
		{"completely made up type", "mysql"},
		{"", "mysql"},
	}
	for _, c := range unknowns {
		if got := types.Normalize(c.native, c.dialect); got != types.Unknown {
			t.Errorf("Normalize(%q, %q) = %s, want unknown", c.native, c.dialect, got)
		}
	}
	if got := types.Normalize("varchar", "nonexistent"); got != types.String {
		t.Errorf("unknown dialect should fall back to the base table, got %s", got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	inputs := []string{"varchar(255)", "tinyint(1)", "inet", "jsonb", "NUMBER(10,2)"}
	for _, in := range inputs {
		first := types.Normalize(in, "mysql")
		for i := 0; i < 10; i++ {
			if got := types.Normalize(in, "mysql"); got != first {
				t.Fatalf("Normalize(%q) not deterministic: %s then %s", in, first, got)
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, it := range types.All() {
		got, ok := types.Parse(string(it))
		if !ok || got != it {
			t.Errorf("Parse(%q) = %s, %v", it, got, ok)
		}
	}
	if _, ok := types.Parse("varchar"); ok {
		t.Error("Parse should reject native type names")
	}
}
