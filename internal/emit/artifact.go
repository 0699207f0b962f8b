package emit

import (
	"fmt"
	"strings"
)

// Column is one resolved column ready for emission.
type Column struct {
	Name       string // emitted camelCase name
	SourceName string // native column name
	Type       string // emitted type annotation
	Decorator  string
	Nullable   bool
	IsPrimary  bool
	AutoCreate bool
	AutoUpdate bool
}

// Artifact is the generated output for one table: an ordered column tuple,
// typed field declarations, and table-level metadata. Artifacts are
// regenerated wholesale on every run, never patched.
type Artifact struct {
	Table      string
	VarBase    string // camelCase table name, prefix for emitted consts
	ClassName  string // PascalCase table name + "Schema"
	PrimaryKey string // emitted name of the primary key column, or ""
	Columns    []Column
}

// NewArtifact derives the emitted names for one table.
func NewArtifact(table string, columns []Column) Artifact {
	a := Artifact{
		Table:     table,
		VarBase:   CamelCase(table),
		ClassName: PascalCase(table) + "Schema",
		Columns:   columns,
	}
	for _, c := range columns {
		if c.IsPrimary {
			a.PrimaryKey = c.Name
			break
		}
	}
	return a
}

// FieldType renders the interface field type, widening nullable columns.
func (c Column) FieldType() string {
	if c.Nullable {
		return c.Type + " | null"
	}
	return c.Type
}

// Meta renders the per-column metadata record. Flags are emitted only when
// set, so unchanged catalogs produce byte-identical output.
func (c Column) Meta() string {
	parts := []string{
		fmt.Sprintf("column: '%s'", c.SourceName),
		fmt.Sprintf("decorator: '%s'", c.Decorator),
	}
	if c.IsPrimary {
		parts = append(parts, "isPrimary: true")
	}
	if c.AutoCreate {
		parts = append(parts, "autoCreate: true")
	}
	if c.AutoUpdate {
		parts = append(parts, "autoUpdate: true")
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
