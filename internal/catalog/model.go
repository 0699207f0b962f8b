package catalog

import "schemagen/internal/types"

// ColumnDescriptor describes one physical column as read from the catalog.
// It is immutable once read; the Internal field is the only slot filled in
// later, by the normalizing stage.
type ColumnDescriptor struct {
	Table      string
	Name       string
	NativeType string
	Internal   types.InternalType

	Nullable      bool
	IsPrimary     bool
	AutoIncrement bool
	AutoCreate    bool // timestamp assigned by the database on insert
	AutoUpdate    bool // timestamp reassigned by the database on update
	HasDefault    bool
	Default       string
	Position      int
}

// Table groups the descriptors of one physical table in ordinal order.
type Table struct {
	Name    string
	Columns []ColumnDescriptor
}

// PrimaryKey returns the name of the first primary key column, or "".
func (t *Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.IsPrimary {
			return c.Name
		}
	}
	return ""
}
