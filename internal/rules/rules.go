package rules

import (
	"errors"
	"fmt"

	"schemagen/internal/types"
)

// ErrConflicting reports a malformed rule set, e.g. two imports sharing a
// name but pointing at different source modules. Fatal for the run.
var ErrConflicting = errors.New("conflicting rule")

// ImportSpec is one named import the emitted annotation requires.
type ImportSpec struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
}

// Rule overrides how a column is emitted. A zero field means "inherit from
// the next tier down": the emitted type and its imports travel together as
// one unit, the decorator falls through independently.
type Rule struct {
	Type      string       `yaml:"tsType"`
	Decorator string       `yaml:"decorator"`
	Imports   []ImportSpec `yaml:"imports"`
}

// TableRules holds the per-column overrides of one table.
type TableRules struct {
	Columns map[string]Rule `yaml:"columns"`
}

// RuleSet is the user-authored override configuration. Lookups fall back
// ColumnRule -> TypeRule -> built-in default, never the reverse; absence at
// any tier is valid. A RuleSet is an immutable value passed into each run.
type RuleSet struct {
	Types  map[string]Rule       `yaml:"types"` // keyed by internal type name
	Tables map[string]TableRules `yaml:"tables"`
}

// Validate checks that every key under types names a known internal type.
func (rs *RuleSet) Validate() error {
	if rs == nil {
		return nil
	}
	for key := range rs.Types {
		if _, ok := types.Parse(key); !ok {
			return fmt.Errorf("%w: unknown internal type %q under types", ErrConflicting, key)
		}
	}
	return nil
}

// Resolved is the final emission computed for one column.
type Resolved struct {
	Type      string
	Decorator string
	Imports   []ImportSpec
}

// Resolve computes the emission for one column by evaluating, in order, the
// exact table+column rule, the global internal-type rule, and the built-in
// default. Works on a nil receiver (defaults only).
func (rs *RuleSet) Resolve(table, column string, it types.InternalType) Resolved {
	res := builtinDefault(it)
	if rs == nil {
		return res
	}
	if tr, ok := rs.Types[string(it)]; ok {
		overlay(&res, tr)
	}
	if t, ok := rs.Tables[table]; ok {
		if cr, ok := t.Columns[column]; ok {
			overlay(&res, cr)
		}
	}
	return res
}

func overlay(res *Resolved, r Rule) {
	if r.Type != "" {
		res.Type = r.Type
		res.Imports = r.Imports
	}
	if r.Decorator != "" {
		res.Decorator = r.Decorator
	}
}

// ImportList deduplicates imports across an artifact set, preserving
// first-seen order and rejecting name collisions with differing sources.
type ImportList struct {
	specs []ImportSpec
	from  map[string]string
}

func NewImportList() *ImportList {
	return &ImportList{from: make(map[string]string)}
}

// Add records the imports required by one column's emission.
func (l *ImportList) Add(table, column string, imports []ImportSpec) error {
	for _, im := range imports {
		if prev, ok := l.from[im.Name]; ok {
			if prev != im.From {
				return fmt.Errorf("%w: import %q from %q collides with earlier import from %q (table %s, column %s)",
					ErrConflicting, im.Name, im.From, prev, table, column)
			}
			continue
		}
		l.from[im.Name] = im.From
		l.specs = append(l.specs, im)
	}
	return nil
}

// Specs returns the deduplicated imports in first-seen order.
func (l *ImportList) Specs() []ImportSpec {
	return l.specs
}
