package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"schemagen/internal/dialect"
)

// ErrUnavailable reports that the catalog could not be queried: connection
// lost, insufficient privileges, or timeout. It is transient; the caller
// decides whether to retry.
var ErrUnavailable = errors.New("catalog unavailable")

// DefaultWorkers bounds the per-table column reads running concurrently.
const DefaultWorkers = 4

// Options controls one catalog read.
type Options struct {
	Schema  string        // schema to introspect; "" resolves per dialect
	Workers int           // parallel per-table reads; DefaultWorkers if <= 0
	Timeout time.Duration // deadline for the whole read; 0 means none
	OnTable func(name string)
}

// columnRow is the uniform shape every dialect's ColumnsQuery returns.
type columnRow struct {
	ColumnName    string         `db:"column_name"`
	DataType      string         `db:"data_type"`
	ColumnType    sql.NullString `db:"column_type"`
	IsNullable    string         `db:"is_nullable"`
	ColumnKey     sql.NullString `db:"column_key"`
	Extra         sql.NullString `db:"extra"`
	ColumnDefault sql.NullString `db:"column_default"`
	Position      int            `db:"ordinal_position"`
}

// Read enumerates all tables and columns of one schema. The result is
// deterministic for an unchanged catalog: tables alphabetical, columns by
// ordinal position. Column reads for independent tables run on a bounded
// worker pool; results are slotted by index so ordering is unaffected.
// Read never mutates the database.
func Read(ctx context.Context, db *sqlx.DB, d dialect.Dialect, opts Options) ([]Table, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	schema := d.DefaultSchema(opts.Schema)

	var names []string
	if err := db.SelectContext(ctx, &names, d.TablesQuery(), schema); err != nil {
		return nil, fmt.Errorf("%w: query tables in %q: %v", ErrUnavailable, schema, err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	tables := make([]Table, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			cols, err := readColumns(gctx, db, d, schema, name)
			if err != nil {
				return err
			}
			tables[i] = Table{Name: name, Columns: cols}
			if opts.OnTable != nil {
				opts.OnTable(name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tables, nil
}

func readColumns(ctx context.Context, db *sqlx.DB, d dialect.Dialect, schema, table string) ([]ColumnDescriptor, error) {
	var rows []columnRow
	if err := db.SelectContext(ctx, &rows, d.ColumnsQuery(), schema, table); err != nil {
		return nil, fmt.Errorf("%w: query columns of %q: %v", ErrUnavailable, table, err)
	}

	cols := make([]ColumnDescriptor, 0, len(rows))
	for _, r := range rows {
		cols = append(cols, describe(d.Name(), table, r))
	}
	return cols, nil
}

func describe(driver, table string, r columnRow) ColumnDescriptor {
	native := r.DataType
	// MySQL's COLUMN_TYPE keeps the display width, which is what tells a
	// tinyint(1) boolean apart from a plain tinyint.
	if driver == "mysql" && r.ColumnType.Valid && r.ColumnType.String != "" {
		native = r.ColumnType.String
	}

	extra := strings.ToLower(r.Extra.String)

	c := ColumnDescriptor{
		Table:      table,
		Name:       r.ColumnName,
		NativeType: native,
		Nullable:   r.IsNullable == "YES",
		IsPrimary:  strings.Contains(r.ColumnKey.String, "PRI"),
		AutoIncrement: strings.Contains(extra, "auto_increment") ||
			strings.Contains(extra, "identity") ||
			strings.Contains(extra, "nextval"),
		Position: r.Position,
	}

	if r.ColumnDefault.Valid {
		c.HasDefault = true
		c.Default = r.ColumnDefault.String
	}

	if c.HasDefault && isNowExpression(c.Default) {
		c.AutoCreate = true
	}
	if strings.Contains(extra, "on update current_timestamp") {
		c.AutoUpdate = true
	}

	return c
}

var nowExpressions = []string{
	"current_timestamp", "now()", "getdate()", "sysdate",
	"systimestamp", "sysutcdatetime",
}

func isNowExpression(def string) bool {
	d := strings.ToLower(strings.TrimSpace(def))
	for _, expr := range nowExpressions {
		if strings.HasPrefix(d, expr) {
			return true
		}
	}
	return false
}
