package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"schemagen/internal/dialect"
)

// Runner applies hand-authored SQL migration scripts in lexical order and
// records what ran in a bookkeeping table, so every script executes exactly
// once per database.
type Runner struct {
	DB      *sqlx.DB
	Dialect dialect.Dialect
	Dir     string // directory holding *.sql scripts
	Table   string // bookkeeping table name
	Log     zerolog.Logger
}

// Pending returns the migration scripts not yet applied, in apply order.
func (r *Runner) Pending(ctx context.Context) ([]string, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}
	applied, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir %s: %w", r.Dir, err)
	}

	var pending []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		if !applied[name] {
			pending = append(pending, name)
		}
	}
	sort.Strings(pending)
	return pending, nil
}

// Apply runs all pending scripts and returns the names applied. It stops at
// the first failing script; scripts applied before the failure stay recorded.
func (r *Runner) Apply(ctx context.Context) ([]string, error) {
	pending, err := r.Pending(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, name := range pending {
		if err := r.applyOne(ctx, name); err != nil {
			return done, err
		}
		done = append(done, name)
		r.Log.Info().Str("migration", name).Msg("applied")
	}
	return done, nil
}

func (r *Runner) applyOne(ctx context.Context, name string) error {
	b, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}

	for _, stmt := range splitStatements(string(b)) {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	if _, err := r.DB.ExecContext(ctx, r.Dialect.InsertMigrationQuery(r.Table), name); err != nil {
		return fmt.Errorf("record migration %s: %w", name, err)
	}
	return nil
}

func (r *Runner) ensureTable(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, r.Dialect.MigrationsTableDDL(r.Table)); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}
	return nil
}

func (r *Runner) applied(ctx context.Context) (map[string]bool, error) {
	var names []string
	if err := r.DB.SelectContext(ctx, &names, r.Dialect.AppliedMigrationsQuery(r.Table)); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(names))
	for _, n := range names {
		applied[n] = true
	}
	return applied, nil
}

// splitStatements breaks a script on semicolons at end of line. Scripts with
// procedural bodies should keep one statement per file.
func splitStatements(script string) []string {
	var stmts []string
	var cur strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmts = append(stmts, strings.TrimSpace(cur.String()))
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}
