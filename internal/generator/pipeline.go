package generator

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"schemagen/internal/catalog"
	"schemagen/internal/dialect"
	"schemagen/internal/emit"
	"schemagen/internal/rules"
	"schemagen/internal/types"
)

// Stage is one step of the generation pipeline.
type Stage string

const (
	StageIdle        Stage = "Idle"
	StageReading     Stage = "Reading"
	StageNormalizing Stage = "Normalizing"
	StageResolving   Stage = "Resolving"
	StageEmitting    Stage = "Emitting"
	StageComparing   Stage = "Comparing"
)

// Status is the terminal state of one run.
type Status string

const (
	StatusCommitted Status = "Committed"
	StatusNoChange  Status = "NoChange"
	StatusAborted   Status = "Aborted"
)

// Options configures one generation run. The rule set is an immutable value
// passed in at the start of the run, never ambient state between runs.
type Options struct {
	DB      *sqlx.DB
	Dialect dialect.Dialect
	Schema  string
	Rules   *rules.RuleSet
	Output  string
	Workers int
	Timeout time.Duration
	Log     zerolog.Logger
	OnTable func(name string)
}

// Result reports the terminal state of a run.
type Result struct {
	Status Status
	Tables int
	Hash   uint64
}

// Run executes one full generation pass:
//
//	Idle -> Reading -> Normalizing -> Resolving -> Emitting -> Comparing
//	     -> {Committed | NoChange | Aborted}
//
// It holds an exclusive lock on the output location for its duration and
// never retries internally; a caller may re-invoke the whole run. On any
// failure the previously committed artifact is left untouched.
func Run(ctx context.Context, opts Options) (*Result, error) {
	lk, err := acquireLock(opts.Output)
	if err != nil {
		return &Result{Status: StatusAborted}, err
	}
	defer lk.release()

	log := opts.Log

	log.Debug().Str("stage", string(StageReading)).Str("schema", opts.Schema).Msg("reading catalog")
	tables, err := catalog.Read(ctx, opts.DB, opts.Dialect, catalog.Options{
		Schema:  opts.Schema,
		Workers: opts.Workers,
		Timeout: opts.Timeout,
		OnTable: opts.OnTable,
	})
	if err != nil {
		return abort(StageReading, err)
	}

	log.Debug().Str("stage", string(StageNormalizing)).Int("tables", len(tables)).Msg("normalizing native types")
	driver := opts.Dialect.Name()
	for ti := range tables {
		for ci := range tables[ti].Columns {
			col := &tables[ti].Columns[ci]
			col.Internal = types.Normalize(col.NativeType, driver)
			if col.Internal == types.Unknown {
				log.Warn().
					Str("table", col.Table).
					Str("column", col.Name).
					Str("native_type", col.NativeType).
					Msg("unmapped native type, emitting as unknown")
			}
		}
	}

	log.Debug().Str("stage", string(StageResolving)).Msg("resolving rules")
	imports := rules.NewImportList()
	artifacts := make([]emit.Artifact, 0, len(tables))
	for _, t := range tables {
		cols := make([]emit.Column, 0, len(t.Columns))
		for _, c := range t.Columns {
			res := opts.Rules.Resolve(t.Name, c.Name, c.Internal)
			if err := imports.Add(t.Name, c.Name, res.Imports); err != nil {
				return abort(StageResolving, err)
			}
			cols = append(cols, emit.Column{
				Name:       emit.CamelCase(c.Name),
				SourceName: c.Name,
				Type:       res.Type,
				Decorator:  res.Decorator,
				Nullable:   c.Nullable,
				IsPrimary:  c.IsPrimary,
				AutoCreate: c.AutoCreate,
				AutoUpdate: c.AutoUpdate,
			})
		}
		artifacts = append(artifacts, emit.NewArtifact(t.Name, cols))
	}

	log.Debug().Str("stage", string(StageEmitting)).Int("artifacts", len(artifacts)).Msg("rendering artifacts")
	data := emit.Render(artifacts, imports.Specs())

	log.Debug().Str("stage", string(StageComparing)).Str("output", opts.Output).Msg("comparing with previous artifact")
	changed, err := commit(opts.Output, data)
	if err != nil {
		return abort(StageComparing, err)
	}

	res := &Result{Status: StatusNoChange, Tables: len(tables), Hash: contentHash(data)}
	if changed {
		res.Status = StatusCommitted
	}
	log.Info().
		Str("status", string(res.Status)).
		Int("tables", res.Tables).
		Msg("generation finished")
	return res, nil
}

// abort wraps a failure with its stage. A Reading failure that is purely a
// catalog availability problem keeps its own identity; anything else also
// matches ErrAborted since the run stopped partway with nothing committed.
func abort(stage Stage, err error) (*Result, error) {
	if !(stage == StageReading && errors.Is(err, catalog.ErrUnavailable)) {
		err = errors.Join(ErrAborted, err)
	}
	return &Result{Status: StatusAborted}, &StageError{Stage: stage, Err: err}
}
