package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"schemagen/internal/dialect"
	"schemagen/internal/generator"
	"schemagen/internal/rules"
)

var (
	outputPath string
	rulesPath  string
	noProgress bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate schema classes from the live database catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGeneration(cmd)
	},
}

// runGeneration executes one full pipeline run. Shared by the generate
// command and the post-migration trigger in migrate.
func runGeneration(cmd *cobra.Command) error {
	settings := GetGenerationSettings()
	if outputPath != "" {
		settings.Output = outputPath
	}
	if rulesPath != "" {
		settings.Rules = rulesPath
	}

	var ruleSet *rules.RuleSet
	if settings.Rules != "" {
		rs, err := rules.Load(settings.Rules)
		if err != nil {
			return err
		}
		ruleSet = rs
	}

	d := dialect.Get(DriverName)

	opts := generator.Options{
		DB:      DB,
		Dialect: d,
		Schema:  SchemaName,
		Rules:   ruleSet,
		Output:  settings.Output,
		Workers: settings.Workers,
		Timeout: settings.Timeout,
		Log:     Log,
	}

	if !noProgress {
		uiprogress.Start()
		bar := uiprogress.AddBar(100).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Scanning:   "
		})
		opts.OnTable = func(string) { bar.Incr() }
		defer uiprogress.Stop()
	}

	start := time.Now()
	result, err := generator.Run(cmd.Context(), opts)
	if err != nil {
		var stageErr *generator.StageError
		if errors.As(err, &stageErr) {
			return fmt.Errorf("generation failed in stage %s: %w", stageErr.Stage, stageErr.Err)
		}
		return err
	}

	switch result.Status {
	case generator.StatusNoChange:
		fmt.Printf("no changes detected (%d tables, %s)\n", result.Tables, time.Since(start).Round(time.Millisecond))
	default:
		fmt.Printf("schema classes generated: %s (%d tables, %s)\n",
			settings.Output, result.Tables, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Artifact output path (overrides config)")
	generateCmd.Flags().StringVar(&rulesPath, "rules", "", "RuleSet YAML file (overrides config)")
	generateCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
}
