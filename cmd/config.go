package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Schema string `mapstructure:"schema"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// GenerationSettings is the schema_generation section of the config.
type GenerationSettings struct {
	Enabled bool
	Output  string
	Rules   string
	Workers int
	Timeout time.Duration
}

// GetGenerationSettings reads the schema_generation section with defaults.
func GetGenerationSettings() GenerationSettings {
	return GenerationSettings{
		Enabled: viper.GetBool("schema_generation.enabled"),
		Output:  viper.GetString("schema_generation.output"),
		Rules:   viper.GetString("schema_generation.rules"),
		Workers: viper.GetInt("schema_generation.workers"),
		Timeout: viper.GetDuration("schema_generation.timeout"),
	}
}

// MigrationSettings is the migrations section of the config.
type MigrationSettings struct {
	Dir   string
	Table string
}

// GetMigrationSettings reads the migrations section with defaults.
func GetMigrationSettings() MigrationSettings {
	return MigrationSettings{
		Dir:   viper.GetString("migrations.dir"),
		Table: viper.GetString("migrations.table"),
	}
}

func init() {
	viper.SetDefault("schema_generation.enabled", true)
	viper.SetDefault("schema_generation.output", "app/schemas/tables.ts")
	viper.SetDefault("schema_generation.workers", 4)
	viper.SetDefault("schema_generation.timeout", 30*time.Second)
	viper.SetDefault("migrations.dir", "database/migrations")
	viper.SetDefault("migrations.table", "schema_migrations")
}
