package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemagen/internal/logger"
)

var (
	dsn        string
	cfgFile    string
	DB         *sqlx.DB
	DriverName string
	SchemaName string
	Log        zerolog.Logger
)

var RootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Migration-driven schema class generator",
	Long: `schemagen scans a live database catalog, normalizes native column
types into a dialect-independent model, applies user-authored override
rules, and regenerates the typed schema artifact your models are built on.

Run it standalone with "generate", or let "migrate" trigger it after
applying pending migration scripts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		Log = logger.New(&logger.Config{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		})

		config, err := GetActiveDBConfig()
		if err != nil {
			// Fall back to flat keys (flag or database.* config).
			connStr := viper.GetString("database.dsn")
			if connStr == "" {
				return fmt.Errorf("no active database: %w (set databases[].active or --dsn)", err)
			}
			config = &DBConfig{
				Driver: viper.GetString("database.driver"),
				DSN:    connStr,
				Schema: viper.GetString("database.schema"),
			}
		}

		DriverName = config.Driver
		if DriverName == "" {
			if strings.Contains(config.DSN, "postgres") || strings.Contains(config.DSN, "sslmode") {
				DriverName = "postgres"
			} else {
				DriverName = "mysql"
			}
		}

		db, err := sqlx.Connect(DriverName, config.DSN)
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		DB = db

		SchemaName = config.Schema
		if SchemaName == "" {
			switch DriverName {
			case "mysql":
				if err := db.Get(&SchemaName, "SELECT DATABASE()"); err != nil {
					return fmt.Errorf("failed to get database name: %w", err)
				}
				if SchemaName == "" {
					return fmt.Errorf("no database selected in DSN")
				}
			case "sqlserver", "mssql":
				SchemaName = "dbo"
			case "sqlite":
				SchemaName = "main"
			case "oracle":
				SchemaName = "USER"
			default:
				SchemaName = "public"
			}
		}

		Log.Debug().Str("driver", DriverName).Str("schema", SchemaName).Msg("connected")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if DB != nil {
			DB.Close()
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./schemagen.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")

	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("schemagen")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
