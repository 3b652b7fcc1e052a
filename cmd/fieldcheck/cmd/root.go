package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fieldcheck/fieldcheck/pkg/logger"
	"github.com/fieldcheck/fieldcheck/pkg/validate"
)

// envConfig holds process-level settings, read from the environment with an
// optional .env file. Per-value validation options come from flags or batch
// records, never from here.
type envConfig struct {
	LogLevel  string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FIELDCHECK_LOG_FORMAT" envDefault:"text"`
}

var log *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "fieldcheck",
	Short: "Validate common, financial, logistics and system identifiers",
	Long: `fieldcheck validates heterogeneous input values against a closed set
of input types: numeric, text, alpha, alphanumeric, email, url, phone,
iban, isin, gln, gtin, sscc, date, age and fileName.

Each check is pure and deterministic: the same value and options always
produce the same result, and valid input is reported together with its
canonical (normalized) form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The .env file is optional.
		_ = godotenv.Load()

		var cfg envConfig
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("parse environment: %w", err)
		}

		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}

		log = logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithOutput(cmd.ErrOrStderr()),
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// typeNames renders the registered input types for help and error output.
func typeNames() string {
	types := validate.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
