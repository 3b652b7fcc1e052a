package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fieldcheck/fieldcheck/pkg/validate"
)

// batchRecord is one entry of a batch file: a value, the input type to check
// it against, and optional per-record validation options.
type batchRecord struct {
	Type   string       `yaml:"type"`
	Value  any          `yaml:"value"`
	Config *batchConfig `yaml:"config"`
}

// batchConfig mirrors validate.Config with YAML field names matching the
// option names of the validation contract.
type batchConfig struct {
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	MinLength *int     `yaml:"minLength"`
	MaxLength *int     `yaml:"maxLength"`
	FixLength *int     `yaml:"fixLength"`
	Decimals  *struct {
		Min *int `yaml:"min"`
		Max *int `yaml:"max"`
	} `yaml:"decimals"`
	AllowSpecialChars      *bool      `yaml:"allowSpecialChars"`
	AcceptedFileExtensions []string   `yaml:"acceptedFileExtensions"`
	CustomErrorMessage     string     `yaml:"customErrorMessage"`
	BirthDate              *time.Time `yaml:"birthDate"`
}

func (bc *batchConfig) toConfig() *validate.Config {
	if bc == nil {
		return nil
	}
	cfg := &validate.Config{
		Min:                    bc.Min,
		Max:                    bc.Max,
		MinLength:              bc.MinLength,
		MaxLength:              bc.MaxLength,
		FixLength:              bc.FixLength,
		AllowSpecialChars:      bc.AllowSpecialChars,
		AcceptedFileExtensions: bc.AcceptedFileExtensions,
		CustomErrorMessage:     bc.CustomErrorMessage,
		BirthDate:              bc.BirthDate,
	}
	if bc.Decimals != nil {
		cfg.Decimals = &validate.DecimalBounds{Min: bc.Decimals.Min, Max: bc.Decimals.Max}
	}
	return cfg
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Validate a YAML batch of values",
	Long: `Read a YAML list of {type, value, config} records and validate each
record in order. Every result is printed; the command exits non-zero when
any record fails.`,
	Example: `  fieldcheck batch inputs.yaml

  # inputs.yaml
  - type: iban
    value: "GB82 WEST 1234 5698 7654 32"
  - type: numeric
    value: "1,234.50"
    config:
      min: 0
      decimals: {max: 2}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read batch file: %w", err)
		}

		var records []batchRecord
		if err := yaml.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("parse batch file: %w", err)
		}

		failed := 0
		for i, rec := range records {
			res := validate.Input(rec.Value, validate.InputType(rec.Type), rec.Config.toConfig())
			if res.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tok\t%v\n", i+1, rec.Type, res.Normalized)
				continue
			}
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tinvalid\t%s\n", i+1, rec.Type, res.Message)
		}

		log.Info("batch finished", "records", len(records), "failed", failed)
		if failed > 0 {
			return fmt.Errorf("%d of %d records invalid", failed, len(records))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
