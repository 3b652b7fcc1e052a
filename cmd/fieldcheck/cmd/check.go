package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldcheck/fieldcheck/pkg/validate"
)

var checkFlags struct {
	inputType string
	min       float64
	max       float64
	minLength int
	maxLength int
	fixLength int
	decMin    int
	decMax    int
	noSpecial bool
	exts      []string
	message   string
}

var checkCmd = &cobra.Command{
	Use:   "check VALUE",
	Short: "Validate a single value",
	Long: `Validate a single value against the given input type. On success the
normalized form is printed to stdout; on failure the error message is
printed and the command exits non-zero.`,
	Example: `  fieldcheck check --type iban "GB82 WEST 1234 5698 7654 32"
  fieldcheck check --type phone "+33-1-23-45-67-89"
  fieldcheck check --type numeric --min 0 --decimals-max 2 "1,234.50"
  fieldcheck check --type fileName --ext pdf --ext docx report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ := validate.InputType(checkFlags.inputType)
		cfg := configFromFlags(cmd)

		res := validate.Input(args[0], typ, cfg)
		if !res.Valid {
			log.Debug("validation failed", "type", typ, "message", res.Message)
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return fmt.Errorf("invalid %s", typ)
		}

		log.Debug("validation passed", "type", typ, "normalized", res.Normalized)
		fmt.Fprintln(cmd.OutOrStdout(), res.Normalized)
		return nil
	},
}

// configFromFlags builds a validate.Config from only the flags the user
// actually set, so unset flags impose no constraints.
func configFromFlags(cmd *cobra.Command) *validate.Config {
	cfg := &validate.Config{
		AcceptedFileExtensions: checkFlags.exts,
		CustomErrorMessage:     checkFlags.message,
	}
	if cmd.Flags().Changed("min") {
		cfg.Min = validate.Float(checkFlags.min)
	}
	if cmd.Flags().Changed("max") {
		cfg.Max = validate.Float(checkFlags.max)
	}
	if cmd.Flags().Changed("min-length") {
		cfg.MinLength = validate.Int(checkFlags.minLength)
	}
	if cmd.Flags().Changed("max-length") {
		cfg.MaxLength = validate.Int(checkFlags.maxLength)
	}
	if cmd.Flags().Changed("fix-length") {
		cfg.FixLength = validate.Int(checkFlags.fixLength)
	}
	if cmd.Flags().Changed("decimals-min") || cmd.Flags().Changed("decimals-max") {
		cfg.Decimals = &validate.DecimalBounds{}
		if cmd.Flags().Changed("decimals-min") {
			cfg.Decimals.Min = validate.Int(checkFlags.decMin)
		}
		if cmd.Flags().Changed("decimals-max") {
			cfg.Decimals.Max = validate.Int(checkFlags.decMax)
		}
	}
	if cmd.Flags().Changed("no-special-chars") {
		cfg.AllowSpecialChars = validate.Bool(!checkFlags.noSpecial)
	}
	return cfg
}

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkFlags.inputType, "type", "t", "", "input type ("+typeNames()+")")
	f.Float64Var(&checkFlags.min, "min", 0, "inclusive minimum (numeric, age)")
	f.Float64Var(&checkFlags.max, "max", 0, "inclusive maximum (numeric, age)")
	f.IntVar(&checkFlags.minLength, "min-length", 0, "minimum length")
	f.IntVar(&checkFlags.maxLength, "max-length", 0, "maximum length")
	f.IntVar(&checkFlags.fixLength, "fix-length", 0, "exact length")
	f.IntVar(&checkFlags.decMin, "decimals-min", 0, "minimum decimal places")
	f.IntVar(&checkFlags.decMax, "decimals-max", 0, "maximum decimal places")
	f.BoolVar(&checkFlags.noSpecial, "no-special-chars", false, "restrict text to letters, digits and spaces")
	f.StringArrayVar(&checkFlags.exts, "ext", nil, "accepted file extension (repeatable)")
	f.StringVar(&checkFlags.message, "message", "", "custom error message override")
	_ = checkCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(checkCmd)
}
