package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cart-parser/internal/cart"
	"github.com/ginjaninja78/cart-parser/internal/output"
	"github.com/ginjaninja78/cart-parser/internal/source"
)

var validateFormat string

// validateCmd reports every validation error in a cart without parsing it.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a cart file and list every validation error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Report format: text, json or xml")
}

func runValidate(cmd *cobra.Command, path string) error {
	format, err := output.ParseFormat(validateFormat)
	if err != nil {
		return err
	}

	content, err := (&source.FileReader{MaxBytes: mainConfig.MaxFileBytes}).ReadContent(path)
	if err != nil {
		return &cart.ReadError{Source: path, Err: err}
	}

	errs := cart.Validate(content)
	if err := output.WriteErrors(cmd.OutOrStdout(), path, errs, format); err != nil {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", path, cart.ErrValidationFailed)
	}
	return nil
}
