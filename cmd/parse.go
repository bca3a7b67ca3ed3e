package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/cart-parser/internal/cart"
	"github.com/ginjaninja78/cart-parser/internal/output"
	"github.com/ginjaninja78/cart-parser/internal/source"
)

const stdinSource = "stdin"

var (
	parseFormat string
	parseOutput string
	parseStdin  bool
)

// parseCmd parses a single cart and prints the result.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a cart file and print its items and total",
	Long: `Parse reads one cart file (.csv or .xlsx), validates it and prints the
items with their generated ids and the cart total.

If the file has validation errors they are written to stderr and the command
fails with "Validation failed!".`,
	Args: func(cmd *cobra.Command, args []string) error {
		if parseStdin {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format: json or xml (default from config)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write the result to this file instead of stdout")
	parseCmd.Flags().BoolVar(&parseStdin, "stdin", false, "Read the cart from standard input")
}

func runParse(cmd *cobra.Command, args []string) error {
	formatName := parseFormat
	if formatName == "" {
		formatName = mainConfig.OutputFormat
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	var reader cart.ContentReader = &source.FileReader{MaxBytes: mainConfig.MaxFileBytes}
	src := ""
	if parseStdin {
		reader, err = source.ReadAll(stdinSource, cmd.InOrStdin())
		if err != nil {
			return err
		}
		src = stdinSource
	} else {
		src = args[0]
	}

	parser, err := newParser(reader)
	if err != nil {
		return err
	}

	result, err := parser.Parse(src)
	if err != nil {
		var vfe *cart.ValidationFailedError
		if errors.As(err, &vfe) {
			fmt.Fprint(cmd.ErrOrStderr(), cart.FormatErrors(vfe.Errors))
		}
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if parseOutput != "" {
		file, err := os.Create(parseOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	return output.WriteResult(w, result, format)
}
