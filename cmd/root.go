// =============================================================================
// Cart Parser - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI.
//
// COBRA CLI STRUCTURE:
//   rootCmd (cartparser)
//   ├── parseCmd    (cartparser parse)
//   ├── validateCmd (cartparser validate)
//   ├── processCmd  (cartparser process)
//   └── versionCmd  (cartparser version)
//
// The root command loads the configuration file and builds the logger before
// any subcommand runs.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/cart-parser/internal/cart"
	"github.com/ginjaninja78/cart-parser/internal/config"
	"github.com/ginjaninja78/cart-parser/internal/idgen"
	"github.com/ginjaninja78/cart-parser/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// mainConfig and logger are set by loadRuntime before a subcommand runs.
var (
	mainConfig *config.MainConfig
	logger     = zap.NewNop()
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cartparser",
	Short: "Cart Parser - Validate shopping cart CSV files and compute totals",
	Long: `Cart Parser reads shopping cart files with the columns
"Product name", "Price" and "Quantity", reports every problem it finds with
its row and column, and turns valid carts into items with a computed total.

Example Usage:
  cartparser parse cart.csv              # Print the parsed cart as JSON
  cartparser parse cart.xlsx --format xml
  cartparser validate cart.csv           # List every validation error
  cartparser process                     # Parse every file in the input directory`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadRuntime(cmd)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadRuntime loads the configuration and builds the logger. A missing
// config file is only an error when --config was given explicitly.
func loadRuntime(cmd *cobra.Command) error {
	var err error

	if cmd.Flags().Changed("config") {
		mainConfig, err = config.LoadMainConfig(cfgFile)
	} else {
		mainConfig, err = config.LoadOrDefault(cfgFile)
	}
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	logger, err = logging.New(mainConfig.LogLevel, mainConfig.LogFormat, verbose)
	if err != nil {
		return err
	}

	return nil
}

// newParser builds a cart parser with the configured id strategy.
func newParser(reader cart.ContentReader) (*cart.Parser, error) {
	ids, err := idgen.New(mainConfig.IDStrategy, mainConfig.IDPrefix)
	if err != nil {
		return nil, err
	}
	return cart.NewParser(reader, ids, cart.WithLogger(logger)), nil
}
