// =============================================================================
// Cart Parser - Process Command
// =============================================================================
//
// This file defines the 'process' command, which parses every cart file in
// the input directory.
//
// COMMAND USAGE:
//   cartparser process [flags]
//
// FLAGS:
//   --dry-run : Parse files without writing output or archiving inputs
//   --file    : Process a single file instead of scanning the input directory
//
// PROCESSING PIPELINE:
//   1. Load configuration (done by the root command)
//   2. Discover *.csv and *.xlsx files in the input directory
//   3. Parse files concurrently, bounded by max_concurrency
//   4. Write the rendered carts and archive the inputs
//   5. Write an error log for failed files and a summary log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/cart-parser/internal/output"
	"github.com/ginjaninja78/cart-parser/internal/processor"
	"github.com/ginjaninja78/cart-parser/internal/source"
	"github.com/ginjaninja78/cart-parser/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun parses files without writing output files.
var dryRun bool

// filePath is a specific file to process instead of the input directory.
var filePath string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Parse every cart file in the input directory",
	Long: `The process command scans the input directory for cart files (.csv and
.xlsx), parses each of them and writes the result to the output directory.

On successful processing:
  - The rendered cart is placed in the output directory
  - The original file is moved to the input archive

On error:
  - The original file remains in the input directory
  - The validation errors are written to an error log in the output directory
  - Other files continue unless continue_on_error is false`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse files without writing output files")
	processCmd.Flags().StringVar(&filePath, "file", "", "Process only this file")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates the batch pipeline.
func runProcess(cmd *cobra.Command) error {
	startTime := time.Now()
	out := cmd.OutOrStdout()

	format, err := output.ParseFormat(mainConfig.OutputFormat)
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir, mainConfig.InputArchiveDir)
	fm.ArchiveOnSuccess = mainConfig.ShouldArchive()
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	// =========================================================================
	// STEP 1: DISCOVER INPUT FILES
	// =========================================================================

	var inputFiles []string
	if filePath != "" {
		inputFiles = []string{filePath}
	} else {
		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	if len(inputFiles) == 0 {
		fmt.Fprintln(out, "No cart files found in the input directory.")
		return nil
	}

	logger.Info("discovered input files", zap.Int("files", len(inputFiles)))

	// =========================================================================
	// STEP 2: PROCESS FILES CONCURRENTLY
	// =========================================================================

	parser, err := newParser(&source.FileReader{MaxBytes: mainConfig.MaxFileBytes})
	if err != nil {
		return err
	}

	proc := processor.New(parser, fm, processor.Options{
		Format:     format,
		NameFormat: mainConfig.OutputNameFormat,
		DryRun:     dryRun,
	}, logger)

	results, runErr := proc.RunAll(cmd.Context(), inputFiles, mainConfig.MaxConcurrency, mainConfig.ShouldContinueOnError())

	// =========================================================================
	// STEP 3: REPORT
	// =========================================================================

	for _, result := range results {
		if result.Success {
			fmt.Fprintf(out, "  ✓ %s -> %s (%d items, total %.2f)\n",
				filepath.Base(result.FilePath), result.OutputFile, result.Stats.Items, result.Stats.Total)
		} else {
			fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	summary := processor.Summarize(results, startTime, time.Now())

	fmt.Fprintln(out, "\n=== Processing Complete ===")
	fmt.Fprintf(out, "Total files:     %d\n", summary.TotalFiles)
	fmt.Fprintf(out, "Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Fprintf(out, "Errors:          %d\n", summary.FailedFiles)
	fmt.Fprintf(out, "Time elapsed:    %s\n", summary.EndTime.Sub(summary.StartTime))

	if !dryRun {
		if logPath, err := fm.WriteErrorLog(processor.ErrorLogEntries(results, time.Now())); err != nil {
			logger.Warn("failed to write error log", zap.Error(err))
		} else if logPath != "" {
			fmt.Fprintf(out, "\nErrors have been logged to %s\n", logPath)
		}

		if _, err := fm.WriteSummaryLog(summary); err != nil {
			logger.Warn("failed to write summary log", zap.Error(err))
		}
	}

	return runErr
}
