// =============================================================================
// Cart Parser - Processor Module
// =============================================================================
//
// This module runs the batch pipeline for a single cart file:
//   1. Parse the file (read, validate, build items, compute total)
//   2. Render the result in the configured format
//   3. Write the output file
//   4. Archive the input file
//
// Many files may be processed concurrently by separate goroutines; each call
// to Run handles one file and shares nothing mutable with the others.
//
// =============================================================================

package processor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/cart-parser/internal/cart"
	"github.com/ginjaninja78/cart-parser/internal/output"
	"github.com/ginjaninja78/cart-parser/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the rendered cart. Empty on failure or
	// in dry-run mode.
	OutputFile string

	// ArchivePath is where the input file was moved to.
	ArchivePath string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// ValidationErrors is set when the file failed validation.
	ValidationErrors []cart.ValidationError

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	Items          int
	Total          float64
	ProcessingTime time.Duration
}

// =============================================================================
// PROCESSOR STRUCTURE
// =============================================================================

// Processor handles the conversion of cart files into rendered output.
type Processor struct {
	parser     *cart.Parser
	files      *utils.FileManager
	format     output.Format
	nameFormat string
	dryRun     bool
	logger     *zap.Logger
}

// Options configures a Processor.
type Options struct {
	// Format is the rendering of the output files.
	Format output.Format

	// NameFormat is passed to FileManager.GenerateOutputFileName.
	NameFormat string

	// DryRun parses files without writing or archiving anything.
	DryRun bool
}

// New creates a new Processor.
func New(parser *cart.Parser, files *utils.FileManager, opts Options, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Format == "" {
		opts.Format = output.FormatJSON
	}
	if opts.NameFormat == "" {
		opts.NameFormat = "{original}_{uuid}"
	}

	return &Processor{
		parser:     parser,
		files:      files,
		format:     opts.Format,
		nameFormat: opts.NameFormat,
		dryRun:     opts.DryRun,
		logger:     logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline for the file at path.
func (p *Processor) Run(path string) Result {
	startTime := time.Now()
	result := Result{FilePath: path}
	log := p.logger.With(zap.String("file", path))

	log.Info("processing file")

	parsed, err := p.parser.Parse(path)
	if err != nil {
		result.Error = err

		var vfe *cart.ValidationFailedError
		if errors.As(err, &vfe) {
			result.ValidationErrors = vfe.Errors
		}

		result.Stats.ProcessingTime = time.Since(startTime)
		log.Warn("processing failed", zap.Error(err), zap.Int("validation_errors", len(result.ValidationErrors)))
		return result
	}

	result.Stats.Items = len(parsed.Items)
	result.Stats.Total = parsed.Total

	if p.dryRun {
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		log.Info("dry run, nothing written", zap.Int("items", result.Stats.Items))
		return result
	}

	outputPath, err := p.writeOutput(path, parsed)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}
	result.OutputFile = outputPath
	log.Debug("wrote output", zap.String("output", outputPath))

	archivePath, err := p.files.ArchiveInputFile(path)
	if err != nil {
		// The output exists, so archival problems do not fail the file.
		log.Warn("failed to archive input", zap.Error(err))
	} else {
		result.ArchivePath = archivePath
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	log.Info("processed file",
		zap.Int("items", result.Stats.Items),
		zap.Float64("total", result.Stats.Total),
		zap.Duration("elapsed", result.Stats.ProcessingTime),
	)

	return result
}

// writeOutput renders the result and writes it into the output directory.
func (p *Processor) writeOutput(inputPath string, parsed *cart.ParseResult) (string, error) {
	var buf bytes.Buffer
	if err := output.WriteResult(&buf, parsed, p.format); err != nil {
		return "", err
	}

	fileName := p.files.GenerateOutputFileName(p.nameFormat, inputPath, p.format.Extension())
	outputPath := filepath.Join(p.files.OutputDir, fileName)

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return outputPath, nil
}
