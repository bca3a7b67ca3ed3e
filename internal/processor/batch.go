package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ginjaninja78/cart-parser/pkg/utils"
)

// RunAll processes paths with at most concurrency files in flight. Results
// are returned in the order of paths.
//
// When continueOnError is false, the first failed file stops files that have
// not started yet; their results carry the cancellation error. The returned
// error is that first failure.
func (p *Processor) RunAll(ctx context.Context, paths []string, concurrency int, continueOnError bool) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{FilePath: path, Error: err}
				return nil
			}

			results[i] = p.Run(path)

			if !results[i].Success && !continueOnError {
				return fmt.Errorf("%s: %w", filepath.Base(path), results[i].Error)
			}
			return nil
		})
	}

	return results, g.Wait()
}

// Summarize builds the run summary for the processing summary log.
func Summarize(results []Result, start, end time.Time) utils.ProcessingSummary {
	summary := utils.ProcessingSummary{
		StartTime:  start,
		EndTime:    end,
		TotalFiles: len(results),
	}

	grand := decimal.Zero

	for _, r := range results {
		if r.Success {
			summary.SuccessfulFiles++
			summary.TotalItems += r.Stats.Items
			grand = grand.Add(decimal.NewFromFloat(r.Stats.Total))
			summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
				InputFile:   r.FilePath,
				OutputFile:  r.OutputFile,
				Items:       r.Stats.Items,
				Total:       r.Stats.Total,
				ProcessTime: r.Stats.ProcessingTime,
			})
			continue
		}

		summary.FailedFiles++
		summary.ValidationErrors += len(r.ValidationErrors)
		summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
			InputFile:    r.FilePath,
			ErrorMessage: errorMessage(r.Error),
		})
	}

	summary.GrandTotal = grand.InexactFloat64()
	return summary
}

// ErrorLogEntries returns one entry per failed result.
func ErrorLogEntries(results []Result, at time.Time) []utils.ErrorLogEntry {
	var entries []utils.ErrorLogEntry

	for _, r := range results {
		if r.Success {
			continue
		}
		entries = append(entries, utils.ErrorLogEntry{
			Timestamp:        at,
			FileName:         filepath.Base(r.FilePath),
			ErrorMessage:     errorMessage(r.Error),
			ValidationErrors: r.ValidationErrors,
		})
	}

	return entries
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
