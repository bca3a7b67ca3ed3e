package processor

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ginjaninja78/cart-parser/internal/cart"
	"github.com/ginjaninja78/cart-parser/internal/idgen"
	"github.com/ginjaninja78/cart-parser/internal/output"
	"github.com/ginjaninja78/cart-parser/internal/source"
	"github.com/ginjaninja78/cart-parser/pkg/utils"
)

const validCart = "Product name,Price,Quantity\nMollis consequat,9.00,2\nTvoluptatem,10.32,1\n"

const invalidCart = "Product name,Price,Quantity\nconsequat,9.00\n"

func setup(t *testing.T, opts Options) (*Processor, *utils.FileManager) {
	t.Helper()
	root := t.TempDir()
	fm := utils.NewFileManager(
		filepath.Join(root, "input"),
		filepath.Join(root, "output"),
		filepath.Join(root, "archive"),
	)
	require.NoError(t, fm.EnsureDirectories())

	logger := zaptest.NewLogger(t)
	parser := cart.NewParser(source.NewFileReader(), idgen.NewSequential("item-"), cart.WithLogger(logger))
	return New(parser, fm, opts, logger), fm
}

func writeInput(t *testing.T, fm *utils.FileManager, name, content string) string {
	t.Helper()
	path := filepath.Join(fm.InputDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_Success(t *testing.T) {
	p, fm := setup(t, Options{NameFormat: "{original}"})
	path := writeInput(t, fm, "cart.csv", validCart)

	result := p.Run(path)

	require.True(t, result.Success, "error: %v", result.Error)
	assert.Equal(t, filepath.Join(fm.OutputDir, "cart.json"), result.OutputFile)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "cart.csv"), result.ArchivePath)
	assert.Equal(t, 2, result.Stats.Items)
	assert.Equal(t, 28.32, result.Stats.Total)
	assert.False(t, utils.FileExists(path))

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	var parsed cart.ParseResult
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []cart.Item{
		{ID: "item-1", Name: "Mollis consequat", Price: 9, Quantity: 2},
		{ID: "item-2", Name: "Tvoluptatem", Price: 10.32, Quantity: 1},
	}, parsed.Items)
}

func TestRun_XML(t *testing.T) {
	p, fm := setup(t, Options{Format: output.FormatXML, NameFormat: "{original}"})
	path := writeInput(t, fm, "cart.csv", validCart)

	result := p.Run(path)

	require.True(t, result.Success)
	assert.Equal(t, filepath.Join(fm.OutputDir, "cart.xml"), result.OutputFile)
	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<cart total="28.32">`)
}

func TestRun_ValidationFailure(t *testing.T) {
	p, fm := setup(t, Options{})
	path := writeInput(t, fm, "bad.csv", invalidCart)

	result := p.Run(path)

	assert.False(t, result.Success)
	assert.EqualError(t, result.Error, "Validation failed!")
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, cart.ErrorTypeRow, result.ValidationErrors[0].Type)
	assert.Empty(t, result.OutputFile)
	assert.True(t, utils.FileExists(path), "failed input stays in place")
}

func TestRun_MissingFile(t *testing.T) {
	p, fm := setup(t, Options{})

	result := p.Run(filepath.Join(fm.InputDir, "missing.csv"))

	assert.False(t, result.Success)
	var readErr *cart.ReadError
	assert.ErrorAs(t, result.Error, &readErr)
	assert.Empty(t, result.ValidationErrors)
}

func TestRun_DryRun(t *testing.T) {
	p, fm := setup(t, Options{DryRun: true})
	path := writeInput(t, fm, "cart.csv", validCart)

	result := p.Run(path)

	require.True(t, result.Success)
	assert.Empty(t, result.OutputFile)
	assert.True(t, utils.FileExists(path))
	entries, err := os.ReadDir(fm.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunAll_ContinueOnError(t *testing.T) {
	p, fm := setup(t, Options{NameFormat: "{original}"})
	paths := []string{
		writeInput(t, fm, "a.csv", validCart),
		writeInput(t, fm, "b.csv", invalidCart),
		writeInput(t, fm, "c.csv", validCart),
	}

	results, err := p.RunAll(context.Background(), paths, 2, true)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)
	for i, r := range results {
		assert.Equal(t, paths[i], r.FilePath)
	}

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	summary := Summarize(results, start, start.Add(time.Second))
	assert.Equal(t, 3, summary.TotalFiles)
	assert.Equal(t, 2, summary.SuccessfulFiles)
	assert.Equal(t, 1, summary.FailedFiles)
	assert.Equal(t, 4, summary.TotalItems)
	assert.Equal(t, 56.64, summary.GrandTotal)
	assert.Equal(t, 1, summary.ValidationErrors)

	entries := ErrorLogEntries(results, start)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.csv", entries[0].FileName)
	assert.Equal(t, "Validation failed!", entries[0].ErrorMessage)
	assert.Len(t, entries[0].ValidationErrors, 1)
}

func TestRunAll_StopOnError(t *testing.T) {
	p, fm := setup(t, Options{})
	paths := []string{writeInput(t, fm, "bad.csv", invalidCart)}

	results, err := p.RunAll(context.Background(), paths, 1, false)

	assert.ErrorContains(t, err, "bad.csv: Validation failed!")
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
}

func TestRunAll_CancelledContext(t *testing.T) {
	p, fm := setup(t, Options{})
	path := writeInput(t, fm, "cart.csv", validCart)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := p.RunAll(ctx, []string{path}, 1, true)

	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Error, context.Canceled)
	assert.True(t, utils.FileExists(path))
}
