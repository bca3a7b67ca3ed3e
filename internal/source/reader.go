// =============================================================================
// Cart Parser - Content Sources
// =============================================================================
//
// This package provides the ContentReader implementations used by the CLI.
//
// SUPPORTED SOURCES:
//   - Plain text (.csv, .txt, anything else): read as-is
//   - Excel workbooks (.xlsx): the first sheet is flattened into
//     comma-separated text so it goes through the same validator
//   - In-memory content (StringReader): used for stdin and tests
//
// Every file handle is opened and closed inside a single ReadContent call.
//
// =============================================================================

package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// utf8BOM is stripped from the start of text files exported by spreadsheet
// tools; otherwise the first header cell would never match.
const utf8BOM = "\ufeff"

// =============================================================================
// FILE READER
// =============================================================================

// FileReader reads cart content from files on disk.
type FileReader struct {
	// MaxBytes limits how much of a file is read. Zero means no limit.
	MaxBytes int64
}

// NewFileReader creates a FileReader without a size limit.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadContent returns the text content of the file at path. Workbooks are
// detected by their .xlsx extension.
func (r *FileReader) ReadContent(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return r.readWorkbook(path)
	}
	return r.readText(path)
}

// readText reads a plain text file.
func (r *FileReader) readText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = bufio.NewReader(file)
	if r.MaxBytes > 0 {
		reader = io.LimitReader(reader, r.MaxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return "", fmt.Errorf("file exceeds %d bytes", r.MaxBytes)
	}

	return strings.TrimPrefix(string(data), utf8BOM), nil
}

// =============================================================================
// STRING READER
// =============================================================================

// StringReader serves content from memory, keyed by source name.
type StringReader map[string]string

// ReadContent returns the content stored under source.
func (r StringReader) ReadContent(source string) (string, error) {
	content, ok := r[source]
	if !ok {
		return "", fmt.Errorf("source %q not found: %w", source, os.ErrNotExist)
	}
	return content, nil
}

// ReadAll reads everything from rd and returns it as a StringReader entry
// under name. The CLI uses it for --stdin.
func ReadAll(name string, rd io.Reader) (StringReader, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return StringReader{name: strings.TrimPrefix(string(data), utf8BOM)}, nil
}
