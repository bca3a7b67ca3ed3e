// =============================================================================
// Cart Parser - Validator
// =============================================================================
//
// Validation checks the structure and the cell contents of a cart file and
// returns every problem it finds. It never stops at the first error.
//
// VALIDATION ORDER:
//   1. Header row (row 0): each of the three expected names is compared
//      positionally, independently of the others.
//   2. Data rows (rows 1..N): a row with the wrong number of cells yields a
//      single row error and its cells are not checked. Otherwise the name
//      cell and both numeric cells are checked independently.
//
// =============================================================================

package cart

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern accepts plain decimal notation with an optional exponent.
// Hex floats, "Inf" and "NaN" are rejected before strconv sees them.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Validate checks content and returns all validation errors in document
// order. The returned slice is empty, not nil, when content is valid.
func (p *Parser) Validate(content string) []ValidationError {
	errs := make([]ValidationError, 0)
	rows := splitRows(content)

	header := ""
	if len(rows) > 0 {
		header = rows[0]
	}
	errs = append(errs, p.validateHeader(splitCells(header))...)

	for i := 1; i < len(rows); i++ {
		errs = append(errs, p.validateRow(i, splitCells(rows[i]))...)
	}

	return errs
}

// validateHeader compares the header cells with Header.
func (p *Parser) validateHeader(cells []string) []ValidationError {
	var errs []ValidationError

	for i, expected := range Header {
		if i < len(cells) && cells[i] == expected {
			continue
		}

		actual := "undefined"
		if i < len(cells) {
			actual = cells[i]
		}

		errs = append(errs, p.newError(
			ErrorTypeHeader,
			0,
			i,
			fmt.Sprintf("Expected header to be named %q but received %s.", expected, actual),
		))
	}

	return errs
}

// validateRow checks the shape of one data row and, if the shape is right,
// each of its cells.
func (p *Parser) validateRow(row int, cells []string) []ValidationError {
	if len(cells) != ColumnCount {
		return []ValidationError{p.newError(
			ErrorTypeRow,
			row,
			-1,
			fmt.Sprintf("Expected row to have %d cells but received %d.", ColumnCount, len(cells)),
		)}
	}

	var errs []ValidationError

	if cells[0] == "" {
		errs = append(errs, p.newError(
			ErrorTypeCell,
			row,
			0,
			fmt.Sprintf("Expected cell to be a nonempty string but received \"%s\".", cells[0]),
		))
	}

	for col := 1; col < ColumnCount; col++ {
		if IsNonNegativeNumber(cells[col]) {
			continue
		}
		errs = append(errs, p.newError(
			ErrorTypeCell,
			row,
			col,
			fmt.Sprintf("Expected cell to be a positive number but received \"%s\".", cells[col]),
		))
	}

	return errs
}

// IsNonNegativeNumber reports whether s is a finite decimal number >= 0.
// Zero is accepted.
func IsNonNegativeNumber(s string) bool {
	if !decimalPattern.MatchString(s) {
		return false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}

	return v >= 0
}

// =============================================================================
// SPLITTING HELPERS
// =============================================================================

// splitRows splits content on newlines and drops blank lines. A trailing
// carriage return does not make a line non-blank.
func splitRows(content string) []string {
	lines := strings.Split(content, "\n")
	rows := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSuffix(line, "\r") == "" {
			continue
		}
		rows = append(rows, line)
	}

	return rows
}

// splitCells splits one row on commas and trims every cell.
func splitCells(row string) []string {
	cells := strings.Split(row, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
