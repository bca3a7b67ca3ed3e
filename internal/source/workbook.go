package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readWorkbook flattens the first sheet of an .xlsx file into cart text:
// cells joined with commas, rows joined with newlines. Rows with no
// values become blank lines, which the validator skips.
//
// A cell that itself contains a comma changes the cell count of its row, the
// same as it would in a CSV export without quoting.
func (r *FileReader) readWorkbook(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", fmt.Errorf("failed to read rows: %w", err)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		lines[i] = strings.Join(row, ",")
	}

	return strings.Join(lines, "\n"), nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
