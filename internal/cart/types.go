// =============================================================================
// Cart Parser - Cart Types
// =============================================================================
//
// This file contains the data model shared by the validator, the line parser
// and the total calculator:
//   - Item / ParseResult     : the output of a successful parse
//   - ValidationError        : one defect found in the input
//   - ContentReader          : where the raw text comes from
//   - IDGenerator            : where item ids come from
//
// =============================================================================

package cart

// =============================================================================
// CART SCHEMA
// =============================================================================

// Header is the fixed column layout of a cart file, in order.
var Header = []string{"Product name", "Price", "Quantity"}

// ColumnCount is the number of cells every data row must have.
const ColumnCount = 3

// =============================================================================
// OUTPUT TYPES
// =============================================================================

// Item is one parsed cart line. Items are created once per valid data row
// and never modified afterwards.
type Item struct {
	// ID is produced by the injected IDGenerator.
	ID string `json:"id"`

	// Name is the trimmed product name (column 0).
	Name string `json:"name"`

	// Price is the unit price (column 1).
	Price float64 `json:"price"`

	// Quantity is the number of units (column 2). Fractional quantities
	// are allowed.
	Quantity float64 `json:"quantity"`
}

// ParseResult is the outcome of a successful Parse.
type ParseResult struct {
	// Items preserves the row order of the input file.
	Items []Item `json:"items"`

	// Total is the sum of Price*Quantity over Items.
	Total float64 `json:"total"`
}

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ErrorType classifies a ValidationError.
type ErrorType string

const (
	// ErrorTypeHeader marks a header cell that does not match the schema.
	ErrorTypeHeader ErrorType = "header"

	// ErrorTypeRow marks a data row with the wrong number of cells.
	ErrorTypeRow ErrorType = "row"

	// ErrorTypeCell marks a cell that fails its column rule.
	ErrorTypeCell ErrorType = "cell"
)

// ValidationError describes one defect in the input. It is plain data and
// is never returned on its own as an error value.
type ValidationError struct {
	Type ErrorType `json:"type"`

	// Row is 0 for the header and 1.. for data rows.
	Row int `json:"row"`

	// Column is the 0-based cell index, or -1 for row-shape errors.
	Column int `json:"column"`

	Message string `json:"message"`
}

// =============================================================================
// COLLABORATORS
// =============================================================================

// ContentReader returns the full text behind a source identifier.
type ContentReader interface {
	ReadContent(source string) (string, error)
}

// ContentReaderFunc adapts a plain function to ContentReader.
type ContentReaderFunc func(source string) (string, error)

// ReadContent calls f(source).
func (f ContentReaderFunc) ReadContent(source string) (string, error) {
	return f(source)
}

// IDGenerator produces a unique identifier for each new item.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f().
func (f IDGeneratorFunc) NewID() string {
	return f()
}
