// =============================================================================
// Cart Parser - Output Rendering
// =============================================================================
//
// This package renders parse results and validation reports.
//
// FORMATS:
//   - json : indented JSON, the shape of cart.ParseResult
//   - xml  : the document below
//   - text : validation reports only, see cart.FormatErrors
//
// XML STRUCTURE:
//   <cart total="348.32">
//     <item n="1" id="...">
//       <name>Mollis consequat</name>
//       <price>9</price>
//       <quantity>2</quantity>
//     </item>
//   </cart>
//
// =============================================================================

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/cart-parser/internal/cart"
)

// Format selects the rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatText Format = "text"
)

// ParseFormat converts a flag or config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatXML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatXML:
		return ".xml"
	case FormatText:
		return ".txt"
	default:
		return ".json"
	}
}

// =============================================================================
// RESULT RENDERING
// =============================================================================

// WriteResult renders a parse result as JSON or XML.
func WriteResult(w io.Writer, result *cart.ParseResult, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatXML:
		_, err := w.Write(resultXML(result))
		return err
	default:
		return fmt.Errorf("format %q is not supported for results", format)
	}
}

// =============================================================================
// VALIDATION REPORT RENDERING
// =============================================================================

// errorReport is the JSON shape of a validation report.
type errorReport struct {
	Source string                 `json:"source,omitempty"`
	Valid  bool                   `json:"valid"`
	Errors []cart.ValidationError `json:"errors"`
}

// WriteErrors renders a validation report for source.
func WriteErrors(w io.Writer, source string, errs []cart.ValidationError, format Format) error {
	if errs == nil {
		errs = []cart.ValidationError{}
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, errorReport{Source: source, Valid: len(errs) == 0, Errors: errs})
	case FormatXML:
		_, err := w.Write(errorsXML(source, errs))
		return err
	case FormatText:
		_, err := io.WriteString(w, cart.FormatErrors(errs))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
