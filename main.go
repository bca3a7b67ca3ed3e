// =============================================================================
// Cart Parser - Main Entry Point
// =============================================================================
//
// USAGE:
//   cartparser parse <file>     - Parse one cart and print items and total
//   cartparser validate <file>  - List every validation error in a cart
//   cartparser process          - Parse all carts in the input directory
//   cartparser version          - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : cart parsing, sources, rendering, batch processing
//   - pkg/       : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/cart-parser/cmd"
)

func main() {
	cmd.Execute()
}
