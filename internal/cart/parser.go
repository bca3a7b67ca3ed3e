// =============================================================================
// Cart Parser - Orchestrator
// =============================================================================
//
// Parser runs the whole pipeline for one source:
//
//   Idle -> ContentAcquired -> Validated -> ItemsBuilt -> TotalComputed -> Done
//                      \
//                       -> Failed (read error or validation errors)
//
// The content reader and the id generator are injected so the pipeline can
// run against fakes in tests and against files or spreadsheets in the CLI.
//
// =============================================================================

package cart

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// Parser parses cart files. It keeps no state between calls.
type Parser struct {
	reader ContentReader
	ids    IDGenerator
	logger *zap.Logger

	// newError builds every validation error. It defaults to CreateError.
	newError func(errType ErrorType, row, column int, message string) ValidationError
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for pipeline events and validation
// failures. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser that reads content with reader and assigns item
// ids with ids.
func NewParser(reader ContentReader, ids IDGenerator, opts ...Option) *Parser {
	p := &Parser{
		reader:   reader,
		ids:      ids,
		logger:   zap.NewNop(),
		newError: CreateError,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Validate checks content with a parser that has no collaborators.
func Validate(content string) []ValidationError {
	return NewParser(nil, nil).Validate(content)
}

// Parse reads source, validates it and builds the cart.
//
// A reader failure is returned as *ReadError. Validation errors are
// returned as *ValidationFailedError, whose message is "Validation failed!"
// and which carries every error found. No items are built in either case.
func (p *Parser) Parse(source string) (*ParseResult, error) {
	log := p.logger.With(zap.String("source", source))

	content, err := p.reader.ReadContent(source)
	if err != nil {
		return nil, &ReadError{Source: source, Err: err}
	}
	log.Debug("content acquired", zap.Int("bytes", len(content)))

	if errs := p.Validate(content); len(errs) > 0 {
		for _, e := range errs {
			log.Warn("validation error",
				zap.String("type", string(e.Type)),
				zap.Int("row", e.Row),
				zap.Int("column", e.Column),
				zap.String("message", e.Message),
			)
		}
		return nil, &ValidationFailedError{Source: source, Errors: errs}
	}

	rows := splitRows(content)
	items := make([]Item, 0, len(rows))

	for i := 1; i < len(rows); i++ {
		item, err := p.ParseLine(rows[i])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		items = append(items, item)
	}
	log.Debug("items built", zap.Int("items", len(items)))

	result := &ParseResult{
		Items: items,
		Total: CalcTotal(items),
	}
	log.Debug("total computed", zap.Float64("total", result.Total))

	return result, nil
}
