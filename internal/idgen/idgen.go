// Package idgen provides the item id generators selectable from config.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ginjaninja78/cart-parser/internal/cart"
)

// Strategy names accepted by New.
const (
	StrategyUUID       = "uuid"
	StrategySequential = "sequential"
)

// UUID generates random (v4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequential generates prefix1, prefix2, ... It is safe for concurrent use.
type Sequential struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a Sequential generator with the given prefix.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *Sequential) NewID() string {
	return s.prefix + strconv.FormatUint(s.next.Add(1), 10)
}

// New returns the generator for strategy. An empty strategy means uuid.
func New(strategy, prefix string) (cart.IDGenerator, error) {
	switch strings.ToLower(strategy) {
	case "", StrategyUUID:
		return UUID{}, nil
	case StrategySequential:
		return NewSequential(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
