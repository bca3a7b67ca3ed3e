package cart

import (
	"strconv"

	"github.com/go-faster/errors"
)

// ParseLine turns one validated data row into an Item. The id comes from
// the parser's IDGenerator, which is called once per item.
//
// ParseLine does not repeat the validator's checks; it only fails when a
// cell cannot be converted at all.
func (p *Parser) ParseLine(line string) (Item, error) {
	cells := splitCells(line)
	if len(cells) != ColumnCount {
		return Item{}, errors.Errorf("expected %d cells, got %d", ColumnCount, len(cells))
	}

	price, err := strconv.ParseFloat(cells[1], 64)
	if err != nil {
		return Item{}, errors.Wrap(err, "parse price")
	}

	quantity, err := strconv.ParseFloat(cells[2], 64)
	if err != nil {
		return Item{}, errors.Wrap(err, "parse quantity")
	}

	return Item{
		ID:       p.ids.NewID(),
		Name:     cells[0],
		Price:    price,
		Quantity: quantity,
	}, nil
}
