package cart

import "github.com/shopspring/decimal"

// CalcTotal returns the sum of Price*Quantity over items, in input order.
// The sum is accumulated in decimal so that cent amounts add up exactly.
func CalcTotal(items []Item) float64 {
	total := decimal.Zero

	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromFloat(item.Quantity))
		total = total.Add(line)
	}

	return total.InexactFloat64()
}
