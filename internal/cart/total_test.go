package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcTotal(t *testing.T) {
	items := []Item{
		{Price: 1, Quantity: 4},
		{Price: 10, Quantity: 2},
		{Price: 3, Quantity: 2},
	}

	assert.Equal(t, 30.0, CalcTotal(items))
}

func TestCalcTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CalcTotal(nil))
	assert.Equal(t, 0.0, CalcTotal([]Item{}))
}

func TestCalcTotal_CentsAddUpExactly(t *testing.T) {
	items := []Item{
		{Price: 0.1, Quantity: 1},
		{Price: 0.2, Quantity: 1},
	}

	assert.Equal(t, 0.3, CalcTotal(items))
}

func TestCalcTotal_FractionalQuantity(t *testing.T) {
	items := []Item{{Price: 9, Quantity: 0.3}}

	assert.Equal(t, 2.7, CalcTotal(items))
}
