package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidContent(t *testing.T) {
	errs := Validate("Product name,Price,Quantity \n Mollis consequat,9.00,2")

	require.NotNil(t, errs)
	assert.Empty(t, errs)
}

func TestValidate_ZeroAndDecimalsAccepted(t *testing.T) {
	content := "Product name,Price,Quantity\nFree sample,0,1\nBulk rice,1.5,0.3\nGift card,+25,1e1"

	assert.Empty(t, Validate(content))
}

func TestValidate_InvalidContentReportsErrors(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"ololo",
		"this is bad",
		"and this is bad too",
		"123c 1",
		"Product name,Price,Quantity \n Mollis ",
		"and so one \n Mollis ",
	}

	for _, in := range inputs {
		assert.NotEmpty(t, Validate(in), "input %q", in)
	}
}

func TestValidate_HeaderErrors(t *testing.T) {
	errs := Validate("this is bad")

	assert.Equal(t, []ValidationError{
		{
			Type:    ErrorTypeHeader,
			Row:     0,
			Column:  0,
			Message: `Expected header to be named "Product name" but received this is bad.`,
		},
		{
			Type:    ErrorTypeHeader,
			Row:     0,
			Column:  1,
			Message: `Expected header to be named "Price" but received undefined.`,
		},
		{
			Type:    ErrorTypeHeader,
			Row:     0,
			Column:  2,
			Message: `Expected header to be named "Quantity" but received undefined.`,
		},
	}, errs)
}

func TestValidate_HeaderMismatchOnlyAtWrongPositions(t *testing.T) {
	errs := Validate("Product name,Quantity,Price\nMollis consequat,9.00,2")

	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].Column)
	assert.Equal(t, `Expected header to be named "Price" but received Quantity.`, errs[0].Message)
	assert.Equal(t, 2, errs[1].Column)
	assert.Equal(t, `Expected header to be named "Quantity" but received Price.`, errs[1].Message)
}

func TestValidate_HeaderIsCaseSensitive(t *testing.T) {
	errs := Validate("product name,Price,Quantity")

	require.Len(t, errs, 1)
	assert.Equal(t, ErrorTypeHeader, errs[0].Type)
	assert.Equal(t, 0, errs[0].Column)
}

func TestValidate_RowError(t *testing.T) {
	errs := Validate("Product name,Price,Quantity \n consequat,9.00")

	assert.Equal(t, []ValidationError{
		{
			Type:    ErrorTypeRow,
			Row:     1,
			Column:  -1,
			Message: "Expected row to have 3 cells but received 2.",
		},
	}, errs)
}

func TestValidate_RowErrorSkipsCellChecks(t *testing.T) {
	errs := Validate("Product name,Price,Quantity\n,abc,-1,extra")

	require.Len(t, errs, 1)
	assert.Equal(t, ErrorTypeRow, errs[0].Type)
	assert.Equal(t, "Expected row to have 3 cells but received 4.", errs[0].Message)
}

func TestValidate_TwoNumericCellErrors(t *testing.T) {
	errs := Validate("Product name,Price,Quantity \n Mollis consequat, '-34 in sting' , '' ")

	assert.Equal(t, []ValidationError{
		{
			Type:    ErrorTypeCell,
			Row:     1,
			Column:  1,
			Message: `Expected cell to be a positive number but received "'-34 in sting'".`,
		},
		{
			Type:    ErrorTypeCell,
			Row:     1,
			Column:  2,
			Message: `Expected cell to be a positive number but received "''".`,
		},
	}, errs)
}

func TestValidate_EmptyNameCell(t *testing.T) {
	errs := Validate("Product name,Price,Quantity \n ,9.00, 0.3 ")

	assert.Equal(t, []ValidationError{
		{
			Type:    ErrorTypeCell,
			Row:     1,
			Column:  0,
			Message: `Expected cell to be a nonempty string but received "".`,
		},
	}, errs)
}

func TestValidate_ErrorOrder(t *testing.T) {
	content := "Product,Price,Quantity\nA,1,1\nB,-1\n,2,x"

	errs := Validate(content)

	require.Len(t, errs, 4)
	assert.Equal(t, ErrorTypeHeader, errs[0].Type)
	assert.Equal(t, ErrorTypeRow, errs[1].Type)
	assert.Equal(t, 2, errs[1].Row)
	assert.Equal(t, ErrorTypeCell, errs[2].Type)
	assert.Equal(t, 3, errs[2].Row)
	assert.Equal(t, 0, errs[2].Column)
	assert.Equal(t, 2, errs[3].Column)
}

func TestValidate_BlankLinesAndCRLF(t *testing.T) {
	content := "Product name,Price,Quantity\r\n\r\nMollis consequat,9.00,2\r\n\nTvoluptatem,10.32,1\r\n"

	assert.Empty(t, Validate(content))
}

func TestValidate_Fixture(t *testing.T) {
	errs := Validate(readFixture(t, "invalid.csv"))

	assert.Equal(t, []ValidationError{
		{Type: ErrorTypeCell, Row: 1, Column: 1, Message: `Expected cell to be a positive number but received "-9.00".`},
		{Type: ErrorTypeCell, Row: 2, Column: 0, Message: `Expected cell to be a nonempty string but received "".`},
		{Type: ErrorTypeCell, Row: 2, Column: 1, Message: `Expected cell to be a positive number but received "abc".`},
		{Type: ErrorTypeRow, Row: 3, Column: -1, Message: "Expected row to have 3 cells but received 2."},
	}, errs)
}

func TestValidate_Idempotent(t *testing.T) {
	content := "Product,Price\n,1,x\nA"
	p := NewParser(nil, nil)

	assert.Equal(t, p.Validate(content), p.Validate(content))
}

func TestValidate_CreateErrorCalledOncePerError(t *testing.T) {
	calls := 0
	p := NewParser(nil, nil)
	p.newError = func(errType ErrorType, row, column int, message string) ValidationError {
		calls++
		return CreateError(errType, row, column, message)
	}

	errs := p.Validate("this is bad")

	assert.Equal(t, 3, calls)
	assert.Len(t, errs, 3)
}

func TestIsNonNegativeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"9.00", true},
		{"10.32", true},
		{".5", true},
		{"5.", true},
		{"+3", true},
		{"1e3", true},
		{"-0", true},
		{"-1", false},
		{"-0.01", false},
		{"", false},
		{"abc", false},
		{"1,5", false},
		{"NaN", false},
		{"Inf", false},
		{"0x10", false},
		{"1e400", false},
		{"1_000", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonNegativeNumber(tt.in))
		})
	}
}
