package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in whole rupees. Prices carry no paise, so integer
// arithmetic is exact.
type Money int64

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// String renders the amount with the rupee sign and Indian digit grouping.
func (m Money) String() string {
	return inrPrinter.Sprintf("₹%d", int64(m))
}

// Times returns the amount multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}
