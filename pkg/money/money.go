// Package money does price arithmetic in decimal so totals built from
// float64 price snapshots do not drift.
package money

import "github.com/shopspring/decimal"

// Line returns price * quantity rounded to cents.
func Line(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// Accumulator sums line totals.
type Accumulator struct {
	total decimal.Decimal
}

func (a *Accumulator) Add(price float64, quantity int) {
	a.total = a.total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))))
}

func (a *Accumulator) Total() float64 {
	return a.total.Round(2).InexactFloat64()
}
