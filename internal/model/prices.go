package model

import (
	"math"
	"strconv"
)

// Default per-day prices.
const (
	DefaultCowPrice     = 60
	DefaultBuffaloPrice = 80
)

// Prices holds the per-day price of each milk type. Prices are process-wide:
// changing them re-prices every stored day.
type Prices struct {
	Cow     float64 `json:"cowPrice"`
	Buffalo float64 `json:"buffaloPrice"`
}

// DefaultPrices returns the prices used before any are configured.
func DefaultPrices() Prices {
	return Prices{Cow: DefaultCowPrice, Buffalo: DefaultBuffaloPrice}
}

// For returns the price of the given milk type.
func (p Prices) For(m Milk) float64 {
	if m == MilkBuffalo {
		return p.Buffalo
	}
	return p.Cow
}

// Valid reports whether both prices are finite and non-negative.
func (p Prices) Valid() bool {
	return validPrice(p.Cow) && validPrice(p.Buffalo)
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// FormatAmount renders an amount without trailing zeros ("60", "62.5").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
