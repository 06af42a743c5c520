package item

import "strings"

// Price is an amount in minor currency units.
type Price struct {
	amount int64
}

func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

func (p Price) Amount() int64 { return p.amount }

type Currency struct {
	code string
}

// NewCurrency accepts any three-letter alphabetic code and upper-cases it.
func NewCurrency(code string) (Currency, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return Currency{}, ErrInvalidCurrency
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return Currency{}, ErrInvalidCurrency
		}
	}
	return Currency{code: c}, nil
}

func (c Currency) String() string { return c.code }
