package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Token is a tradeable token as listed by the token endpoint
type Token struct {
	Name     string
	Address  string
	Symbol   string
	ImageURL string
	PriceUSD decimal.Decimal // zero when the endpoint has no rate
}

// HasPrice reports whether the endpoint returned a USD rate for the token
func (t Token) HasPrice() bool {
	return t.PriceUSD.IsPositive()
}

// Catalog is the ordered token list produced by a single load
type Catalog []Token

// Filter returns the tokens whose name, symbol or address contains query,
// ignoring case. An empty query returns c as is.
func Filter(c Catalog, query string) Catalog {
	if query == "" {
		return c
	}

	q := strings.ToLower(query)
	out := Catalog{}
	for _, t := range c {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Symbol), q) ||
			strings.Contains(strings.ToLower(t.Address), q) {
			out = append(out, t)
		}
	}
	return out
}
