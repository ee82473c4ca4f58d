// Package currency converts and formats prices for display. All stored
// amounts are IDR; MYR is derived from a single static rate at render time.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency string

const (
	IDR Currency = "IDR" // base currency, what the database holds
	MYR Currency = "MYR"
)

// DefaultRate is how many IDR one MYR buys when MYR_TO_IDR_RATE is unset.
const DefaultRate = 3400

// Parse validates a client-supplied currency code.
func Parse(code string) (Currency, bool) {
	switch Currency(code) {
	case IDR:
		return IDR, true
	case MYR:
		return MYR, true
	}
	return "", false
}

func Symbol(cur Currency) string {
	if cur == MYR {
		return "RM"
	}
	return "Rp"
}

func Name(cur Currency) string {
	if cur == MYR {
		return "Malaysian Ringgit"
	}
	return "Indonesian Rupiah"
}

// Detect infers the display currency from an Accept-Language header.
// Malay-speaking clients get MYR, everyone else the base currency.
func Detect(acceptLanguage string) Currency {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return IDR
	}
	base, _ := tags[0].Base()
	if base.String() == "ms" {
		return MYR
	}
	return IDR
}

type Converter struct {
	rate float64
}

func NewConverter(rate float64) Converter {
	if rate <= 0 {
		rate = DefaultRate
	}
	return Converter{rate: rate}
}

// Convert translates an amount between the two supported currencies.
// Same-currency conversion is the identity, so IDR→MYR→IDR round-trips.
func (c Converter) Convert(amount float64, from, to Currency) float64 {
	if from == to {
		return amount
	}
	if from == IDR && to == MYR {
		return amount / c.rate
	}
	if from == MYR && to == IDR {
		return amount * c.rate
	}
	return amount
}

var (
	indonesian = message.NewPrinter(language.Indonesian)
	malay      = message.NewPrinter(language.Malay)
)

// Format renders a stored (IDR) amount in the requested display currency:
// IDR with no decimals and Indonesian grouping, MYR with two decimals and
// Malay grouping.
func (c Converter) Format(amountIDR float64, cur Currency) string {
	converted := c.Convert(amountIDR, IDR, cur)
	if cur == MYR {
		return "RM " + malay.Sprintf("%.2f", converted)
	}
	return "Rp " + indonesian.Sprintf("%.0f", converted)
}
