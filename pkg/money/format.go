// Package money formatea importes para documentos (PDF) según la moneda.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var myr = currency.MustParseISO("MYR")

// Format devuelve el importe con símbolo y separadores, ej: Format(12500, "USD") = "$ 12,500.00".
// MYR usa la convención de Malasia; el resto, la de inglés de EE.UU.
// Si la moneda no es ISO 4217 válida se usa USD.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	tag := language.AmericanEnglish
	if unit == myr {
		tag = language.Malay
	}
	p := message.NewPrinter(tag)
	f, _ := amount.Round(2).Float64()
	return p.Sprint(currency.Symbol(unit.Amount(f)))
}
