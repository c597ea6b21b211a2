// Package money formatea montos en pesos colombianos para documentos impresos.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// Format devuelve el monto redondeado a pesos con separador de miles: "$1.234.567".
// Los negativos llevan el signo antes del símbolo: "-$20.000".
func Format(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-$" + printer.Sprintf("%d", -n)
	}
	return "$" + printer.Sprintf("%d", n)
}
