package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as dollars with thousands separators
// and two decimals, e.g. 12750 -> "$12,750.00".
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%.2f", amount)
}
