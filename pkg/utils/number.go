package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// FormatMoney sempre escreve duas casas decimais, ex.: 10 -> "10.00"
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
