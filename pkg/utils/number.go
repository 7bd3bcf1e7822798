package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para duas casas usando aritmética decimal,
// evitando erros como 1.005 -> 1.00
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Percentage calcula part/total*100 com duas casas, retornando 0 quando total é 0
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}
