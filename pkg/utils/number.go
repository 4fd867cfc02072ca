package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithSixDecimalPlace arredonda valores de receita, que chegam em
// frações pequenas de moeda depois da divisão por micros.
func RoundWithSixDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1_000_000) / 1_000_000
}
