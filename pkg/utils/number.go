package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários para centavos
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// NonNegative trata valores negativos ou NaN como zero
func NonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}

	return f
}

// PercentOf retorna part como percentual de total, ou 0 quando total não é positivo
func PercentOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}

	return part * 100 / total
}
