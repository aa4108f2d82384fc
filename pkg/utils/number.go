package utils

import "math"

// Round arredonda para o número de casas decimais informado
func Round(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}

// RoundWithTwoDecimalPlace arredonda valores monetários para centavos
func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
