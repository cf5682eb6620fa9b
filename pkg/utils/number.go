package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundHalfUp arredonda como o Math.round do JavaScript: meios sobem (-2.5 vira -2)
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
