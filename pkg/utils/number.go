package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount formata um valor monetário para os CSVs de saída: duas casas
// no máximo, sempre com parte decimal (20 -> "20.0", 770.04 -> "770.04").
func FormatAmount(f float64) string {
	s := strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
