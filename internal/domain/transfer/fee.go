package transfer

import (
	"strconv"
	"strings"
)

// ParseFee converts a fee cell into millions of euros. "€2.50m" is 2.5,
// "€500k" is 0.5 and "loan fee: €100k" is 0.1. Dashes, blanks and wording
// such as "free transfer" are 0.
func ParseFee(text string) float64 {
	if strings.TrimSpace(text) == "" || strings.Contains(text, "-") {
		return 0
	}
	v := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(text), "€", ""))
	if strings.Contains(v, "loan fee:") {
		v = strings.TrimSpace(v[strings.LastIndex(v, ":")+1:])
	}

	var scale float64
	switch {
	case strings.Contains(v, "m"):
		v, scale = strings.ReplaceAll(v, "m", ""), 1
	case strings.Contains(v, "k"):
		v, scale = strings.ReplaceAll(v, "k", ""), 0.001
	case strings.HasSuffix(v, "th."):
		v, scale = strings.TrimSuffix(v, "th."), 0.001
	default:
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return n * scale
}

// ClassifyType reads the transfer type from fee wording. "free" takes
// precedence over "loan".
func ClassifyType(text string) Type {
	lower := strings.ToLower(text)
	t := TypePermanent
	if strings.Contains(lower, "loan") {
		t = TypeLoan
	}
	if strings.Contains(lower, "free") {
		t = TypeFree
	}
	return t
}

// CleanFeeRaw strips the currency sign kept in the Fee_Raw column.
func CleanFeeRaw(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "€", ""))
}
