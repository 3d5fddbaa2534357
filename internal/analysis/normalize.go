package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberSubstring matches a run of digits and dots anywhere in a token.
	// A run with multiple dots fails float parsing and yields Unparseable.
	numberSubstring = regexp.MustCompile(`[\d.]+`)

	// leadingNumberUnit matches a leading decimal number optionally followed
	// by a unit suffix such as "g/dL", "%" or "µIU/mL".
	leadingNumberUnit = regexp.MustCompile(`^(\d+\.?\d*)\s*([a-zA-Z%/µ]+)?`)
)

// NormalizeValue converts a raw numeric-looking token into a canonical float.
// It strips thousands separators, drops leading comparison signs (the bound
// is treated as the literal value), expands "Lakh"/"Lac" magnitude words, and
// otherwise takes the first decimal number it can find. The second return is
// false when no numeric value can be extracted; malformed input never causes
// an error.
func NormalizeValue(raw string) (float64, bool) {
	v := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if v == "" {
		return 0, false
	}

	if strings.HasPrefix(v, "<") || strings.HasPrefix(v, ">") {
		v = strings.TrimSpace(v[1:])
	}

	if strings.Contains(v, "Lakh") || strings.Contains(v, "Lac") {
		n, ok := firstNumber(v)
		if !ok {
			return 0, false
		}
		return n * 100000, true
	}

	if m := leadingNumberUnit.FindStringSubmatch(v); m != nil && m[1] != "" {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			return n, true
		}
	}

	return firstNumber(v)
}

// firstNumber extracts the first decimal-number substring.
func firstNumber(v string) (float64, bool) {
	s := numberSubstring.FindString(v)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
