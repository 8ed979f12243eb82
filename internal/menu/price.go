package menu

import (
	"fmt"
	"math"
	"strings"
)

// Currency is appended to every rendered price.
const Currency = "so'm"

// ParsePrice reads the leading integer of raw the way a number field would:
// surrounding whitespace is ignored, trailing garbage is dropped, anything
// unparsable (or negative, or out of range) yields 0.
func ParsePrice(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	var value int64
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int64(r - '0')
		if value > (math.MaxInt64-d)/10 {
			return 0
		}
		value = value*10 + d
		digits++
	}
	if digits == 0 || negative {
		return 0
	}
	return value
}

// FormatPrice renders a price with the currency suffix.
func FormatPrice(price int64) string {
	return fmt.Sprintf("%d %s", price, Currency)
}
