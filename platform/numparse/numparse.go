// Package numparse provides lenient numeric parsing for user-supplied
// shipment attributes. Invalid values default to zero instead of erroring:
// the pricing chain treats zero as "no effect", which matches how the
// booking form has always behaved.
package numparse

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Float parses a free-form numeric string. Comma decimal separators are
// accepted ("2,5" == 2.5) and surrounding whitespace is ignored.
// Unparseable input returns 0. Negative values pass through unchanged;
// neutralizing them is the calculator's job.
func Float(value string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// Lenient is a float64 that unmarshals from either a JSON number or a
// free-form string, applying the same default-to-zero rule as Float.
type Lenient float64

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lenient) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*l = 0
		return nil
	}

	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			*l = 0
			return nil
		}
		*l = Lenient(Float(text))
		return nil
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err != nil {
		*l = 0
		return nil
	}
	*l = Lenient(number)
	return nil
}

// Value returns the underlying float64.
func (l Lenient) Value() float64 {
	return float64(l)
}
