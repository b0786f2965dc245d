package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// decompositionOrder is every field kind, largest weight first.
var decompositionOrder = [...]FieldKind{Hour, Minute, Second, Millisecond}

// Render expands the spec for the given elapsed duration in milliseconds.
//
// The duration is decomposed over the field kinds the template actually uses,
// in descending weight order: the largest present kind takes the whole
// remainder divided by its own weight (absorbing any larger, absent units),
// and each following present kind divides what is left by its own weight.
// Units smaller than every present kind are truncated away, never rounded.
func (s *FormatSpec) Render(durationMS int64) (string, error) {
	if durationMS < 0 {
		return "", ErrNegativeDuration
	}

	var values [numFieldKinds]int64
	remainder := durationMS
	for _, k := range decompositionOrder {
		if !s.present[k] {
			continue
		}
		values[k] = remainder / k.WeightMS()
		remainder %= k.WeightMS()
	}

	var b strings.Builder
	for _, tok := range s.tokens {
		if tok.Kind == TokenLiteral {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(renderField(values[tok.Field], tok.Field, tok.Width))
	}
	return b.String(), nil
}

// renderField renders one decomposed value under its width rule.
//
// TrimRight keeps the last n digits: the value modulo 10^n, zero-padded to
// exactly n digits, so oversized values wrap silently and the field width
// stays bounded. TrimLeft zero-pads the full value to at least the kind's
// natural width and keeps the first n characters.
func renderField(value int64, kind FieldKind, width WidthSpec) string {
	if width.Direction == TrimRight {
		return fmt.Sprintf("%0*d", width.Digits, value%pow10(width.Digits))
	}

	w := width.Digits
	if nat := naturalWidth[kind]; nat > w {
		w = nat
	}
	if dc := digitCount(value); dc > w {
		w = dc
	}
	padded := fmt.Sprintf("%0*d", w, value)
	return padded[:width.Digits]
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

func digitCount(v int64) int {
	return len(strconv.FormatInt(v, 10))
}
