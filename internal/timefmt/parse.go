package timefmt

import "strings"

// maxWidthDigits bounds directive widths so keep-last-N arithmetic stays
// within int64 (10^18 < 2^63).
const maxWidthDigits = 18

// Parse compiles a format template into a FormatSpec.
//
// The template is scanned left to right in a single pass. Anything outside a
// %-directive is literal text; adjacent literal characters are coalesced into
// one token. A directive is '%', an optional '-', an optional decimal digit
// run and exactly one of the letters H, M, S or m. A bare directive ("%M",
// "%-M") uses the kind's default width; a digit run overrides it, with the
// leading '-' switching truncation to keep the first digits instead of the
// last. Each field kind may appear at most once.
func Parse(template string) (*FormatSpec, error) {
	spec := &FormatSpec{}

	var lit strings.Builder
	flushLiteral := func() {
		if lit.Len() > 0 {
			spec.tokens = append(spec.tokens, Token{Kind: TokenLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		if template[i] != '%' {
			lit.WriteByte(template[i])
			i++
			continue
		}

		start := i
		i++ // consume '%'

		if i < len(template) && template[i] == '%' {
			lit.WriteByte('%')
			i++
			continue
		}

		negative := false
		if i < len(template) && template[i] == '-' {
			negative = true
			i++
		}

		digitStart := i
		for i < len(template) && template[i] >= '0' && template[i] <= '9' {
			i++
		}
		digits := template[digitStart:i]

		if i >= len(template) {
			return nil, &FormatError{Code: ErrUnterminatedDirective, Pos: start}
		}

		kind, ok := fieldForLetter(template[i])
		if !ok {
			return nil, &FormatError{Code: ErrUnterminatedDirective, Pos: start}
		}
		i++

		if spec.present[kind] {
			return nil, &FormatError{Code: ErrDuplicateField, Pos: start}
		}
		spec.present[kind] = true

		// A missing digit run always means the default, even after '-'.
		width := defaultWidth(kind)
		if digits != "" {
			n, ok := parseWidth(digits)
			if !ok {
				return nil, &FormatError{Code: ErrInvalidWidth, Pos: start}
			}
			width = WidthSpec{Direction: TrimRight, Digits: n}
			if negative {
				width.Direction = TrimLeft
			}
		}

		flushLiteral()
		spec.tokens = append(spec.tokens, Token{Kind: TokenField, Field: kind, Width: width})
	}

	flushLiteral()
	return spec, nil
}

// fieldForLetter maps a directive letter to its field kind.
func fieldForLetter(c byte) (FieldKind, bool) {
	switch c {
	case 'H':
		return Hour, true
	case 'M':
		return Minute, true
	case 'S':
		return Second, true
	case 'm':
		return Millisecond, true
	default:
		return 0, false
	}
}

// parseWidth converts a directive's digit run into a width count, rejecting
// zero and anything above maxWidthDigits.
func parseWidth(digits string) (int, bool) {
	if len(digits) > maxWidthDigits {
		return 0, false
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	if n < 1 || n > maxWidthDigits {
		return 0, false
	}
	return n, true
}
