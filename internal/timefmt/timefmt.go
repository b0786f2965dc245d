// Package timefmt implements the timer display template language.
//
// A template mixes literal text with %-directives that expand to components
// of an elapsed duration: %H (hours), %M (minutes), %S (seconds) and
// %m (milliseconds). A directive may carry a digit count ("%3H") to keep the
// last N digits of the value, or a negative digit count ("%-2m") to keep the
// first N digits instead. "%%" produces a literal percent sign.
//
// A parsed FormatSpec is immutable and safe for concurrent use; rendering is
// a pure function of the spec and the duration.
package timefmt

// DefaultTemplate is the template used when the user supplies none:
// two minute digits, two second digits, the first two millisecond digits.
const DefaultTemplate = "%M:%S.%-2m"

// FieldKind identifies a duration component addressable from a template.
// The declaration order is the fixed decomposition order, largest unit first.
type FieldKind int

const (
	// Hour is the %H directive
	Hour FieldKind = iota
	// Minute is the %M directive
	Minute
	// Second is the %S directive
	Second
	// Millisecond is the %m directive
	Millisecond

	numFieldKinds
)

// weightMS is each kind's magnitude in milliseconds.
var weightMS = [numFieldKinds]int64{
	Hour:        3600000,
	Minute:      60000,
	Second:      1000,
	Millisecond: 1,
}

// naturalWidth is the minimum zero-padded digit count for each kind's normal
// range (0-59 for minutes/seconds, 0-999 for milliseconds; hours have no
// upper bound but render at two digits by default).
var naturalWidth = [numFieldKinds]int{
	Hour:        2,
	Minute:      2,
	Second:      2,
	Millisecond: 3,
}

// WeightMS returns the kind's magnitude in milliseconds.
func (k FieldKind) WeightMS() int64 { return weightMS[k] }

// String returns the directive letter for the kind.
func (k FieldKind) String() string {
	switch k {
	case Hour:
		return "H"
	case Minute:
		return "M"
	case Second:
		return "S"
	case Millisecond:
		return "m"
	default:
		return "?"
	}
}

// Direction selects which end of a field value survives width truncation.
type Direction int

const (
	// TrimRight keeps the last N digits (low-order truncation, a modulo)
	TrimRight Direction = iota
	// TrimLeft keeps the first N digits of the zero-padded value
	TrimLeft
)

// WidthSpec is a resolved digit count and truncation direction for a field.
type WidthSpec struct {
	Direction Direction
	Digits    int
}

// defaultWidth returns the width used when a directive carries no digit run.
func defaultWidth(k FieldKind) WidthSpec {
	if k == Millisecond {
		return WidthSpec{Direction: TrimLeft, Digits: 3}
	}
	return WidthSpec{Direction: TrimRight, Digits: 2}
}

// TokenKind discriminates the two token variants.
type TokenKind int

const (
	// TokenLiteral is pass-through text
	TokenLiteral TokenKind = iota
	// TokenField is a resolved %-directive
	TokenField
)

// Token is one element of a parsed template: either a literal run of text or
// a field directive with its resolved width.
type Token struct {
	Kind  TokenKind
	Text  string    // literal text, TokenLiteral only
	Field FieldKind // TokenField only
	Width WidthSpec // TokenField only
}

// FormatSpec is a parsed template: an ordered token sequence plus the set of
// field kinds it references. Construct with Parse; read-only afterwards.
type FormatSpec struct {
	tokens  []Token
	present [numFieldKinds]bool
}

// Tokens returns a copy of the parsed token sequence, in template order.
func (s *FormatSpec) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Uses reports whether the template references the given field kind.
func (s *FormatSpec) Uses(k FieldKind) bool { return s.present[k] }
