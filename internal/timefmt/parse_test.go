package timefmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultTemplate(t *testing.T) {
	spec, err := Parse(DefaultTemplate)
	require.NoError(t, err)

	want := []Token{
		{Kind: TokenField, Field: Minute, Width: WidthSpec{Direction: TrimRight, Digits: 2}},
		{Kind: TokenLiteral, Text: ":"},
		{Kind: TokenField, Field: Second, Width: WidthSpec{Direction: TrimRight, Digits: 2}},
		{Kind: TokenLiteral, Text: "."},
		{Kind: TokenField, Field: Millisecond, Width: WidthSpec{Direction: TrimLeft, Digits: 2}},
	}
	assert.Equal(t, want, spec.Tokens())
}

func TestParseDefaultWidths(t *testing.T) {
	tests := []struct {
		template string
		field    FieldKind
		want     WidthSpec
	}{
		{"%H", Hour, WidthSpec{Direction: TrimRight, Digits: 2}},
		{"%M", Minute, WidthSpec{Direction: TrimRight, Digits: 2}},
		{"%S", Second, WidthSpec{Direction: TrimRight, Digits: 2}},
		{"%m", Millisecond, WidthSpec{Direction: TrimLeft, Digits: 3}},
		// A '-' without a digit run is ignored: the default still applies.
		{"%-H", Hour, WidthSpec{Direction: TrimRight, Digits: 2}},
		{"%-m", Millisecond, WidthSpec{Direction: TrimLeft, Digits: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			spec, err := Parse(tt.template)
			require.NoError(t, err)

			tokens := spec.Tokens()
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenField, tokens[0].Kind)
			assert.Equal(t, tt.field, tokens[0].Field)
			assert.Equal(t, tt.want, tokens[0].Width)
		})
	}
}

func TestParseExplicitWidths(t *testing.T) {
	tests := []struct {
		template string
		want     WidthSpec
	}{
		{"%3H", WidthSpec{Direction: TrimRight, Digits: 3}},
		{"%1S", WidthSpec{Direction: TrimRight, Digits: 1}},
		{"%-2m", WidthSpec{Direction: TrimLeft, Digits: 2}},
		{"%-10M", WidthSpec{Direction: TrimLeft, Digits: 10}},
		{"%007S", WidthSpec{Direction: TrimRight, Digits: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			spec, err := Parse(tt.template)
			require.NoError(t, err)

			tokens := spec.Tokens()
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.want, tokens[0].Width)
		})
	}
}

func TestParseLiteralCoalescing(t *testing.T) {
	spec, err := Parse("a b%%c%Md")
	require.NoError(t, err)

	tokens := spec.Tokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: TokenLiteral, Text: "a b%c"}, tokens[0])
	assert.Equal(t, TokenField, tokens[1].Kind)
	assert.Equal(t, Token{Kind: TokenLiteral, Text: "d"}, tokens[2])
}

func TestParseUses(t *testing.T) {
	spec, err := Parse("%M:%S")
	require.NoError(t, err)

	assert.False(t, spec.Uses(Hour))
	assert.True(t, spec.Uses(Minute))
	assert.True(t, spec.Uses(Second))
	assert.False(t, spec.Uses(Millisecond))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		code     FormatErrorCode
		pos      int
	}{
		{"trailing percent", "abc%", ErrUnterminatedDirective, 3},
		{"unknown letter", "%X", ErrUnterminatedDirective, 0},
		{"lone dash", "%-", ErrUnterminatedDirective, 0},
		{"dash then junk", "%-:", ErrUnterminatedDirective, 0},
		{"digits without letter", "%12", ErrUnterminatedDirective, 0},
		{"digits then junk", "%12x", ErrUnterminatedDirective, 0},
		{"zero width", "%0M", ErrInvalidWidth, 0},
		{"zero width negative", "%-0m", ErrInvalidWidth, 0},
		{"absurd width", "%99999999999999999999S", ErrInvalidWidth, 0},
		{"duplicate field", "%M %M", ErrDuplicateField, 3},
		{"duplicate with widths", "%2S:%-1S", ErrDuplicateField, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.template)
			require.Error(t, err)

			var ferr *FormatError
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, tt.code, ferr.Code)
			assert.Equal(t, tt.pos, ferr.Pos)
		})
	}
}

func TestParsePercentEscapeDoesNotStartField(t *testing.T) {
	spec, err := Parse("100%%")
	require.NoError(t, err)

	tokens := spec.Tokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, Token{Kind: TokenLiteral, Text: "100%"}, tokens[0])
}

func TestParseEmptyTemplate(t *testing.T) {
	spec, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, spec.Tokens())
}
