package ffmpeg

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrScheduleMismatch means the offset and label slices disagree in length.
var ErrScheduleMismatch = errors.New("offsets and labels must have equal length")

// WriteCommandScript writes a sendcmd script that swaps the drawtext text at
// each frame offset. One line per frame:
//
//	12.345 drawtext reinit text=01\:09.42;
func WriteCommandScript(w io.Writer, offsetsMS []int64, labels []string) error {
	if len(offsetsMS) != len(labels) {
		return ErrScheduleMismatch
	}

	for i, ms := range offsetsMS {
		line := fmt.Sprintf("%d.%03d drawtext reinit text=%s;\n",
			ms/1000, ms%1000, escapeText(labels[i]))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write command script: %w", err)
		}
	}
	return nil
}

// textEscaper covers two parser layers at once: the sendcmd file syntax
// (whitespace, ';' and quotes delimit arguments) and drawtext's own option
// parsing (':' and ',' split options, '%' starts a text expansion).
// Backslash-escaping is valid at both layers, so every special character is
// simply prefixed.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`%`, `\%`,
	`:`, `\:`,
	`;`, `\;`,
	`,`, `\,`,
	`=`, `\=`,
	`[`, `\[`,
	`]`, `\]`,
	` `, `\ `,
)

// escapeText makes a timer label safe for use as a sendcmd drawtext argument.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
