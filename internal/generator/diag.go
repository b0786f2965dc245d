package generator

import (
	"fmt"
	"io"
)

// Diag writes verbosity-gated diagnostics. Each message carries a minimum
// verbosity level; -v raises the configured level one step per use.
type Diag struct {
	level int
	w     io.Writer
}

// NewDiag creates a diagnostics writer for the given verbosity level.
func NewDiag(level int, w io.Writer) *Diag {
	return &Diag{level: level, w: w}
}

// Printf writes the message when the configured verbosity is at least min.
func (d *Diag) Printf(min int, format string, args ...any) {
	if d.level >= min {
		fmt.Fprintf(d.w, format+"\n", args...) //nolint:errcheck // stderr write errors not actionable
	}
}
