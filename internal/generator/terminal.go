package generator

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	// ANSI escape sequences for terminal progress reporting
	ansiProgressFormat = "\033]9;4;1;%d\007"  // Windows Terminal progress: state=1 (normal), percent=%d
	ansiClearProgress  = "\033]9;4;0;\007"    // Windows Terminal progress: state=0 (clear)
	ansiErrorState     = "\033]9;4;2;100\007" // Windows Terminal progress: state=2 (error), 100%
)

// TerminalController emits terminal progress escape sequences.
// Auto-detects TTY and only emits control sequences when appropriate.
type TerminalController struct {
	isTTY bool
}

// NewTerminalController creates a new terminal controller
func NewTerminalController() *TerminalController {
	return &TerminalController{
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// SetProgress sets the terminal progress indicator
func (t *TerminalController) SetProgress(percent int) {
	if t.isTTY {
		fmt.Fprintf(os.Stderr, ansiProgressFormat, percent)
	}
}

// ClearProgress clears the terminal progress indicator
func (t *TerminalController) ClearProgress() {
	if t.isTTY {
		fmt.Fprint(os.Stderr, ansiClearProgress)
	}
}

// SetErrorState sets the terminal to error state
func (t *TerminalController) SetErrorState() {
	if t.isTTY {
		fmt.Fprint(os.Stderr, ansiErrorState)
	}
}
