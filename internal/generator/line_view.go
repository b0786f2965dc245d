// Package generator orchestrates the timer video pipeline.
//
// This file contains the LineView implementation for CI/CD-friendly output.
package generator

import (
	"io"

	"github.com/ivoronin/timergen/internal/types"
)

// LineView implements types.View for line-based output suitable for CI/CD
// pipelines. It still feeds the terminal's native progress indicator when
// stderr is a TTY.
type LineView struct {
	renderer *LineRenderer
	terminal *TerminalController
	done     chan struct{}
}

// NewLineView creates a new line mode view
func NewLineView(writer io.Writer) *LineView {
	return &LineView{
		renderer: NewLineRenderer(writer),
		terminal: NewTerminalController(),
		done:     make(chan struct{}),
	}
}

// RenderSnapshot displays the snapshot as a timestamped line
func (v *LineView) RenderSnapshot(snapshot *types.EncodeSnapshot) {
	v.renderer.RenderSnapshot(snapshot)

	switch {
	case snapshot.Failed:
		v.terminal.SetErrorState()
	case snapshot.Stage == types.StageDone:
		v.terminal.ClearProgress()
	default:
		v.terminal.SetProgress(int(snapshot.Progress() * 100))
	}
}

// Shutdown performs cleanup
func (v *LineView) Shutdown() {
	v.terminal.ClearProgress()
}

// Done implements types.View. Line mode has no quit interaction, so the
// channel never closes.
func (v *LineView) Done() <-chan struct{} {
	return v.done
}
