package generator

// This file contains line mode rendering logic for CI/CD-friendly output.

import (
	"fmt"
	"io"
	"time"

	"github.com/ivoronin/timergen/internal/types"
)

// LineRenderer renders pipeline progress as single-line timestamped output
// suitable for CI/CD pipelines and log aggregation systems.
type LineRenderer struct {
	output io.Writer
}

// NewLineRenderer creates a new line mode renderer
func NewLineRenderer(output io.Writer) *LineRenderer {
	return &LineRenderer{output: output}
}

// RenderSnapshot outputs a single timestamped status line
func (r *LineRenderer) RenderSnapshot(snapshot *types.EncodeSnapshot) {
	fmt.Fprintln(r.output, r.formatStatusLine(snapshot)) //nolint:errcheck // stdout write errors not actionable
}

// formatTimestamp returns compact local time (HH:MM:SS)
func (r *LineRenderer) formatTimestamp(t time.Time) string {
	return t.Local().Format("15:04:05")
}

// formatStatusLine generates the main status line
// Format: <timestamp> <symbol> [STAGE] <detail> [ELAPSED X]
func (r *LineRenderer) formatStatusLine(snapshot *types.EncodeSnapshot) string {
	return fmt.Sprintf("%s %s [%s] %s [ELAPSED %s]",
		r.formatTimestamp(snapshot.SnapshotTime),
		r.formatSymbol(snapshot),
		snapshot.Stage,
		r.formatDetail(snapshot),
		types.FormatDuration(snapshot.Elapsed()),
	)
}

// formatSymbol returns a visual symbol for the pipeline state
func (r *LineRenderer) formatSymbol(snapshot *types.EncodeSnapshot) string {
	switch {
	case snapshot.Failed:
		return "✗"
	case snapshot.Stage == types.StageDone:
		return "✓"
	default:
		return "▶"
	}
}

// formatDetail describes stage-specific progress
func (r *LineRenderer) formatDetail(snapshot *types.EncodeSnapshot) string {
	switch snapshot.Stage {
	case types.StagePrepare:
		return fmt.Sprintf("%d frames scheduled", snapshot.TotalFrames)
	case types.StageEncode, types.StageReverse:
		detail := fmt.Sprintf("frame %d/%d (%d%%)",
			snapshot.Frame, snapshot.TotalFrames, int(snapshot.Progress()*100))
		if snapshot.Label != "" {
			detail += fmt.Sprintf(" [AT %s]", snapshot.Label)
		}
		if snapshot.Speed > 0 {
			detail += fmt.Sprintf(" [SPEED %.1fx]", snapshot.Speed)
		}
		return detail
	case types.StageDone:
		return fmt.Sprintf("wrote %s", snapshot.Outfile)
	default:
		return ""
	}
}
