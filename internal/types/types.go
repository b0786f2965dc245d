// Package types contains shared domain types used across generator and tui packages.
package types //nolint:revive // types is a standard name for shared domain types

import (
	"fmt"
	"time"
)

// Stage identifies a phase of the generation pipeline.
type Stage int

const (
	// StagePrepare covers session setup and command script generation
	StagePrepare Stage = iota
	// StageEncode is the main ffmpeg encode pass
	StageEncode
	// StageReverse is the extra ffmpeg pass that reverses countdown output
	StageReverse
	// StageDone means the output file has been written
	StageDone
)

// String returns a CAPS stage word for line mode output.
func (s Stage) String() string {
	switch s {
	case StagePrepare:
		return "PREPARE"
	case StageEncode:
		return "ENCODE"
	case StageReverse:
		return "REVERSE"
	case StageDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// EncodeSnapshot represents a snapshot of the generation pipeline state.
// This is a pure domain DTO with no infrastructure dependencies.
type EncodeSnapshot struct {
	// Output identification
	Outfile string

	// Pipeline position
	Stage       Stage
	Frame       int64   // frames completed within the current stage
	TotalFrames int64   // frames expected for the current stage
	Label       string  // timer label on the frame currently being encoded
	Speed       float64 // encode speed relative to realtime, 0 if unknown

	// Time tracking
	StartTime    time.Time
	SnapshotTime time.Time

	// Failure flag; set on the final snapshot when a stage errored
	Failed bool
}

// Progress returns stage completion as a 0-1 ratio.
func (s *EncodeSnapshot) Progress() float64 {
	if s.Stage == StageDone {
		return 1.0
	}
	if s.TotalFrames <= 0 {
		return 0
	}
	p := float64(s.Frame) / float64(s.TotalFrames)
	if p > 1.0 {
		p = 1.0
	}
	return p
}

// Elapsed returns wall time spent since the pipeline started.
func (s *EncodeSnapshot) Elapsed() time.Duration {
	return s.SnapshotTime.Sub(s.StartTime)
}

// IsDone returns true when the pipeline finished, successfully or not.
func (s *EncodeSnapshot) IsDone() bool {
	return s.Stage == StageDone || s.Failed
}

// View defines the interface for presenting pipeline progress.
type View interface {
	RenderSnapshot(snapshot *EncodeSnapshot)
	Shutdown()
	Done() <-chan struct{} // Signals view has exited (e.g., user pressed quit)
}

// FormatDuration formats duration with seconds precision.
// Examples: "1h10m", "1h10m30s", "20m", "20m30s", "45s"
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		if m > 0 {
			if s > 0 {
				return fmt.Sprintf("%dh%dm%ds", h, m, s)
			}
			return fmt.Sprintf("%dh%dm", h, m)
		}
		if s > 0 {
			return fmt.Sprintf("%dh%ds", h, s)
		}
		return fmt.Sprintf("%dh", h)
	}

	if m > 0 {
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%ds", s)
}
