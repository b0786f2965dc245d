package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{20 * time.Minute, "20m"},
		{20*time.Minute + 30*time.Second, "20m30s"},
		{time.Hour + 10*time.Minute, "1h10m"},
		{time.Hour + 10*time.Minute + 30*time.Second, "1h10m30s"},
		{time.Hour + 5*time.Second, "1h5s"},
		{0, "0s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

func TestSnapshotProgress(t *testing.T) {
	s := &EncodeSnapshot{Stage: StageEncode, Frame: 25, TotalFrames: 100}
	assert.InDelta(t, 0.25, s.Progress(), 1e-9)

	// Overshoot is clamped; ffmpeg can report one frame past the schedule.
	s.Frame = 101
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)

	s = &EncodeSnapshot{Stage: StageDone}
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)

	s = &EncodeSnapshot{Stage: StagePrepare}
	assert.Zero(t, s.Progress())
}

func TestSnapshotIsDone(t *testing.T) {
	assert.False(t, (&EncodeSnapshot{Stage: StageEncode}).IsDone())
	assert.True(t, (&EncodeSnapshot{Stage: StageDone}).IsDone())
	assert.True(t, (&EncodeSnapshot{Stage: StageEncode, Failed: true}).IsDone())
}
