// Package timeline computes the per-frame elapsed offsets for a timer video.
//
// Offsets follow the capture frame rate: every whole second of timer duration
// contributes one frame per 1000/fps milliseconds (integer step), and a
// fractional final second contributes frames while their offset within that
// second stays below the remainder.
package timeline

import (
	"errors"
	"time"

	"github.com/ivoronin/timergen/internal/timefmt"
)

var (
	// ErrInvalidDuration means the timer duration is zero or negative
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrInvalidFrameRate means the capture frame rate is below 1 or above 1000
	ErrInvalidFrameRate = errors.New("frame rate must be between 1 and 1000")
)

// Timeline is the fixed frame schedule for one timer video.
type Timeline struct {
	offsetsMS []int64
}

// New builds the frame schedule for a timer of the given duration captured at
// fps frames per second.
func New(duration time.Duration, fps int) (*Timeline, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if fps < 1 || fps > 1000 {
		return nil, ErrInvalidFrameRate
	}

	durationMS := duration.Milliseconds()
	wholeSeconds := durationMS / 1000
	fractionMS := durationMS % 1000
	stepMS := int64(1000 / fps)

	offsets := make([]int64, 0, (wholeSeconds+1)*int64(fps))
	for sec := int64(0); sec < wholeSeconds; sec++ {
		for k := 0; k < fps; k++ {
			offsets = append(offsets, sec*1000+int64(k)*stepMS)
		}
	}
	for k := 0; k < fps && int64(k)*stepMS < fractionMS; k++ {
		offsets = append(offsets, wholeSeconds*1000+int64(k)*stepMS)
	}

	return &Timeline{offsetsMS: offsets}, nil
}

// FrameCount returns the number of frames in the schedule.
func (t *Timeline) FrameCount() int { return len(t.offsetsMS) }

// OffsetsMS returns a copy of every frame's elapsed offset in milliseconds,
// in frame order.
func (t *Timeline) OffsetsMS() []int64 {
	out := make([]int64, len(t.offsetsMS))
	copy(out, t.offsetsMS)
	return out
}

// Labels renders the display label for every frame using the given spec.
func (t *Timeline) Labels(spec *timefmt.FormatSpec) ([]string, error) {
	labels := make([]string, len(t.offsetsMS))
	for i, ms := range t.offsetsMS {
		label, err := spec.Render(ms)
		if err != nil {
			return nil, err
		}
		labels[i] = label
	}
	return labels, nil
}
