package ffmpeg

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// Progress is one update from ffmpeg's -progress stream.
type Progress struct {
	Frame   int64         // frames written so far
	OutTime time.Duration // output timestamp reached
	Speed   float64       // encode speed relative to realtime, 0 if unknown
	Done    bool          // true on the final "progress=end" record
}

// ParseProgress reads ffmpeg's key=value progress stream and invokes fn once
// per record. Records are delimited by the "progress=" key, which ffmpeg
// always emits last. Unknown keys are ignored so newer ffmpeg builds keep
// working.
func ParseProgress(r io.Reader, fn func(Progress)) error {
	scanner := bufio.NewScanner(r)
	var cur Progress

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		switch key {
		case "frame":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				cur.Frame = n
			}
		case "out_time_us":
			if us, err := strconv.ParseInt(value, 10, 64); err == nil {
				cur.OutTime = time.Duration(us) * time.Microsecond
			}
		case "speed":
			// Formatted like "3.14x"; "N/A" during startup.
			if s, err := strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64); err == nil {
				cur.Speed = s
			}
		case "progress":
			cur.Done = value == "end"
			fn(cur)
		}
	}

	return scanner.Err()
}
