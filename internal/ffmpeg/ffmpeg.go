// Package ffmpeg drives the external ffmpeg process that turns timer labels
// into a video. timergen never touches pixels itself: the lavfi color source
// paints the background, drawtext renders the labels, and a sendcmd script
// swaps the label at each frame offset.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Locate finds the ffmpeg binary on $PATH.
func Locate() (string, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf("ffmpeg not found on $PATH (%s): %w", os.Getenv("PATH"), err)
	}
	return path, nil
}

// Runner executes ffmpeg passes and streams their progress.
type Runner struct {
	bin string
}

// NewRunner creates a runner for the given ffmpeg binary.
func NewRunner(bin string) *Runner {
	return &Runner{bin: bin}
}

// Encode runs the main encode pass. onProgress, if non-nil, receives each
// progress record ffmpeg emits.
func (r *Runner) Encode(ctx context.Context, params EncodeParams, onProgress func(Progress)) error {
	return r.run(ctx, params.Args(), onProgress)
}

// Reverse runs the countdown pass, re-encoding input played backwards.
func (r *Runner) Reverse(ctx context.Context, input, output string, onProgress func(Progress)) error {
	return r.run(ctx, reverseArgs(input, output), onProgress)
}

// run starts ffmpeg, consumes its progress stream from stdout, and reports
// a failure with the tail of stderr attached.
func (r *Runner) run(ctx context.Context, args []string, onProgress func(Progress)) error {
	cmd := exec.CommandContext(ctx, r.bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open ffmpeg stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	if onProgress == nil {
		onProgress = func(Progress) {}
	}
	parseErr := ParseProgress(stdout, onProgress)

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg failed: %w: %s", err, stderrTail(&stderr))
	}
	if parseErr != nil {
		return fmt.Errorf("failed to read ffmpeg progress: %w", parseErr)
	}
	return nil
}

// stderrTail returns the last line of ffmpeg's stderr, which carries the
// actionable message.
func stderrTail(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
