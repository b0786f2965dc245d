package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeParams describes the main encode pass: a solid background generated
// by the lavfi color source, with the timer label drawn by drawtext and
// swapped per frame through a sendcmd script.
type EncodeParams struct {
	Width      int
	Height     int
	FrameRate  int     // capture frame rate of the lavfi source
	OutputRate int     // frame rate of the written video
	DurationS  float64 // source duration in seconds
	Background string  // ffmpeg color expression
	TextColor  string  // ffmpeg color expression
	FontFamily string  // fontconfig family name, empty for the default
	FontSize   int
	ScriptPath string // sendcmd script with per-frame drawtext updates
	Output     string
}

// Args builds the full ffmpeg argument list for the encode pass.
func (p EncodeParams) Args() []string {
	args := []string{
		// Progress on stdout, errors only on stderr.
		"-hide_banner", "-loglevel", "error",
		"-nostats", "-progress", "pipe:1",
		// Solid color source at the capture frame rate.
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=c=%s:s=%dx%d:r=%d:d=%.3f",
			p.Background, p.Width, p.Height, p.FrameRate, p.DurationS),
		// Per-frame label swaps, then the label itself, centered.
		"-vf", p.filterGraph(),
		// Codec settings.
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		// Frame rate of the written file.
		"-r", strconv.Itoa(p.OutputRate),
		"-y", p.Output,
	}
	return args
}

// filterGraph composes the sendcmd and drawtext filters.
func (p EncodeParams) filterGraph() string {
	opts := []string{
		"text=''",
		"fontcolor=" + p.TextColor,
		"fontsize=" + strconv.Itoa(p.FontSize),
		"x=(w-text_w)/2",
		"y=(h-text_h)/2",
	}
	if p.FontFamily != "" {
		opts = append(opts, "font='"+p.FontFamily+"'")
	}
	return fmt.Sprintf("sendcmd=f=%s,drawtext=%s", p.ScriptPath, strings.Join(opts, ":"))
}

// reverseArgs builds the argument list for the countdown pass, which plays
// the encoded video backwards into the final output.
func reverseArgs(input, output string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-nostats", "-progress", "pipe:1",
		"-i", input,
		"-vf", "reverse",
		"-y", output,
	}
}
