package generator

import (
	"errors"
	"time"

	"github.com/ivoronin/timergen/internal/timefmt"
)

const (
	// DefaultFrameRate balances label granularity with encode time
	DefaultFrameRate = 25
	// DefaultFontSize in pixels
	DefaultFontSize = 40
	// DefaultWidth of the video in pixels
	DefaultWidth = 250
	// DefaultHeight of the video in pixels
	DefaultHeight = 50
	// DefaultTextColor is white text
	DefaultTextColor = "#FFFFFF"
	// DefaultBackground is a black canvas
	DefaultBackground = "#000000"
)

// Config holds configuration parameters for one timer video.
// Use DefaultConfig() to obtain sensible defaults, then override as needed.
type Config struct {
	Duration    time.Duration
	Outfile     string // empty means "<session uuid>.mp4"
	Reverse     bool   // play backwards, turning the count-up into a countdown
	KeepSession bool   // keep the temporary session directory

	FontFamily string // fontconfig family, empty for ffmpeg's default
	FontSize   int
	Width      int
	Height     int
	TextColor  string
	Background string

	Template        string // time-format template for the on-screen label
	FrameRate       int    // capture frame rate (label updates per second)
	OutputFrameRate int    // frame rate of the written file, 0 = FrameRate

	Verbosity int    // 0 = quiet, higher levels add stderr diagnostics
	LineMode  bool   // force line-based output (default: TUI when on a TTY)
	BaseDir   string // parent of the session directory, "" = current dir
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		FontSize:   DefaultFontSize,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		TextColor:  DefaultTextColor,
		Background: DefaultBackground,
		Template:   timefmt.DefaultTemplate,
		FrameRate:  DefaultFrameRate,
		BaseDir:    ".",
	}
}

// validate rejects configurations the pipeline cannot run with. Template and
// frame rate bounds are checked by their own packages.
func (c Config) validate() error {
	if c.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	if c.Width < 1 || c.Height < 1 {
		return errors.New("video dimensions must be positive")
	}
	if c.FontSize < 1 {
		return errors.New("font size must be positive")
	}
	if c.OutputFrameRate < 0 {
		return errors.New("output frame rate must not be negative")
	}
	return nil
}
