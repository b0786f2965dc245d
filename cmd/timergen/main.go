// Package main implements the timergen command.
//
// timergen renders a simple timer video (counting up, or down with -R) for a
// given duration, delegating image and video composition to ffmpeg. The
// on-screen label is controlled by a compact time-format template language.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivoronin/timergen/internal/generator"
	"github.com/ivoronin/timergen/internal/timefmt"
)

// version is the timergen release version.
const version = "0.1.0"

// parseDurationArg reads the timer duration from the positional argument.
// A plain number is taken as seconds (possibly fractional); otherwise Go
// duration syntax like "1m30s" is accepted.
func parseDurationArg(arg string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(arg, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}

	d, err := time.ParseDuration(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid duration '%s': expected seconds (e.g., 90 or 12.5) or a duration (e.g., 1m30s)", arg)
	}
	return d, nil
}

func main() {
	config := generator.DefaultConfig()
	var videoFrameRate int

	cmd := &cobra.Command{
		Use:     "timergen [flags] DURATION",
		Short:   "Generate a simple timer video for a given duration",
		Version: version,
		Long: `Generate a simple timer video for a given duration.

timergen draws a counting timer over a solid background and hands the video
composition to ffmpeg, which must be available on $PATH. The on-screen label
is controlled by a format template (-F):

  %H   hours        (default: last 2 digits)
  %M   minutes      (default: last 2 digits)
  %S   seconds      (default: last 2 digits)
  %m   milliseconds (default: first 3 digits)
  %%   a literal % sign

A directive may carry a digit count to keep that many last digits of the
value ("%3H"), or a '-' and a digit count to keep the first digits instead
("%-2m"). Each field may be used at most once.`,
		Example: `  # One minute count-up with the default label (MM:SS.cc)
  timergen 60

  # Five minute countdown, custom size and colors
  timergen -R -W 640 -H 120 -t '#00FF00' -b black 300

  # Hour-scale timer with a custom label
  timergen -F '%H:%M:%S' 2.5h`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := parseDurationArg(args[0])
			if err != nil {
				return err
			}
			config.Duration = duration
			config.OutputFrameRate = videoFrameRate

			ctrl, err := generator.New(config)
			if err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return ctrl.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&config.Outfile, "outfile", "o", "",
		"output file name (default: <session uuid>.mp4)")
	flags.BoolVarP(&config.Reverse, "reversed", "R", false,
		"produce reversed output (for countdowns)")
	flags.BoolVar(&config.KeepSession, "keep-session", false,
		"keep temporary files created during the session")
	flags.StringVarP(&config.FontFamily, "font-family", "f", "",
		"font family name (default: ffmpeg's fallback font)")
	flags.IntVarP(&config.FontSize, "font-size", "S", generator.DefaultFontSize,
		"font size in pixels")
	flags.IntVarP(&config.Width, "width", "W", generator.DefaultWidth,
		"video width")
	flags.IntVarP(&config.Height, "height", "H", generator.DefaultHeight,
		"video height")
	flags.StringVarP(&config.TextColor, "text-color", "t", generator.DefaultTextColor,
		"text color (hex or ffmpeg color name)")
	flags.StringVarP(&config.Background, "background", "b", generator.DefaultBackground,
		"background color (hex or ffmpeg color name)")
	flags.StringVarP(&config.Template, "format", "F", timefmt.DefaultTemplate,
		"time format template")
	flags.IntVarP(&config.FrameRate, "frame-rate", "r", generator.DefaultFrameRate,
		"capture frame rate (label updates per second)")
	flags.IntVarP(&videoFrameRate, "video-frame-rate", "a", 0,
		"video frame rate (default: same as --frame-rate)")
	flags.CountVarP(&config.Verbosity, "verbose", "v",
		"verbose output (use multiple times to increase verbosity)")
	flags.BoolVar(&config.LineMode, "line", false,
		"line-based output instead of the interactive display")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
