package generator

// Architecture (MVC pattern, pipeline flavored):
//   - Controller: runs the prepare -> encode -> reverse/copy pipeline
//   - View: presentation layer interface (types.View; tui or line mode)
//   - ffmpeg.Runner: external process boundary doing the actual video work
//   - Types: domain models and DTOs (internal/types)
//
// Data flow: timeline (schedule) -> timefmt (labels) -> ffmpeg (pixels),
// with EncodeSnapshot DTOs streaming Controller -> View.

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ivoronin/timergen/internal/ffmpeg"
	"github.com/ivoronin/timergen/internal/session"
	"github.com/ivoronin/timergen/internal/timefmt"
	"github.com/ivoronin/timergen/internal/timeline"
	"github.com/ivoronin/timergen/internal/tui"
	"github.com/ivoronin/timergen/internal/types"
)

// resultFile is the intermediate encode output inside the session directory.
const resultFile = "result.mp4"

// scriptFile is the sendcmd script inside the session directory.
const scriptFile = "cmds.txt"

// Controller runs the timer video pipeline (Controller layer).
type Controller struct {
	config Config
	view   types.View
	diag   *Diag
	runner *ffmpeg.Runner
	spec   *timefmt.FormatSpec

	startTime time.Time
	outfile   string
}

// New creates a Controller, validating the configuration, compiling the
// label template and locating ffmpeg up front so failures surface before any
// files are touched.
func New(config Config) (*Controller, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	spec, err := timefmt.Parse(config.Template)
	if err != nil {
		return nil, fmt.Errorf("invalid format template %q: %w", config.Template, err)
	}

	bin, err := ffmpeg.Locate()
	if err != nil {
		return nil, err
	}

	if config.OutputFrameRate == 0 {
		config.OutputFrameRate = config.FrameRate
	}
	config.TextColor = NormalizeColor(config.TextColor)
	config.Background = NormalizeColor(config.Background)
	if config.BaseDir == "" {
		config.BaseDir = "."
	}

	var view types.View
	if config.LineMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		view = NewLineView(os.Stdout)
	} else {
		view = tui.NewView()
	}

	return &Controller{
		config: config,
		view:   view,
		diag:   NewDiag(config.Verbosity, os.Stderr),
		runner: ffmpeg.NewRunner(bin),
		spec:   spec,
	}, nil
}

// Run executes the pipeline: schedule labels, write the sendcmd script,
// encode, then reverse or copy into the final output.
func (c *Controller) Run(ctx context.Context) error {
	defer c.view.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Quitting the TUI cancels the running ffmpeg pass.
	go func() {
		select {
		case <-c.view.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	c.startTime = time.Now()

	sess, err := session.New(c.config.BaseDir, c.config.KeepSession)
	if err != nil {
		return err
	}
	c.diag.Printf(1, "Created directory %s", sess.Dir)
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			c.diag.Printf(0, "WARNING: %v", cerr)
		} else if sess.Kept() {
			c.diag.Printf(1, "Directory %s was KEPT.", sess.Dir)
		} else {
			c.diag.Printf(1, "Deleted directory %s", sess.Dir)
		}
	}()

	c.outfile = c.config.Outfile
	if c.outfile == "" {
		c.outfile = sess.DefaultOutfile()
	}

	labels, frameCount, err := c.prepare(sess)
	if err != nil {
		return c.fail(types.StagePrepare, err)
	}

	if err := c.encode(ctx, sess, labels, frameCount); err != nil {
		return c.fail(types.StageEncode, err)
	}

	if c.config.Reverse {
		if err := c.reverse(ctx, sess, frameCount); err != nil {
			return c.fail(types.StageReverse, err)
		}
	} else if err := copyFile(sess.Path(resultFile), c.outfile); err != nil {
		return c.fail(types.StageEncode, err)
	}

	c.publish(&types.EncodeSnapshot{Stage: types.StageDone})
	c.diag.Printf(1, "Wrote %s", c.outfile)
	return nil
}

// prepare builds the frame schedule and writes the sendcmd script.
func (c *Controller) prepare(sess *session.Session) ([]string, int, error) {
	tl, err := timeline.New(c.config.Duration, c.config.FrameRate)
	if err != nil {
		return nil, 0, err
	}

	labels, err := tl.Labels(c.spec)
	if err != nil {
		return nil, 0, err
	}
	c.diag.Printf(2, "Scheduled %d frames", tl.FrameCount())
	c.publish(&types.EncodeSnapshot{
		Stage:       types.StagePrepare,
		TotalFrames: int64(tl.FrameCount()),
	})

	script, err := os.Create(sess.Path(scriptFile))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create command script: %w", err)
	}
	defer script.Close() //nolint:errcheck

	if err := ffmpeg.WriteCommandScript(script, tl.OffsetsMS(), labels); err != nil {
		return nil, 0, err
	}
	if err := script.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to write command script: %w", err)
	}
	c.diag.Printf(2, "Wrote command script %s", script.Name())

	return labels, tl.FrameCount(), nil
}

// encode runs the main ffmpeg pass over the label schedule.
func (c *Controller) encode(ctx context.Context, sess *session.Session, labels []string, frameCount int) error {
	params := ffmpeg.EncodeParams{
		Width:      c.config.Width,
		Height:     c.config.Height,
		FrameRate:  c.config.FrameRate,
		OutputRate: c.config.OutputFrameRate,
		DurationS:  c.config.Duration.Seconds(),
		Background: c.config.Background,
		TextColor:  c.config.TextColor,
		FontFamily: c.config.FontFamily,
		FontSize:   c.config.FontSize,
		ScriptPath: sess.Path(scriptFile),
		Output:     sess.Path(resultFile),
	}

	return c.runner.Encode(ctx, params, func(p ffmpeg.Progress) {
		c.publish(&types.EncodeSnapshot{
			Stage:       types.StageEncode,
			Frame:       p.Frame,
			TotalFrames: int64(frameCount),
			Label:       labelAt(labels, p.Frame),
			Speed:       p.Speed,
		})
	})
}

// reverse runs the countdown pass into the final output.
func (c *Controller) reverse(ctx context.Context, sess *session.Session, frameCount int) error {
	return c.runner.Reverse(ctx, sess.Path(resultFile), c.outfile, func(p ffmpeg.Progress) {
		c.publish(&types.EncodeSnapshot{
			Stage:       types.StageReverse,
			Frame:       p.Frame,
			TotalFrames: int64(frameCount),
			Speed:       p.Speed,
		})
	})
}

// publish fills in run-wide snapshot fields and hands it to the view.
func (c *Controller) publish(snapshot *types.EncodeSnapshot) {
	snapshot.Outfile = c.outfile
	snapshot.StartTime = c.startTime
	snapshot.SnapshotTime = time.Now()
	c.view.RenderSnapshot(snapshot)
}

// fail reports a failed snapshot for the stage and wraps the error.
func (c *Controller) fail(stage types.Stage, err error) error {
	c.publish(&types.EncodeSnapshot{Stage: stage, Failed: true})
	return fmt.Errorf("%s stage failed: %w", stage, err)
}

// labelAt returns the label for the frame ffmpeg just reported, clamped to
// the schedule (ffmpeg counts one past the final frame).
func labelAt(labels []string, frame int64) string {
	if len(labels) == 0 {
		return ""
	}
	if frame >= int64(len(labels)) {
		frame = int64(len(labels)) - 1
	}
	if frame < 0 {
		frame = 0
	}
	return labels[frame]
}

// copyFile copies the intermediate result into the final output path.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close() //nolint:errcheck

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
