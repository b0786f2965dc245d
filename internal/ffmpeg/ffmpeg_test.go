package ffmpeg

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeArgs(t *testing.T) {
	params := EncodeParams{
		Width:      250,
		Height:     50,
		FrameRate:  25,
		OutputRate: 30,
		DurationS:  12.5,
		Background: "black",
		TextColor:  "white",
		FontSize:   40,
		ScriptPath: "timergen-x/cmds.txt",
		Output:     "timergen-x/result.mp4",
	}

	args := argMap(params.Args())

	assert.Equal(t, "lavfi", args["-f"])
	assert.Equal(t, "color=c=black:s=250x50:r=25:d=12.500", args["-i"])
	assert.Equal(t, "libx264", args["-c:v"])
	assert.Equal(t, "yuv420p", args["-pix_fmt"])
	assert.Equal(t, "30", args["-r"])
	assert.Equal(t, "pipe:1", args["-progress"])

	vf := args["-vf"]
	assert.True(t, strings.HasPrefix(vf, "sendcmd=f=timergen-x/cmds.txt,drawtext="), vf)
	assert.Contains(t, vf, "fontcolor=white")
	assert.Contains(t, vf, "fontsize=40")
	assert.Contains(t, vf, "x=(w-text_w)/2")
	assert.NotContains(t, vf, "font='", "no font option without a family")
}

func TestEncodeArgsWithFontFamily(t *testing.T) {
	params := EncodeParams{FontFamily: "DejaVu Sans", FontSize: 40}
	assert.Contains(t, params.filterGraph(), "font='DejaVu Sans'")
}

func TestReverseArgs(t *testing.T) {
	args := reverseArgs("in.mp4", "out.mp4")
	m := argMap(args)

	assert.Equal(t, "in.mp4", m["-i"])
	assert.Equal(t, "reverse", m["-vf"])
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

// argMap pairs flag arguments with their values for lookup in assertions.
func argMap(args []string) map[string]string {
	m := make(map[string]string)
	for i := 0; i+1 < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			m[args[i]] = args[i+1]
		}
	}
	return m
}

func TestWriteCommandScript(t *testing.T) {
	var b strings.Builder
	offsets := []int64{0, 40, 1960}
	labels := []string{"00:00.00", "00:00.04", "00:01.96"}

	require.NoError(t, WriteCommandScript(&b, offsets, labels))

	want := "0.000 drawtext reinit text=00\\:00.00;\n" +
		"0.040 drawtext reinit text=00\\:00.04;\n" +
		"1.960 drawtext reinit text=00\\:01.96;\n"
	assert.Equal(t, want, b.String())
}

func TestWriteCommandScriptLengthMismatch(t *testing.T) {
	var b strings.Builder
	err := WriteCommandScript(&b, []int64{0}, nil)
	assert.ErrorIs(t, err, ErrScheduleMismatch)
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01:09.42", `01\:09.42`},
		{"100%", `100\%`},
		{"a b", `a\ b`},
		{`back\slash`, `back\\slash`},
		{"t=1;2,3", `t\=1\;2\,3`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeText(tt.in))
	}
}

func TestParseProgress(t *testing.T) {
	stream := strings.Join([]string{
		"frame=10",
		"fps=250.0",
		"out_time_us=400000",
		"speed=9.97x",
		"progress=continue",
		"frame=25",
		"out_time_us=1000000",
		"speed=10.1x",
		"progress=end",
	}, "\n")

	var got []Progress
	err := ParseProgress(strings.NewReader(stream), func(p Progress) {
		got = append(got, p)
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].Frame)
	assert.Equal(t, 400*time.Millisecond, got[0].OutTime)
	assert.InDelta(t, 9.97, got[0].Speed, 1e-9)
	assert.False(t, got[0].Done)

	assert.Equal(t, int64(25), got[1].Frame)
	assert.True(t, got[1].Done)
}

func TestParseProgressIgnoresUnknownAndMalformed(t *testing.T) {
	stream := "banana\nframe=abc\nspeed=N/A\nframe=3\nprogress=end\n"

	var got []Progress
	err := ParseProgress(strings.NewReader(stream), func(p Progress) {
		got = append(got, p)
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Frame)
	assert.Zero(t, got[0].Speed)
	assert.True(t, got[0].Done)
}
