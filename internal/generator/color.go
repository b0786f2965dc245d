package generator

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor rewrites hex colors into the 0xRRGGBB form ffmpeg expects.
// Anything that does not parse as hex is passed through unchanged: ffmpeg
// has its own color-name table and validating against it is its job.
func NormalizeColor(s string) string {
	candidate := s
	if !strings.HasPrefix(candidate, "#") {
		candidate = "#" + candidate
	}

	c, err := colorful.Hex(candidate)
	if err != nil {
		return s
	}

	r, g, b := c.RGB255()
	return fmt.Sprintf("0x%02X%02X%02X", r, g, b)
}
