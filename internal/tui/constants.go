// Package tui provides the terminal user interface components.
package tui

import "github.com/charmbracelet/lipgloss"

// Color constants used throughout the TUI.
const (
	ColorGray  = lipgloss.Color("#888888") // muted text, labels, headers
	ColorGreen = lipgloss.Color("#28D223") // done, accents
	ColorBlue  = lipgloss.Color("#0493F8") // encoding
	ColorRed   = lipgloss.Color("#FF4444") // failed
)

// Layout styles.
var (
	// panelPaddingStyle is the standard padding for content panels.
	panelPaddingStyle = lipgloss.NewStyle().PaddingTop(1).PaddingLeft(1).PaddingRight(1)

	// rowPaddingStyle is horizontal padding for single-row components (statusbar, progress).
	rowPaddingStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Layout constants.
const (
	// StatusbarH is the statusbar height.
	StatusbarH = 1
	// ProgressH is the progress bar height.
	ProgressH = 1

	// StageLabelColW is the stage info label column width.
	StageLabelColW = 8
	// StageColPadding is the stage info column padding.
	StageColPadding = 2
)
