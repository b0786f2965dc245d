package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivoronin/timergen/internal/types"
)

var (
	stageLabelStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	stageEncodeStyle   = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	stageDoneStyle     = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	stageFailedStyle   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	timerLabelBigStyle = lipgloss.NewStyle().Bold(true)
)

// StageInfo is the pipeline status component.
type StageInfo struct {
	snapshot *types.EncodeSnapshot
	now      time.Time
}

// NewStageInfo creates a new pipeline status component.
func NewStageInfo() *StageInfo { return &StageInfo{now: time.Now()} }

// Update handles messages.
func (m *StageInfo) Update(teaMsg tea.Msg) tea.Cmd {
	switch t := teaMsg.(type) {
	case SnapshotMsg:
		m.snapshot = t.Snapshot
		m.now = t.Snapshot.SnapshotTime
	case TickMsg:
		m.now = time.Time(t)
	}
	return nil
}

// View renders the component.
func (m *StageInfo) View() string {
	if m.snapshot == nil {
		return ""
	}
	s := m.snapshot
	rows := []string{
		stageRow("Stage", renderStage(s)),
		stageRow("Output", s.Outfile),
		stageRow("Frame", renderFrame(s)),
		stageRow("Timer", timerLabelBigStyle.Render(s.Label)),
		stageRow("Elapsed", types.FormatDuration(m.now.Sub(s.StartTime))),
	}
	return strings.Join(rows, "\n")
}

func stageRow(label, value string) string {
	return stageLabelStyle.Render(label) + strings.Repeat(" ", StageLabelColW-len(label)+StageColPadding) + value
}

func renderStage(s *types.EncodeSnapshot) string {
	switch {
	case s.Failed:
		return stageFailedStyle.Render("Failed")
	case s.Stage == types.StageDone:
		return stageDoneStyle.Render("Done")
	case s.Stage == types.StageReverse:
		return stageEncodeStyle.Render("Reversing")
	case s.Stage == types.StageEncode:
		return stageEncodeStyle.Render("Encoding")
	default:
		return stageEncodeStyle.Render("Preparing")
	}
}

func renderFrame(s *types.EncodeSnapshot) string {
	if s.TotalFrames == 0 {
		return "-"
	}
	frame := fmt.Sprintf("%d/%d", s.Frame, s.TotalFrames)
	if s.Speed > 0 {
		frame += fmt.Sprintf(" (%.1fx realtime)", s.Speed)
	}
	return frame
}
