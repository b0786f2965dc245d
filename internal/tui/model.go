package tui

import (
	"github.com/charmbracelet/bubbles/key"
	bubbleprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the main bubbletea model for the TUI
type Model struct {
	width, height int
	hasData       bool
	quitting      bool

	spinner     spinner.Model
	keys        KeyMap
	statusbar   *Statusbar
	progressBar *ProgressBar
	stageInfo   *StageInfo
}

// NewModel creates a new TUI model
func NewModel() Model {
	keys := DefaultKeyMap()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorGreen)
	return Model{
		spinner:     s,
		keys:        keys,
		statusbar:   NewStatusbar(keys),
		progressBar: NewProgressBar(),
		stageInfo:   NewStageInfo(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spinner.Tick)
}

// Update implements tea.Model
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch t := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = t.Width, t.Height

	case tea.KeyMsg:
		if key.Matches(t, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case SnapshotMsg:
		m.hasData = true
		cmds = append(cmds,
			m.statusbar.Update(t),
			m.progressBar.Update(t),
			m.stageInfo.Update(t),
		)

	case spinner.TickMsg:
		if !m.hasData {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(teaMsg)
			cmds = append(cmds, cmd)
		}

	case TickMsg:
		cmds = append(cmds,
			m.stageInfo.Update(t),
			tickCmd(),
		)

	case bubbleprogress.FrameMsg:
		cmds = append(cmds, m.progressBar.Update(t))

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.hasData {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+"Starting ffmpeg...")
	}

	// Layout:
	// ┌─────────────────────────────┐
	// │         statusbar           │ StatusbarH
	// ┝━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┥ ProgressH (statusbar border)
	// │         stageInfo           │ content-driven
	// └─────────────────────────────┘

	panelHFrame := panelPaddingStyle.GetHorizontalFrameSize()
	contentWidth := m.width - panelHFrame

	m.statusbar.SetWidth(contentWidth)
	m.progressBar.SetWidth(contentWidth)

	statusRow := rowPaddingStyle.Render(m.statusbar.View())
	progressRow := rowPaddingStyle.Render(m.progressBar.View())
	infoRow := panelPaddingStyle.Width(m.width).Render(m.stageInfo.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		statusRow,
		progressRow,
		infoRow,
	)
}
