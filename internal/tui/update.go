package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// chartOverhead is the number of non-row lines in the rendered report
// (banners, headers, statistics, commentary)
const chartOverhead = 18

func (m Model) Init() tea.Cmd {
	return tick(m.watch.Interval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.maxRows = msg.Height - chartOverhead
		if m.maxRows < 1 {
			m.maxRows = 1
		}
	case tickMsg:
		if m.watch.Err() != nil {
			return m, tea.Quit
		}
		return m, tick(m.watch.Interval())
	}

	return m, nil
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
