package tui

import (
	"fmt"
	"strings"

	"github.com/jfrkit/heapchart/internal/render"
	"github.com/jfrkit/heapchart/internal/service"
)

func (m Model) View() string {
	var b strings.Builder

	if err := m.watch.Err(); err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", err))
		b.WriteString("\n(q to quit)\n")
		return b.String()
	}

	samples := m.watch.Samples()
	if len(samples) == 0 {
		b.WriteString("Waiting for the first heap sample...\n")
		b.WriteString("\n(q to quit)\n")
		return b.String()
	}

	rep, err := service.AnalyzeHeapSeries(samples, m.analyzeOpts...)
	if err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", err))
		return b.String()
	}

	visible := samples
	if m.maxRows > 0 && len(visible) > m.maxRows {
		visible = visible[len(visible)-m.maxRows:]
	}

	b.WriteString(render.HeapReport(visible, rep, m.opts))
	b.WriteString("\n(q to quit)\n")

	return b.String()
}
