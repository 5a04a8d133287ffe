// Package tui hosts the bubbletea model behind "heapchart watch": it
// re-reads the watcher's samples on every tick and renders the rolling chart.
package tui

import (
	"time"

	"github.com/jfrkit/heapchart/internal/render"
	"github.com/jfrkit/heapchart/internal/service"
)

type Model struct {
	watch       *service.HeapWatch
	opts        render.Options
	analyzeOpts []service.AnalyzeOption
	// maxRows limits how many chart rows the table shows; older samples
	// scroll off while the statistics stay computed over the full series
	maxRows int
	height  int
}

func New(watch *service.HeapWatch, opts render.Options, analyzeOpts ...service.AnalyzeOption) Model {
	return Model{watch: watch, opts: opts, analyzeOpts: analyzeOpts}
}

type tickMsg time.Time
