// Package config loads the optional YAML chart options file. Absent or zero
// fields fall back to defaults that reproduce the standard chart layout.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultBarWidth            = 40
	defaultMarker              = "#"
	defaultGCDropRatio         = 0.8
	defaultEfficientRangeRatio = 0.3
)

type Options struct {
	// BarWidth is the maximum bar length in marker characters
	BarWidth int `yaml:"bar_width"`
	// Marker is the character repeated to draw a bar
	Marker string `yaml:"marker"`
	// GCDropRatio marks a GC event when heap[i] < heap[i-1]*ratio
	GCDropRatio float64 `yaml:"gc_drop_ratio"`
	// EfficientRangeRatio selects the "efficient GC" commentary when
	// heap_range/max_heap stays below it
	EfficientRangeRatio float64 `yaml:"efficient_range_ratio"`
}

func Default() Options {
	return Options{
		BarWidth:            defaultBarWidth,
		Marker:              defaultMarker,
		GCDropRatio:         defaultGCDropRatio,
		EfficientRangeRatio: defaultEfficientRangeRatio,
	}
}

func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file; %w", err)
	}

	opts := Options{}
	if err = yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options file; %w", err)
	}

	def := Default()
	if opts.BarWidth <= 0 {
		opts.BarWidth = def.BarWidth
	}
	if opts.Marker == "" {
		opts.Marker = def.Marker
	}
	if opts.GCDropRatio <= 0 || opts.GCDropRatio >= 1 {
		opts.GCDropRatio = def.GCDropRatio
	}
	if opts.EfficientRangeRatio <= 0 {
		opts.EfficientRangeRatio = def.EfficientRangeRatio
	}

	return opts, nil
}
