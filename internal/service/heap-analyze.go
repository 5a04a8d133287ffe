package service

import (
	apiError "github.com/jfrkit/heapchart/api/error"
	"github.com/jfrkit/heapchart/api/object"
)

const (
	// minHeapRange is the minimum normalization denominator. A perfectly flat
	// series would otherwise divide by zero when bars are scaled; the
	// reported Range inherits this substitution, so a flat series shows
	// Range 1.0 with all bars at zero length
	minHeapRange = 1.0

	// defaultGCDropRatio marks a collection whenever a sample falls below
	// the previous sample multiplied by the ratio, i.e. a drop of more than
	// 20% against the immediate predecessor, not against a rolling peak
	defaultGCDropRatio = 0.8
)

type (
	analyzeConfig struct {
		gcDropRatio float64
	}

	AnalyzeOption func(cfg *analyzeConfig)
)

func WithGCDropRatio(ratio float64) AnalyzeOption {
	return func(cfg *analyzeConfig) {
		if ratio > 0 && ratio < 1 {
			cfg.gcDropRatio = ratio
		}
	}
}

// AnalyzeHeapSeries computes the aggregate report over an already normalized
// series. All values are pure functions of the input slice; the slice is not
// modified. Duration is the last sample's time in sequence order, which may
// differ from the maximum when input times are non-monotonic.
func AnalyzeHeapSeries(samples []object.Sample, opts ...AnalyzeOption) (object.Report, error) {
	if len(samples) == 0 {
		return object.Report{}, apiError.ErrEmptyDataset
	}

	cfg := analyzeConfig{gcDropRatio: defaultGCDropRatio}
	for _, opt := range opts {
		opt(&cfg)
	}

	minHeap, maxHeap := samples[0].Heap, samples[0].Heap
	for _, s := range samples[1:] {
		if s.Heap < minHeap {
			minHeap = s.Heap
		}
		if s.Heap > maxHeap {
			maxHeap = s.Heap
		}
	}

	heapRange := minHeapRange
	if maxHeap > minHeap {
		heapRange = maxHeap - minHeap
	}

	gcEvents := 0
	for i := 1; i < len(samples); i++ {
		if samples[i].Heap < samples[i-1].Heap*cfg.gcDropRatio {
			gcEvents++
		}
	}

	ret := object.Report{
		MinHeap:   minHeap,
		MaxHeap:   maxHeap,
		HeapRange: heapRange,
		Duration:  samples[len(samples)-1].Time,
		GCEvents:  gcEvents,
	}
	if gcEvents > 0 {
		ret.AvgReclaimPerGC = heapRange / float64(gcEvents)
	}

	return ret, nil
}
