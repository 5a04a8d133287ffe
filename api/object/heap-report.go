package object

type (
	// Sample is one heap measurement taken from a JFR CSV export or from a
	// live pprof heap endpoint. Samples keep their source order; times are
	// not required to be unique or monotonic.
	Sample struct {
		Time float64 `json:"time"` // Seconds; zero-based once normalized
		Heap float64 `json:"heap"` // Megabytes
	}

	// Report is the aggregate computed over a loaded sample sequence
	Report struct {
		MinHeap   float64 `json:"min_heap"`
		MaxHeap   float64 `json:"max_heap"`
		HeapRange float64 `json:"heap_range"` // Never zero, see service.AnalyzeHeapSeries
		Duration  float64 `json:"duration"`   // Last sample's normalized time, in sequence order
		// GCEvents counts consecutive-pair heap drops exceeding the drop
		// ratio. It is a heuristic proxy, not read from collector logs
		GCEvents        int     `json:"gc_events"`
		AvgReclaimPerGC float64 `json:"avg_reclaim_per_gc"` // Megabytes; zero when GCEvents is zero
	}
)
