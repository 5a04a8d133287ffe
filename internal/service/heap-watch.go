package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/pprof/profile"

	apiError "github.com/jfrkit/heapchart/api/error"
	"github.com/jfrkit/heapchart/api/object"
)

const bytesPerMB = 1 << 20

type HeapWatch struct {
	cfg     dataSourceConfig
	mx      sync.RWMutex
	err     error
	started time.Time
	samples []object.Sample
}

// NewHeapWatcher creates a watcher that samples a /debug/pprof/heap endpoint
// on an interval and accumulates (seconds-since-start, inuse MB) samples
func NewHeapWatcher(sourcePath string, opts ...ConfigOption) (*HeapWatch, error) {
	if sourcePath == "" {
		return nil, apiError.ErrEmptySourcePath
	}

	ret := HeapWatch{
		cfg: dataSourceConfig{
			sourcePath: sourcePath,
			interval:   defaultHeapSampleInterval,
		},
	}
	for _, opt := range opts {
		opt(&ret.cfg)
	}

	return &ret, nil
}

// Run starts the sampling loop. The loop stops when ctx is cancelled or on
// the first fetch/parse failure, whichever comes first; the failure is kept
// and exposed via Err
func (hw *HeapWatch) Run(ctx context.Context) error {
	if ctx == nil {
		return apiError.ErrNilContext
	}

	hw.mx.Lock()
	hw.started = time.Now()
	hw.mx.Unlock()

	go func() {
		tmr := time.NewTimer(0)
		defer tmr.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-tmr.C:
				tmr.Reset(hw.cfg.interval)

				if err := hw.sampleOnce(ctx); err != nil {
					hw.mx.Lock()
					hw.err = err
					hw.mx.Unlock()
					return
				}
			}
		}
	}()

	return nil
}

// Samples returns a copy of the collected series in collection order
func (hw *HeapWatch) Samples() []object.Sample {
	hw.mx.RLock()
	defer hw.mx.RUnlock()

	ret := make([]object.Sample, len(hw.samples))
	copy(ret, hw.samples)

	return ret
}

// Err returns the failure that stopped the sampling loop, if any
func (hw *HeapWatch) Err() error {
	hw.mx.RLock()
	defer hw.mx.RUnlock()

	return hw.err
}

// Interval returns the configured sampling interval
func (hw *HeapWatch) Interval() time.Duration {
	return hw.cfg.interval
}

func (hw *HeapWatch) sampleOnce(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hw.cfg.sourcePath, nil)
	if err != nil {
		return fmt.Errorf("failed to create heap profile request; %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to get heap profile; %w", err)
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read heap profile response body; %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("heap profile response statusCode=%d; status=%s", resp.StatusCode, resp.Status)
	}

	mb, err := InuseSpaceMB(data)
	if err != nil {
		return err
	}

	hw.mx.Lock()
	hw.samples = append(hw.samples, object.Sample{Time: time.Since(hw.started).Seconds(), Heap: mb})
	hw.mx.Unlock()

	return nil
}

// InuseSpaceMB parses a pprof heap profile and returns the total inuse_space
// in megabytes, falling back to alloc_space when the profile carries no
// inuse_space sample type
func InuseSpaceMB(data []byte) (float64, error) {
	pf, err := profile.ParseData(data)
	if err != nil {
		return 0, fmt.Errorf("failed to parse profile; %w", err)
	}

	idx := sampleTypeIndex(pf, "inuse_space")
	if idx == -1 {
		idx = sampleTypeIndex(pf, "alloc_space")
	}
	if idx == -1 {
		return 0, errors.New("profile has neither inuse_space nor alloc_space sample type")
	}

	var total int64
	for _, sample := range pf.Sample {
		if idx < len(sample.Value) {
			total += sample.Value[idx]
		}
	}

	return float64(total) / bytesPerMB, nil
}

func sampleTypeIndex(pf *profile.Profile, sampleType string) int {
	for i, st := range pf.SampleType {
		if st.Type == sampleType {
			return i
		}
	}

	return -1
}
