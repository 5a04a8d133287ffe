package extapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"time"
)

const (
	chunkSize  = 1 << 20 // 1 MB
	peakChunks = 64
)

// RunTestApp runs a test application on addr: it exposes the standard pprof
// endpoints and keeps allocating and releasing memory so the heap traces a
// sawtooth a watcher can pick up
func RunTestApp(ctx context.Context, addr string) error {
	if ctx == nil {
		return errors.New("ctx must be not nil")
	}
	if addr == "" {
		return errors.New("addr must be not empty")
	}

	srv := startServerWithPprof(addr)
	cancelAllocFn := startSawtoothAllocator(ctx)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			panic(fmt.Sprintf("failed to shutdown http server; %v", err))
		}
		cancelAllocFn()
	}()

	return nil
}

func startServerWithPprof(addr string) *http.Server {
	server := &http.Server{
		Addr:    addr,
		Handler: http.DefaultServeMux, // handles pprof as well
	}

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			panic(fmt.Sprintf("failed to listen and serve, addr=%s; %v", addr, err))
		}
	}()

	return server
}

func startSawtoothAllocator(ctx context.Context) context.CancelFunc {
	newCtx, cancel := context.WithCancel(ctx)

	go func(c context.Context) {
		chunks := make([][]byte, 0, peakChunks)
		for {
			if c.Err() != nil {
				return
			}

			chunk := make([]byte, chunkSize)
			// Touch the chunk so it counts as live memory
			for i := 0; i < len(chunk); i += 4096 {
				chunk[i] = 1
			}
			chunks = append(chunks, chunk)
			time.Sleep(100 * time.Millisecond)

			if len(chunks) == cap(chunks) {
				chunks = make([][]byte, 0, peakChunks)
				runtime.GC()
				time.Sleep(1 * time.Second)
			}
		}
	}(newCtx)

	return cancel
}
