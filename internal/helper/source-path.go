package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// OpenSeriesSource opens sourcePath as a heap series source and returns a
// reader over its content. A sourcePath with a host part is fetched over
// HTTP(S), anything else is opened as a local file. The caller owns closing
// the returned reader.
func OpenSeriesSource(ctx context.Context, sourcePath string) (io.ReadCloser, error) {
	if ctx == nil {
		return nil, errors.New("ctx must not be nil")
	}
	if sourcePath == "" {
		return nil, errors.New("sourcePath must not be empty")
	}

	// Check if sourcePath is a url
	u, err := url.Parse(sourcePath)
	if err == nil && u.Host != "" {
		r, err := openHTTPSource(ctx, sourcePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create an http reader; %w", err)
		}
		return r, nil
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sourcePath as a file; %w", err)
	}

	return f, nil
}

func openHTTPSource(ctx context.Context, sourcePath string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourcePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for the given url; %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get response from the given url; %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("series endpoint statusCode=%d; status=%s", resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}
