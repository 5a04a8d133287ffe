package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiError "github.com/jfrkit/heapchart/api/error"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "heap-export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sawtoothCSV = "13:54:41.193,100.0MB\n" +
	"13:54:42.193,95.0MB\n" +
	"13:54:43.193,60.0MB\n" +
	"13:54:44.193,65.0MB\n" +
	"13:54:45.193,70.0MB\n"

func TestRunChartMissingArgument(t *testing.T) {
	var out bytes.Buffer

	err := runChart(context.Background(), &out, "", nil)
	assert.ErrorIs(t, err, apiError.ErrMissingArgument)
	assert.Contains(t, out.String(), "Usage: heapchart <heap-export.csv>")
	assert.Contains(t, out.String(), "./jfr-commands.sh export-heap recording.jfr")
}

func TestRunChartFileNotFound(t *testing.T) {
	var out bytes.Buffer

	missing := filepath.Join(t.TempDir(), "absent.csv")
	err := runChart(context.Background(), &out, "", []string{missing})
	assert.ErrorIs(t, err, apiError.ErrFileNotFound)
	assert.Contains(t, out.String(), "File not found: "+missing)
	assert.Contains(t, out.String(), "./jfr-commands.sh export-heap recording.jfr")
}

func TestRunChartEmptyDataset(t *testing.T) {
	var out bytes.Buffer

	path := writeCSV(t, "just a header line without separator\n\n")
	err := runChart(context.Background(), &out, "", []string{path})
	assert.ErrorIs(t, err, apiError.ErrEmptyDataset)
	assert.Contains(t, out.String(), "No valid data found in "+path)
	assert.NotContains(t, out.String(), "Heap Statistics:")
}

func TestRunChartBadHeapValueIsFatal(t *testing.T) {
	var out bytes.Buffer

	path := writeCSV(t, "13:00:00.000,100.0\n13:00:01.000,abc\n")
	err := runChart(context.Background(), &out, "", []string{path})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse heap value")
	assert.Contains(t, out.String(), "Error:")
	assert.NotContains(t, out.String(), "Heap Statistics:")
}

func TestRunChartSuccess(t *testing.T) {
	var out bytes.Buffer

	path := writeCSV(t, sawtoothCSV)
	require.NoError(t, runChart(context.Background(), &out, "", []string{path}))

	report := out.String()
	assert.Contains(t, report, "HEAP USAGE OVER TIME")
	// Times are shifted to start at zero whatever the clock values were
	assert.Contains(t, report, "       0.0s       100.0 MB")
	assert.Contains(t, report, "       4.0s        70.0 MB")
	assert.Contains(t, report, "Min:       60.0 MB")
	assert.Contains(t, report, "Max:      100.0 MB")
	assert.Contains(t, report, "Collections: 1")
	assert.Contains(t, report, "Average heap reclaimed per GC: 40.0 MB")
}

func TestRunChartWithOptionsFile(t *testing.T) {
	var out bytes.Buffer

	cfgPath := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("marker: \"*\"\nbar_width: 10\n"), 0o644))

	path := writeCSV(t, sawtoothCSV)
	require.NoError(t, runChart(context.Background(), &out, cfgPath, []string{path}))
	assert.Contains(t, out.String(), "**********")
	assert.NotContains(t, out.String(), "#")
}

func TestRunChartBadOptionsFile(t *testing.T) {
	var out bytes.Buffer

	path := writeCSV(t, sawtoothCSV)
	err := runChart(context.Background(), &out, filepath.Join(t.TempDir(), "absent.yaml"), []string{path})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Error:")
}

func TestRunChartFromURL(t *testing.T) {
	var out bytes.Buffer

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sawtoothCSV))
	}))
	t.Cleanup(srv.Close)

	require.NoError(t, runChart(context.Background(), &out, "", []string{srv.URL}))
	assert.Contains(t, out.String(), "Collections: 1")
}
