package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAllEmptyList(t *testing.T) {
	d, _ := newTestDownloader(t, t.TempDir())

	_, err := d.DownloadAll(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoPapers)
}

func TestDownloadAllOrdering(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pdf " + r.URL.Path))
	}))
	defer server.Close()

	dir := t.TempDir()
	d, _ := newTestDownloader(t, dir)

	papers := []core.PaperMetadata{
		*makePaper("001", server.URL+"/001"),
		*makePaper("002", server.URL+"/002"),
		*makePaper("003", server.URL+"/003"),
	}

	result, err := d.DownloadAll(context.Background(), papers, nil)
	require.NoError(t, err)
	require.Len(t, result.Paths, 3)
	assert.Empty(t, result.Failures)

	for i, id := range []string{"001", "002", "003"} {
		assert.Equal(t, filepath.Join(dir, id+".pdf"), result.Paths[i])
	}
}

func TestDownloadAllToleratesNetworkFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // every fetch fails with a connection error

	d, _ := newTestDownloader(t, t.TempDir())
	papers := []core.PaperMetadata{
		*makePaper("001", server.URL+"/001"),
		*makePaper("002", server.URL+"/002"),
	}

	result, err := d.DownloadAll(context.Background(), papers, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Paths)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "001", result.Failures[0].ArxivID)
	assert.Equal(t, "002", result.Failures[1].ArxivID)
}

func TestDownloadAllMixedBatch(t *testing.T) {
	// Item A's file already exists on disk; item B's fetch fails with a
	// network error. The batch returns only A's path.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	dir := t.TempDir()
	d, pacer := newTestDownloader(t, dir)

	existing := filepath.Join(dir, "A.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("already here"), 0644))

	papers := []core.PaperMetadata{
		*makePaper("A", dead.URL+"/A"),
		*makePaper("B", dead.URL+"/B"),
	}

	result, err := d.DownloadAll(context.Background(), papers, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{existing}, result.Paths)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "B", result.Failures[0].ArxivID)

	// Only B's fetch consulted the pacer.
	assert.EqualValues(t, 1, pacer.calls.Load())
}

func TestDownloadAllPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad") {
			http.Error(w, "gone", http.StatusGone)
			return
		}
		w.Write([]byte("pdf"))
	}))
	defer server.Close()

	dir := t.TempDir()
	d, _ := newTestDownloader(t, dir)

	papers := []core.PaperMetadata{
		*makePaper("ok1", server.URL+"/ok1"),
		*makePaper("bad", server.URL+"/bad"),
		*makePaper("ok2", server.URL+"/ok2"),
	}

	result, err := d.DownloadAll(context.Background(), papers, nil)
	require.NoError(t, err)

	// Output order is a subsequence of input order.
	assert.Equal(t, []string{
		filepath.Join(dir, "ok1.pdf"),
		filepath.Join(dir, "ok2.pdf"),
	}, result.Paths)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "bad", result.Failures[0].ArxivID)
}

func TestDownloadAllSkipExistingDisabled(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("pdf"))
	}))
	defer server.Close()

	dir := t.TempDir()
	d, _ := newTestDownloader(t, dir)

	papers := []core.PaperMetadata{*makePaper("001", server.URL+"/001")}

	_, err := d.DownloadAll(context.Background(), papers, &BatchOptions{SkipExisting: false})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}
