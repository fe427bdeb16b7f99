package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"url-checker/internal/common"
	"url-checker/internal/config"
	"url-checker/internal/domain"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []domain.Result
}

func (o *recordingObserver) Completed(r domain.Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, r)
}

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}

func TestApplication_EndToEnd(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okSrv.Close()

	notFoundSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFoundSrv.Close()

	refusedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	refusedURL := refusedSrv.URL
	refusedSrv.Close()

	outputPath := filepath.Join(t.TempDir(), "status.json")
	cfg, err := config.New(config.Options{
		URLs:        []string{okSrv.URL, notFoundSrv.URL, refusedURL},
		WorkerCount: 2,
		Timeout:     time.Second,
		MaxRetries:  1,
		OutputPath:  outputPath,
	})
	require.NoError(t, err)

	observer := &recordingObserver{}
	application := NewApplication(
		common.WithLogger(zap.NewNop()),
		common.WithConfig(cfg),
		common.WithObserver(observer),
	)

	done := application.Done()
	require.NoError(t, application.Start(context.Background()))

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("run did not complete in time")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, application.Stop(stopCtx))

	assert.Equal(t, 3, observer.count(), "one progress event per URL")

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 3)

	// The persisted document follows input order even though completion
	// order depends on latency.
	assert.Equal(t, okSrv.URL, entries[0]["url"])
	assert.Equal(t, notFoundSrv.URL, entries[1]["url"])
	assert.Equal(t, refusedURL, entries[2]["url"])

	assert.Equal(t, float64(200), entries[0]["status"])
	assert.NotContains(t, entries[0], "error")

	assert.Equal(t, float64(404), entries[1]["status"], "4xx is reachable, recorded verbatim")

	assert.NotContains(t, entries[2], "status")
	assert.NotEmpty(t, entries[2]["error"])
}
