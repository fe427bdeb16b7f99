package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"url-checker/internal/config"
	"url-checker/internal/domain"
)

func TestAggregator_SortsByInputOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Collect([]domain.Result{
		{Index: 2, URL: "https://c.test", StatusCode: 200},
		{Index: 0, URL: "https://a.test", StatusCode: 301},
		{Index: 1, URL: "https://b.test", Error: "connection refused"},
	})

	results := agg.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "https://a.test", results[0].URL)
	assert.Equal(t, "https://b.test", results[1].URL)
	assert.Equal(t, "https://c.test", results[2].URL)
}

func TestAggregator_DocumentFieldExclusivity(t *testing.T) {
	now := time.Now()
	agg := NewAggregator()
	agg.Collect([]domain.Result{
		{Index: 0, URL: "https://up.test", StatusCode: 404, Duration: 120 * time.Millisecond, Timestamp: now},
		{Index: 1, URL: "https://down.test", Error: "timeout after 5s", Duration: 5 * time.Second, Timestamp: now},
	})

	doc := agg.Document()
	require.Len(t, doc, 2)

	up := doc[0]
	require.NotNil(t, up.Status, "a reachable URL carries a status, even 4xx")
	assert.Equal(t, 404, *up.Status)
	assert.Empty(t, up.Error)
	assert.Equal(t, int64(120), up.TimeMS)

	down := doc[1]
	assert.Nil(t, down.Status)
	assert.Equal(t, "timeout after 5s", down.Error)
	assert.Equal(t, int64(5000), down.TimeMS)
}

func TestWriter_WritesJSONDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	writer := NewWriter(&config.Config{OutputPath: path}, zap.NewNop())

	now := time.Now()
	agg := NewAggregator()
	agg.Collect([]domain.Result{
		{Index: 1, URL: "https://down.test", Error: "dns lookup failed for down.test: no such host", Duration: 40 * time.Millisecond, Timestamp: now},
		{Index: 0, URL: "https://up.test", StatusCode: 200, Duration: 55 * time.Millisecond, Timestamp: now},
	})

	require.NoError(t, writer.Write(agg.Document()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.Equal(t, "https://up.test", first["url"])
	assert.Equal(t, float64(200), first["status"])
	assert.NotContains(t, first, "error")
	assert.Equal(t, float64(55), first["time_ms"])
	assert.Contains(t, first, "timestamp")

	second := decoded[1]
	assert.Equal(t, "https://down.test", second["url"])
	assert.NotContains(t, second, "status")
	assert.Contains(t, second["error"], "dns lookup failed")
}
