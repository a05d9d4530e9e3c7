package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/rangemerge/internal/logger"
	"github.com/huangsam/rangemerge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncWriter guards a buffer written from the server goroutines.
type syncWriter struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func newTestServer(buf *bytes.Buffer) *Server {
	log := logger.New(logger.Options{Level: "debug", Format: "json", Writer: buf})
	return NewServer(":0", &log)
}

func TestHealthEndpoint(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(&logs)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, logs.String(), `"path":"/health"`)
}

func TestMergeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []schema.Interval
		dropped  int
	}{
		{"array ranges", `{"ranges":[[1,3],[2,4],[5,6]],"threshold":0}`, []schema.Interval{{1, 4}, {5, 6}}, 0},
		{"threshold bridges gap", `{"ranges":[[1,3],[4,6]],"threshold":1}`, []schema.Interval{{1, 6}}, 0},
		{"string ranges", `{"ranges":"[[1,2],[2,5]]","threshold":0}`, []schema.Interval{{1, 5}}, 0},
		{"malformed entry", `{"ranges":[[1,2],["a",3]]}`, []schema.Interval{{1, 2}}, 1},
		{"negative threshold", `{"ranges":[[1,2]],"threshold":-5}`, []schema.Interval{{1, 2}}, 0},
		{"string threshold", `{"ranges":[[1,2],[3,4]],"threshold":"9"}`, []schema.Interval{{1, 2}, {3, 4}}, 0},
		{"ranges missing", `{}`, []schema.Interval{}, 0},
		{"ranges not a sequence", `{"ranges":{"a":1}}`, []schema.Interval{}, 0},
		{"unparseable ranges string", `{"ranges":"[[1,"}`, []schema.Interval{}, 0},
		{"out of range literal", `{"ranges":[[1,2],[1e400,3]]}`, []schema.Interval{{1, 2}}, 1},
		{"out of range literal in string", `{"ranges":"[[1,2],[1e400,3]]"}`, []schema.Interval{{1, 2}}, 1},
		{"out of range threshold", `{"ranges":[[1,2],[3,4]],"threshold":1e400}`, []schema.Interval{{1, 2}, {3, 4}}, 0},
		{"widest finite interval", `{"ranges":[[-1e308,1e308]]}`, []schema.Interval{{-1e308, 1e308}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			srv := newTestServer(&logs)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/merge", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var result schema.MergeResult
			require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
			assert.Equal(t, tt.expected, result.Ranges)
			assert.Equal(t, tt.dropped, result.Dropped)
		})
	}
}

func TestMergeEndpointBadBody(t *testing.T) {
	bodies := []string{"", "null", "[[1,2]]", `"[[1,2]]"`, "{not json"}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			var logs bytes.Buffer
			srv := newTestServer(&logs)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/merge", strings.NewReader(body))
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "JSON object")
		})
	}
}

func TestMergeEndpointOverflowingSpan(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(&logs)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/merge", strings.NewReader(`{"ranges":[[-1e308,1e308]]}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Body.String())

	var result schema.MergeResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, math.MaxFloat64, result.TotalSpan)
}

func TestMergeEndpointBodyTooLarge(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(&logs)

	body := `{"ranges":"` + strings.Repeat("1", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/merge", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds")
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to encode response")
}

func TestMergeEndpointWrongMethod(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(&logs)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/merge", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNotFoundEndpoint(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestServer(&logs)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	var logs bytes.Buffer
	log := logger.New(logger.Options{Level: "info", Format: "json", Writer: &syncWriter{buf: &logs}})
	srv := NewServer(addr, &log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
