package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		next       http.HandlerFunc
		wantStatus float64
		wantSize   float64
		wantLevel  string
	}{
		{
			name: "explicit status",
			next: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
				_, _ = w.Write([]byte("tea"))
			},
			wantStatus: http.StatusTeapot,
			wantSize:   3,
			wantLevel:  "info",
		},
		{
			name: "implicit 200",
			next: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantSize:   2,
			wantLevel:  "info",
		},
		{
			name:       "nothing written",
			next:       func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name: "server error",
			next: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
			wantStatus: http.StatusBadGateway,
			wantSize:   5,
			wantLevel:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}, metrics: metrics.New()}

			req := httptest.NewRequest(http.MethodGet, "/admin/clients?q=anna", nil)
			req.Header.Set(traceIDHeader, "trace-1")
			rr := httptest.NewRecorder()

			h.withTraceID(h.withLogging(tt.next)).ServeHTTP(rr, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/admin/clients?q=anna", entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, "trace-1", entry["trace_id"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.NotContains(t, entry, "route")
		})
	}
}

func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Get("/admin/clients/{id}", func(w http.ResponseWriter, r *http.Request) {})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/clients/42", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/admin/clients/{id}", entry["route"])
}

func TestWithLogging_WithoutMetrics(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	rr := httptest.NewRecorder()

	h.withTraceID(h.withLogging(http.NotFoundHandler())).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
