// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gzipReader, err := gzip.NewReader(r)
	require.NoError(t, err, "failed to create gzip reader")
	defer gzipReader.Close()

	decompressed, err := io.ReadAll(gzipReader)
	require.NoError(t, err, "failed to decompress response")
	return string(decompressed)
}

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write(data)
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())
	return &buf
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name                 string
		acceptEncoding       string
		responseBody         string
		explicitHeader       bool
		checkResponseGzipped bool
	}{
		{
			name:                 "compress response when client accepts gzip",
			acceptEncoding:       "gzip",
			responseBody:         "<html>clients</html>",
			explicitHeader:       true,
			checkResponseGzipped: true,
		},
		{
			name:                 "compress response written without WriteHeader",
			acceptEncoding:       "gzip",
			responseBody:         `{"usd":"100"}`,
			checkResponseGzipped: true,
		},
		{
			name:                 "accept-encoding with several values",
			acceptEncoding:       "deflate, gzip;q=1.0, br",
			responseBody:         strings.Repeat("row ", 1000),
			explicitHeader:       true,
			checkResponseGzipped: true,
		},
		{
			name:           "no compression when client doesn't accept gzip",
			acceptEncoding: "",
			responseBody:   "plain",
			explicitHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.explicitHeader {
					w.WriteHeader(http.StatusOK)
				}
				_, _ = w.Write([]byte(tt.responseBody))
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/clients", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if tt.checkResponseGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.responseBody, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.responseBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_BodilessResponsesStayPlain(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "redirect",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/admin/clients", http.StatusSeeOther)
			},
			status: http.StatusSeeOther,
		},
		{
			name: "no content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			status: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/clients/a1/delete", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			withGZip(tt.handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
		})
	}
}

func TestGZip_KeepsStatusCode(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/clients", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "upstream down", gunzip(t, rr.Body))
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"), "Content-Encoding should be removed")
		_, _ = w.Write(body)
	})

	for i := 0; i < 5; i++ {
		payload := []byte(`{"login":"root","password":"pass` + string(rune('0'+i)) + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", gzipBytes(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(payload), rr.Body.String(), "request %d: wrong body", i)
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Concurrent response"))
	})
	middleware := withGZip(next)

	const numGoroutines = 50
	done := make(chan string, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			gzipReader, err := gzip.NewReader(rr.Body)
			if err != nil {
				done <- ""
				return
			}
			body, _ := io.ReadAll(gzipReader)
			gzipReader.Close()
			done <- string(body)
		}()
	}

	for i := 0; i < numGoroutines; i++ {
		assert.Equal(t, "Concurrent response", <-done)
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closeCalled = true },
	}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled, "OnClose should be called")

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}
