package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"agenda-bff/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server, retries int) IClient {
	return NewClient(ClientConfig{
		BaseURL:   srv.URL + "/",
		Timeout:   time.Second,
		Retries:   retries,
		RetryWait: time.Millisecond,
	})
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cadastros/", r.URL.Path)
		assert.Equal(t, "6", r.URL.Query().Get("limit"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx := log.WithRequestID(context.Background(), "req-1")
	body, err := newTestClient(srv, 0).Get(ctx, "/api/cadastros/", url.Values{"limit": {"6"}})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
}

func TestPostSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	body, err := newTestClient(srv, 0).Post(context.Background(), "/api/cadastros/", map[string]string{"nome": "Ana"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(body))
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		validation bool
		notFound   bool
		server     bool
	}{
		{name: "detail string", status: 500, body: `{"detail":"db down"}`, wantDetail: "db down", server: true},
		{name: "message fallback", status: 500, body: `{"message":"oops"}`, wantDetail: "oops", server: true},
		{name: "detail wins over message", status: 400, body: `{"detail":"a","message":"b"}`, wantDetail: "a"},
		{name: "validation list", status: 422, body: `{"detail":[{"msg":"field required"},{"msg":"bad email"}]}`, wantDetail: "field required; bad email", validation: true},
		{name: "not found", status: 404, body: `{"detail":"Not Found"}`, wantDetail: "Not Found", notFound: true},
		{name: "html body", status: 502, body: `<html>bad gateway</html>`, wantDetail: "", server: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv, 0).Get(context.Background(), "/x", nil)
			reqErr, ok := AsRequestError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantDetail, reqErr.Detail)
			assert.Equal(t, tt.validation, reqErr.IsValidation())
			assert.Equal(t, tt.notFound, reqErr.IsNotFound())
			assert.Equal(t, tt.server, reqErr.IsServer())
			assert.False(t, reqErr.IsTransport())
			if tt.wantDetail == "" {
				assert.Equal(t, http.StatusText(tt.status), reqErr.Message())
			}
		})
	}
}

func TestRetriesServerErrorsOnGet(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 2).Get(context.Background(), "/x", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNoRetryOnClientErrorOrPost(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv, 3)
	_, err := c.Get(context.Background(), "/x", nil)
	require.Error(t, err)
	_, err = c.Post(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv, 1).Get(context.Background(), "/x", nil)
	reqErr, ok := AsRequestError(err)
	require.True(t, ok)
	assert.True(t, reqErr.IsTransport())
	assert.NotEmpty(t, reqErr.Message())
}

func TestCancelledContextStopsRetrying(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, Retries: 5, RetryWait: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "/x", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
