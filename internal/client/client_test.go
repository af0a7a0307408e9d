package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSendsBrowserHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla", "Should present a browser-like user agent")
		assert.NotEmpty(t, r.Header.Get("Accept-Language"))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := New(time.Second)
	body, err := c.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(time.Second)
	_, err := c.Get(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr), "Non-2xx should return a typed status error")
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Equal(t, server.URL, statusErr.URL)
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"name": "Yankees", "score": 5}`))
	}))
	defer server.Close()

	var payload struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}
	c := New(time.Second)
	require.NoError(t, c.GetJSON(context.Background(), server.URL, &payload))
	assert.Equal(t, "Yankees", payload.Name)
	assert.Equal(t, 5, payload.Score)
}

func TestGetJSONDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	var payload map[string]any
	c := New(time.Second)
	err := c.GetJSON(context.Background(), server.URL, &payload)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr), "Unparseable body should return a typed decode error")
}

func TestGetHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><table id="sched_all"><tr><td>row</td></tr></table></body></html>`))
	}))
	defer server.Close()

	c := New(time.Second)
	doc, err := c.GetHTML(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("table#sched_all").Length(), "Parsed document should be queryable")
}

func TestGetContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	c := New(time.Second)
	_, err := c.Get(ctx, server.URL)
	assert.Error(t, err, "Expired context should abort the request")
}

func TestNewDefaultsTimeout(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout, "Non-positive timeout should fall back to the default")
}
