package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/httpx"
	"github.com/effective-security/agentools/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, httpx.DefaultUserAgent, r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("hello"))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not here"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := httpx.New()

	resp, err := client.Fetch(ctx, server.URL+"/ok")
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(resp.Body))

	// non-2xx statuses are returned, not converted to errors
	resp, err = client.Fetch(ctx, server.URL+"/missing")
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not here", string(resp.Body))
}

func Test_FetchInvalidURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := httpx.New()
	for _, rawURL := range []string{"", "not a url", "/relative/path", "ftp://example.com/file"} {
		_, err := client.Fetch(ctx, rawURL)
		require.Error(t, err, "url: %q", rawURL)

		var terr *tools.Error
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, tools.KindInvalidInput, terr.Kind)
	}
}

func Test_FetchTimeout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := httpx.New().WithTimeout(20 * time.Millisecond)
	_, err := client.Fetch(ctx, server.URL)
	require.Error(t, err)

	var terr *tools.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, tools.KindNetworkError, terr.Kind)
	assert.Contains(t, terr.Message, "timeout")
}

func Test_FetchConnectionFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// a closed server refuses connections
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := httpx.New()
	_, err := client.Fetch(ctx, url)
	require.Error(t, err)

	var terr *tools.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, tools.KindNetworkError, terr.Kind)
	assert.Contains(t, terr.Message, "connection")
}

func Test_WithHeader(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
	}))
	defer server.Close()

	client := httpx.New().
		WithHeader("User-Agent", "custom-agent").
		WithHeader("Accept", "application/json")
	_, err := client.Fetch(ctx, server.URL)
	require.NoError(t, err)
}
