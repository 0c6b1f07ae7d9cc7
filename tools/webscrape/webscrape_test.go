package webscrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/httpx"
	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/effective-security/agentools/tools"
	"github.com/effective-security/agentools/tools/webscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html>
<head><title>Docs</title><style>p { margin: 0; }</style></head>
<body>
<script>window.track();</script>
<h1>Getting Started</h1>
<p>Install the <b>package</b> first.</p>
</body>
</html>`

func Test_Tool(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/docs":
			_, _ = w.Write([]byte(page))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<html><body>Page not found</body></html>`))
		}
	}))
	defer server.Close()

	ctx := context.Background()

	tool, err := webscrape.New()
	require.NoError(t, err)
	assert.Equal(t, webscrape.ToolName, tool.Name())
	assert.Contains(t, tool.Description(), "web page")

	params := toolutils.ToJSONIndent(tool.Parameters())
	expParams := `{
	"properties": {
		"weburl": {
			"type": "string",
			"title": "WebURL",
			"description": "The absolute http(s) URL of the page to fetch."
		}
	},
	"type": "object",
	"required": [
		"weburl"
	]
}`
	assert.Equal(t, expParams, params)

	out, err := tool.Call(ctx, `{"weburl": "`+server.URL+`/docs"}`)
	require.NoError(t, err)
	assert.Equal(t, "Getting Started Install the package first.", out)
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, "track")
}

func Test_ToolErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<html><body>Page not found</body></html>`))
	}))
	defer server.Close()

	ctx := context.Background()

	tool, err := webscrape.New()
	require.NoError(t, err)
	tool.WithHTTPClient(httpx.New())

	// error pages are reported, not returned as content
	_, err = tool.Run(ctx, &webscrape.ScrapeRequest{URL: server.URL})
	require.Error(t, err)
	var terr *tools.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, tools.KindUpstreamError, terr.Kind)
	assert.Equal(t, "page returned status code: 404", terr.Message)

	_, err = tool.Run(ctx, &webscrape.ScrapeRequest{})
	require.Error(t, err)
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, tools.KindInvalidInput, terr.Kind)

	_, err = tool.Call(ctx, `not json at all`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tools.ErrFailedUnmarshalInput))
}
