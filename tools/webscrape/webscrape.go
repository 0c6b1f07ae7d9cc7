// Package webscrape provides a tool that fetches a web page and returns
// its visible text.
package webscrape

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/htmlx"
	"github.com/effective-security/agentools/pkg/httpx"
	"github.com/effective-security/agentools/pkg/schema"
	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/effective-security/agentools/tools"
)

const ToolName = "WebScrape"

// ScrapeRequest represents the tool input.
type ScrapeRequest struct {
	URL string `json:"weburl" yaml:"weburl" jsonschema:"title=WebURL,description=The absolute http(s) URL of the page to fetch."`
}

// ScrapeResult holds the extracted page text, with tags and scripts stripped.
type ScrapeResult struct {
	Text string `json:"text" yaml:"text"`
}

// Tool fetches a single page and flattens it to plain text.
type Tool struct {
	name        string
	description string
	funcParams  any

	client *httpx.Client
}

var _ tools.Tool[ScrapeRequest, ScrapeResult] = (*Tool)(nil)

func New() (*Tool, error) {
	sc, err := schema.New(reflect.TypeOf(ScrapeRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &Tool{
		name:        ToolName,
		description: "A tool that fetches a web page and returns its visible text content.",
		funcParams:  sc.Parameters,
		client:      httpx.New(),
	}
	return t, nil
}

func (t *Tool) WithHTTPClient(client *httpx.Client) *Tool {
	t.client = client
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *ScrapeRequest) (*ScrapeResult, error) {
	if req.URL == "" {
		return nil, errors.WithStack(tools.NewError(tools.KindInvalidInput, "invalid request: empty weburl"))
	}

	resp, err := t.client.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	// Error pages are reported, not parsed as content.
	if resp.StatusCode >= 400 {
		return nil, errors.WithStack(tools.NewErrorf(tools.KindUpstreamError,
			"page returned status code: %d", resp.StatusCode))
	}

	text, err := htmlx.Text(string(resp.Body))
	if err != nil {
		return nil, tools.WrapError(tools.KindUnknown, err, "failed to extract page text")
	}
	return &ScrapeResult{Text: text}, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req ScrapeRequest
	if err := json.Unmarshal(toolutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(tools.ErrFailedUnmarshalInput)
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	// The orchestrator contract is a plain text string, no structure.
	return out.Text, nil
}
