// Package websearch provides a tool that scrapes a search engine's HTML
// results page and returns up to three organic results.
package websearch

import (
	"context"
	"encoding/json"
	"net/url"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/httpx"
	"github.com/effective-security/agentools/pkg/schema"
	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/effective-security/agentools/tools"
	"github.com/tidwall/sjson"
)

const ToolName = "WebSearch"

const defaultBaseURL = "https://html.duckduckgo.com/html/"

// MaxResults caps the entries returned per search, regardless of how many
// the results page contains.
const MaxResults = 3

// StatusNoResults distinguishes "no results" from "fetch failed".
const StatusNoResults = "No search results found."

// SearchRequest represents the tool input.
type SearchRequest struct {
	Query string `json:"query" yaml:"query" jsonschema:"title=Query,description=The query to search the web for."`
}

// SearchResult is one organic entry from the results page.
type SearchResult struct {
	Title   string `json:"title" yaml:"title"`
	Link    string `json:"link" yaml:"link"`
	Snippet string `json:"snippet" yaml:"snippet"`
}

// SearchResponse carries the qualifying entries in relevance order,
// or the explicit no-results status.
type SearchResponse struct {
	Results []SearchResult `json:"results,omitempty" yaml:"results,omitempty"`
	Status  string         `json:"status,omitempty" yaml:"status,omitempty"`
}

// Tool scrapes the search engine's HTML endpoint.
type Tool struct {
	name        string
	description string
	funcParams  any

	baseURL string
	client  *httpx.Client
}

var _ tools.Tool[SearchRequest, SearchResponse] = (*Tool)(nil)

func New() (*Tool, error) {
	sc, err := schema.New(reflect.TypeOf(SearchRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &Tool{
		name:        ToolName,
		description: "A tool that searches the web and returns the top results with title, link and snippet.",
		funcParams:  sc.Parameters,
		baseURL:     defaultBaseURL,
		client:      httpx.New(),
	}
	return t, nil
}

func (t *Tool) WithBaseURL(baseURL string) *Tool {
	t.baseURL = baseURL
	return t
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

func (t *Tool) Run(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req.Query == "" {
		return nil, errors.WithStack(tools.NewError(tools.KindInvalidInput, "invalid request: empty query"))
	}

	resp, err := t.client.Fetch(ctx, t.baseURL+"?q="+url.QueryEscape(req.Query))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.WithStack(tools.NewErrorf(tools.KindUpstreamError,
			"search returned status code: %d", resp.StatusCode))
	}

	results, err := parseResults(string(resp.Body))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &SearchResponse{Status: StatusNoResults}, nil
	}
	return &SearchResponse{Results: results}, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req SearchRequest
	if err := json.Unmarshal(toolutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(tools.ErrFailedUnmarshalInput)
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	if out.Status != "" {
		js, _ := sjson.Set(`{}`, "status", out.Status)
		return js, nil
	}
	bs, err := json.Marshal(out.Results)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal output")
	}
	return string(bs), nil
}
