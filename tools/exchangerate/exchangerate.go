// Package exchangerate provides a tool that looks up currency exchange
// rates for a 3-letter base currency code.
package exchangerate

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/httpx"
	"github.com/effective-security/agentools/pkg/schema"
	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/effective-security/agentools/tools"
	"github.com/tidwall/gjson"
)

const ToolName = "GetExchangeRate"

const defaultBaseURL = "https://open.er-api.com/v6/latest"

// RateRequest represents the tool input.
type RateRequest struct {
	BaseCurrency string `json:"base_currency" yaml:"base_currency" jsonschema:"title=BaseCurrency,description=The 3-letter base currency code (e.g. USD)."`
}

// RateResponse carries the upstream JSON verbatim.
// The rate API's schema is not owned by this library, so the payload
// is kept schema-agnostic and inspected on demand.
type RateResponse struct {
	Payload json.RawMessage `json:"payload" yaml:"payload"`
}

// BaseCode returns the base currency code reported by the upstream.
func (r *RateResponse) BaseCode() string {
	return gjson.GetBytes(r.Payload, "base_code").String()
}

// Rate returns the rate for the given currency code, or 0 if absent.
func (r *RateResponse) Rate(code string) float64 {
	return gjson.GetBytes(r.Payload, "rates."+code).Float()
}

func (r *RateResponse) String() string {
	return string(r.Payload)
}

// Tool queries the rate-lookup endpoint for a base currency.
type Tool struct {
	name        string
	description string
	funcParams  any

	baseURL string
	client  *httpx.Client
}

var _ tools.Tool[RateRequest, RateResponse] = (*Tool)(nil)

func New() (*Tool, error) {
	sc, err := schema.New(reflect.TypeOf(RateRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	t := &Tool{
		name:        ToolName,
		description: "A tool that returns the current exchange rates for a 3-letter base currency code.",
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

func (t *Tool) Run(ctx context.Context, req *RateRequest) (*RateResponse, error) {
	code, err := ParseCurrencyCode(req.BaseCurrency)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Fetch(ctx, t.baseURL+"/"+code.String())
	if err != nil {
		var terr *tools.Error
		if errors.As(err, &terr) {
			return nil, err
		}
		return nil, tools.WrapError(tools.KindUnknown, err, "Failed to fetch exchange rates")
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// parsed below
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.WithStack(tools.NewErrorf(tools.KindNotFound,
			"Currency code '%s' not supported by the API", code))
	default:
		return nil, errors.WithStack(tools.NewErrorf(tools.KindUpstreamError,
			"API returned status code: %d", resp.StatusCode))
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, errors.WithStack(tools.NewError(tools.KindUnknown,
			"Failed to fetch exchange rates: invalid JSON in response"))
	}
	return &RateResponse{Payload: json.RawMessage(resp.Body)}, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req RateRequest
	if err := json.Unmarshal(toolutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", errors.WithStack(tools.ErrFailedUnmarshalInput)
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	// Mirror the upstream API's schema on success.
	return out.String(), nil
}
