package tools_test

import (
	"testing"

	"github.com/effective-security/agentools/tools"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func Test_RequestInput(t *testing.T) {
	t.Parallel()

	req := &tools.Request{Tool: "WebSearch"}
	assert.Equal(t, "{}", req.Input())

	req = &tools.Request{
		Tool: "WebSearch",
		Parameters: map[string]string{
			"query": "capital of France",
		},
	}
	assert.Equal(t, `{"query":"capital of France"}`, req.Input())
}

func Test_ResultContent(t *testing.T) {
	t.Parallel()

	res := &tools.Result{
		Tool:   "WebScrape",
		Output: "page text",
	}
	assert.True(t, res.IsOK())
	assert.Equal(t, "page text", res.Content())

	res = &tools.Result{
		Tool:  "GetExchangeRate",
		Error: tools.NewError(tools.KindNotFound, "Currency code 'ZZZ' not supported by the API"),
	}
	assert.False(t, res.IsOK())

	// failures are always parseable JSON with an "error" field
	content := res.Content()
	assert.True(t, gjson.Valid(content))
	assert.Equal(t, "Currency code 'ZZZ' not supported by the API", gjson.Get(content, "error").String())
	assert.Equal(t, "not_found", gjson.Get(content, "kind").String())
}
