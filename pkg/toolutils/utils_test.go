package toolutils_test

import (
	"testing"

	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/stretchr/testify/assert"
)

func Test_CleanJSON(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		name string
		in   string
		exp  string
	}{
		{"plain", `{"query":"go"}`, `{"query":"go"}`},
		{"prefix", `Sure, here you go: {"query":"go"}`, `{"query":"go"}`},
		{"postfix", `{"query":"go"} Let me know!`, `{"query":"go"}`},
		{"fenced", "```json\n{\"query\":\"go\"}\n```", `{"query":"go"}`},
		{"array", `the results: [1,2,3] end`, `[1,2,3]`},
		{"no json", `no braces here`, `no braces here`},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, string(toolutils.CleanJSON([]byte(tc.in))))
		})
	}
}

func Test_ToJSON(t *testing.T) {
	t.Parallel()

	val := map[string]string{"a": "1"}
	assert.Equal(t, `{"a":"1"}`, toolutils.ToJSON(val))
	assert.Equal(t, "{\n\t\"a\": \"1\"\n}", toolutils.ToJSONIndent(val))
	assert.Equal(t, "{\n\t\"a\": \"1\"\n}", toolutils.JSONIndent(`{"a":"1"}`))
	assert.Equal(t, "a: \"1\"\n", toolutils.ToYAML(val))
}

func Test_BackticksJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\n```json\n{}\n```\n", toolutils.BackticksJSON(" {} \n"))
}

type named struct {
	Name string `json:"name"`
}

func (n named) String() string {
	return n.Name
}

func Test_Stringify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", toolutils.Stringify("plain"))
	assert.Equal(t, "bob", toolutils.Stringify(named{Name: "bob"}))
	assert.Equal(t, "\n```json\n{\n\t\"a\": \"1\"\n}\n```\n", toolutils.Stringify(map[string]string{"a": "1"}))
}
