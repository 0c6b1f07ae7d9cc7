package tools

import (
	"encoding/json"

	"github.com/tidwall/sjson"
)

// Request is a single tool invocation from the orchestrator.
// It is created per call and discarded after the result is returned.
type Request struct {
	Tool       string            `json:"tool" yaml:"tool"`
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Input renders the named parameters as the JSON object passed to ITool.Call.
func (r *Request) Input() string {
	if len(r.Parameters) == 0 {
		return "{}"
	}
	js, _ := json.Marshal(r.Parameters)
	return string(js)
}

// Result is the envelope every dispatch returns:
// either a success payload or a classified error, never a raw fault.
type Result struct {
	// ID is the correlation ID assigned to the invocation.
	ID   string `json:"id" yaml:"id"`
	Tool string `json:"tool" yaml:"tool"`
	// Output is the success payload, plain text or JSON depending on the tool.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  *Error `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r *Result) IsOK() bool {
	return r.Error == nil
}

// Content always yields a parseable payload for the orchestrator.
// Failures are rendered as a JSON object with an "error" field.
func (r *Result) Content() string {
	if r.Error == nil {
		return r.Output
	}
	js, _ := sjson.Set(`{}`, "error", r.Error.Message)
	js, _ = sjson.Set(js, "kind", string(r.Error.Kind))
	return js
}
