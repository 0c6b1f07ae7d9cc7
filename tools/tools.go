package tools

import (
	"github.com/effective-security/agentools/pkg/toolutils"
)

type toolDescription struct {
	Name        string `json:"Name" yaml:"Name"`
	Description string `json:"Description" yaml:"Description"`
}

type toolsDescription struct {
	Tools []toolDescription `json:"Tools" yaml:"Tools"`
}

// GetDescriptions returns the tool names and descriptions as a JSON block,
// to be included in the orchestrator prompt.
func GetDescriptions(list ...ITool) string {
	var d toolsDescription
	for _, tool := range list {
		d.Tools = append(d.Tools, toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
		})
	}
	return toolutils.BackticksJSON(toolutils.ToJSONIndent(d))
}
