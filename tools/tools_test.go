package tools_test

import (
	"testing"

	"github.com/effective-security/agentools/tools"
	"github.com/stretchr/testify/assert"
)

func Test_GetDescriptions(t *testing.T) {
	t.Parallel()

	tool1 := &fakeTool{name: "WebSearch", description: "Searches the web."}
	tool2 := &fakeTool{name: "WebScrape", description: "Fetches a page."}

	exp := "\n```json\n{\n\t\"Tools\": [\n\t\t{\n\t\t\t\"Name\": \"WebSearch\",\n\t\t\t\"Description\": \"Searches the web.\"\n\t\t},\n\t\t{\n\t\t\t\"Name\": \"WebScrape\",\n\t\t\t\"Description\": \"Fetches a page.\"\n\t\t}\n\t]\n}\n```\n"
	assert.Equal(t, exp, tools.GetDescriptions(tool1, tool2))
}
