package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPromptDescribesMarkerFormat(t *testing.T) {
	assert.Contains(t, SystemPrompt, "# FILE: src/App.js")
	assert.Contains(t, SystemPrompt, "```jsx")
	assert.Contains(t, SystemPrompt, "Tailwind")
}

func TestUserPrompt(t *testing.T) {
	p := UserPrompt("a login page", "https://www.figma.com/file/abc/Login", "Login Flow")
	assert.Contains(t, p, "**Figma URL**: https://www.figma.com/file/abc/Login")
	assert.Contains(t, p, "**Design Name**: Login Flow")
	assert.Contains(t, p, "**Design Description**: a login page")
	assert.Contains(t, p, "Tailwind CSS styling")
}

func TestUserPrompt_OmitsEmptyFields(t *testing.T) {
	p := UserPrompt("a login page", "", "")
	assert.NotContains(t, p, "Figma URL")
	assert.NotContains(t, p, "Design Name")
	assert.Contains(t, p, "**Design Description**: a login page")
}
