package prompts

import (
	"fmt"
	"strings"
)

// SystemPrompt instructs the model to emit a multi-file React + Tailwind
// project using the "# FILE:" marker convention the packager parses.
const SystemPrompt = `You are an expert React developer. Convert Figma designs into React JS + Tailwind CSS code.
Follow these rules:
1. Use functional components.
2. Use Tailwind for styling (no CSS files).
3. Structure components logically (Header, Main, Footer, etc.).
4. Return files in this format:

# FILE: src/App.js
` + "```jsx" + `
// React code here
` + "```" + `

# FILE: src/components/Button.js
` + "```jsx" + `
// Button component here
` + "```" + `
`

// UserPrompt assembles the user message from the design description, the
// optional Figma URL, and any design metadata resolved from the Figma API.
func UserPrompt(designDescription, figmaURL, designName string) string {
	var b strings.Builder

	if figmaURL != "" {
		fmt.Fprintf(&b, "**Figma URL**: %s\n", figmaURL)
	}
	if designName != "" {
		fmt.Fprintf(&b, "**Design Name**: %s\n", designName)
	}
	fmt.Fprintf(&b, "**Design Description**: %s\n\n", designDescription)

	b.WriteString(`Generate React code for this design. Include:
- Proper folder structure
- All necessary components
- Tailwind CSS styling
- Responsive layout if needed`)

	return b.String()
}
