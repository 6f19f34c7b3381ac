package packager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileBlocks_NoMarkers(t *testing.T) {
	files := ParseFileBlocks("just some prose\nwith no file markers\n")
	assert.Equal(t, 0, files.Len())
}

func TestParseFileBlocks_Empty(t *testing.T) {
	files := ParseFileBlocks("")
	assert.Equal(t, 0, files.Len())
}

func TestParseFileBlocks_SingleFile(t *testing.T) {
	files := ParseFileBlocks("# FILE: src/App.js\nline1\nline2\n")

	assert.Equal(t, 1, files.Len())
	content, ok := files.Get("src/App.js")
	assert.True(t, ok)
	assert.Equal(t, "line1\nline2", content)
}

func TestParseFileBlocks_MultipleFiles(t *testing.T) {
	raw := "# FILE: src/App.js\nconsole.log('app')\n" +
		"# FILE: src/components/Button.js\nconsole.log('button')\n"
	files := ParseFileBlocks(raw)

	assert.Equal(t, 2, files.Len())
	assert.Equal(t, []string{"src/App.js", "src/components/Button.js"}, files.Paths())

	app, _ := files.Get("src/App.js")
	assert.Equal(t, "console.log('app')", app)
	button, _ := files.Get("src/components/Button.js")
	assert.Equal(t, "console.log('button')", button)
}

func TestParseFileBlocks_DuplicatePathLastWriteWins(t *testing.T) {
	raw := "# FILE: src/App.js\nfirst version\n" +
		"# FILE: src/index.js\nindex\n" +
		"# FILE: src/App.js\nsecond version\n"
	files := ParseFileBlocks(raw)

	assert.Equal(t, 2, files.Len())
	content, _ := files.Get("src/App.js")
	assert.Equal(t, "second version", content)
	// The duplicate keeps its first position in the ordering.
	assert.Equal(t, []string{"src/App.js", "src/index.js"}, files.Paths())
}

func TestParseFileBlocks_StripsFenceMarkersEverywhere(t *testing.T) {
	raw := "# FILE: src/App.js\n```jsx\nconst a = 1;\n```\nmiddle ``` fence\n"
	files := ParseFileBlocks(raw)

	content, _ := files.Get("src/App.js")
	assert.NotContains(t, content, "```jsx")
	assert.NotContains(t, content, "```")
	assert.Contains(t, content, "const a = 1;")
	assert.Contains(t, content, "middle  fence")
}

func TestParseFileBlocks_TrimsSurroundingBlankLines(t *testing.T) {
	raw := "# FILE: src/App.js\n\n\nline1\n\nline2\n\n\n"
	files := ParseFileBlocks(raw)

	content, _ := files.Get("src/App.js")
	assert.Equal(t, "line1\n\nline2", content)
}

func TestParseFileBlocks_PreambleBeforeFirstMarkerIsDiscarded(t *testing.T) {
	raw := "Here is your project:\n\n# FILE: src/App.js\nexport default null;\n"
	files := ParseFileBlocks(raw)

	assert.Equal(t, 1, files.Len())
	content, _ := files.Get("src/App.js")
	assert.Equal(t, "export default null;", content)
}

func TestParseFileBlocks_TrimsPathWhitespace(t *testing.T) {
	files := ParseFileBlocks("# FILE:  src/App.js \ncode\n")
	assert.True(t, files.Has("src/App.js"))
}

func TestParseFileBlocks_FencedEndToEnd(t *testing.T) {
	raw := "# FILE: src/App.js\n```jsx\nexport default function App(){return null;}\n```\n"
	files := ParseFileBlocks(raw)

	assert.Equal(t, 1, files.Len())
	content, _ := files.Get("src/App.js")
	assert.Equal(t, "export default function App(){return null;}", content)
}

func TestFileSet_PutOverwriteKeepsPosition(t *testing.T) {
	fs := NewFileSet()
	fs.Put("a.js", "1")
	fs.Put("b.js", "2")
	fs.Put("a.js", "3")

	assert.Equal(t, []string{"a.js", "b.js"}, fs.Paths())
	content, _ := fs.Get("a.js")
	assert.Equal(t, "3", content)
	assert.Equal(t, 2, fs.Len())
}
