package packager

import (
	"strings"
)

// fileMarker delimits the start of a file block in the model's reply, e.g.
// "# FILE: src/App.js". Everything until the next marker (or end of input)
// belongs to that file.
const fileMarker = "# FILE: "

// ParseFileBlocks scans the raw model reply line by line and splits it into a
// FileSet using the "# FILE: <path>" marker convention the generation prompt
// asks for. Lines before the first marker are discarded. Input without any
// markers yields an empty set; this function never fails.
func ParseFileBlocks(raw string) *FileSet {
	files := NewFileSet()

	var currentPath string
	var currentLines []string

	flush := func() {
		if currentPath == "" {
			return
		}
		files.Put(currentPath, cleanContent(strings.Join(currentLines, "\n")))
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, fileMarker) {
			flush()
			currentPath = strings.TrimSpace(line[len(fileMarker):])
			currentLines = nil
			continue
		}
		if currentPath != "" {
			currentLines = append(currentLines, line)
		}
	}
	flush()

	return files
}

// cleanContent trims surrounding whitespace and strips every occurrence of the
// markdown code-fence markers the prompt asks the model to wrap files in. The
// model tends to fence blocks even when told the output is parsed verbatim, so
// stripping happens everywhere, not just at block boundaries.
func cleanContent(content string) string {
	content = strings.TrimSpace(content)
	content = strings.ReplaceAll(content, "```jsx", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}
