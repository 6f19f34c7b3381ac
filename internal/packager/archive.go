package packager

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
)

// Fixed paths for the scaffolding entries every archive carries.
const (
	ManifestPath       = "package.json"
	TailwindConfigPath = "tailwind.config.js"
)

// ArchiveFileName is the suggested download name for the produced archive.
const ArchiveFileName = "react-project.zip"

// packageManifest describes the minimal Create-React-App project the archive
// promises. Its fields are fixed so the scaffolding stays internally
// consistent regardless of what the model generated.
type packageManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

var defaultManifest = packageManifest{
	Name:    "figma-to-react",
	Version: "1.0.0",
	Scripts: map[string]string{
		"start": "react-scripts start",
		"build": "react-scripts build",
	},
	Dependencies: map[string]string{
		"react":         "^18.2.0",
		"react-dom":     "^18.2.0",
		"react-scripts": "5.0.1",
		"tailwindcss":   "^3.3.0",
	},
}

// defaultTailwindConfig is written when the model did not supply its own
// tailwind.config.js.
const defaultTailwindConfig = `module.exports = {
  content: ["./src/**/*.{js,jsx}"],
  theme: { extend: {} },
  plugins: []
}
`

// BuildArchive serializes the file set into an in-memory zip archive with the
// project scaffolding injected. The package.json manifest is always written
// from the fixed constants, replacing any model-provided entry; the tailwind
// config is only injected when the set lacks one. The returned reader is
// positioned at the start of the archive bytes.
func BuildArchive(files *FileSet) (*bytes.Reader, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	manifest, err := json.MarshalIndent(defaultManifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal package.json manifest: %w", err)
	}
	if err := writeMember(zw, ManifestPath, string(manifest)); err != nil {
		return nil, err
	}

	if !files.Has(TailwindConfigPath) {
		if err := writeMember(zw, TailwindConfigPath, defaultTailwindConfig); err != nil {
			return nil, err
		}
	}

	for _, path := range files.Paths() {
		if path == ManifestPath {
			// Already written from the fixed manifest above.
			continue
		}
		content, _ := files.Get(path)
		if err := writeMember(zw, path, content); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip archive: %w", err)
	}

	return bytes.NewReader(buf.Bytes()), nil
}

func writeMember(zw *zip.Writer, path, content string) error {
	// zip.Writer.Create uses the deflate method by default.
	w, err := zw.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive member %s: %w", path, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		return fmt.Errorf("failed to write archive member %s: %w", path, err)
	}
	return nil
}
