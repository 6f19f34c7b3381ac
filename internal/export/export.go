package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Exporter writes generated projects to a base directory on disk, one
// subdirectory per request. A zero-value base directory disables export.
type Exporter struct {
	baseDir string
}

func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// Enabled reports whether a base directory is configured.
func (e *Exporter) Enabled() bool {
	return e.baseDir != ""
}

// WriteProject materializes the file map under <baseDir>/<requestID>/,
// creating subdirectories as paths require. It returns the project directory.
func (e *Exporter) WriteProject(requestID string, files map[string]string) (string, error) {
	if !e.Enabled() {
		return "", fmt.Errorf("export directory not configured")
	}

	projectDir := filepath.Join(e.baseDir, requestID)
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create project dir: %w", err)
	}

	written := 0
	for name, content := range files {
		local := filepath.FromSlash(name)
		// Paths come from the model reply; anything absolute or climbing out
		// of the project dir is skipped rather than written elsewhere.
		if !filepath.IsLocal(local) {
			log.Printf("WARN: Skipping file with path outside the project dir: %s", name)
			continue
		}
		filePath := filepath.Join(projectDir, local)
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return "", fmt.Errorf("failed to create subdirectories for %s: %w", name, err)
		}
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to write file %s: %w", name, err)
		}
		written++
	}
	log.Printf("Wrote %d files to %s", written, projectDir)

	return projectDir, nil
}
