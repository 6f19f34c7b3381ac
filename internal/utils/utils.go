package utils

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an API error looks transient enough to be worth
// a single retry.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// DetermineFileType maps a generated file's name to a display type for the
// preview listing.
func DetermineFileType(filename string) string {
	lower := strings.ToLower(filename)

	base := filepath.Base(lower)
	switch {
	case strings.Contains(base, "tailwind.config"):
		return "Config"
	case strings.Contains(base, "package.json"):
		return "JSON"
	}

	switch filepath.Ext(lower) {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".svg":
		return "SVG"
	case ".txt":
		return "Text"
	default:
		return "Unknown"
	}
}
