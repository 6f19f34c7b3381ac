package types

// GeneratedFile is one parsed output file as exposed by the preview endpoint.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "JSX", "CSS", "JSON"
	Content  string `json:"content"`
}
