package packager

// FileSet maps relative file paths to their text content while remembering the
// order in which paths were first added. Writing an existing path replaces its
// content (last write wins) but keeps its original position, matching how the
// archive members are ultimately ordered.
type FileSet struct {
	contents map[string]string
	order    []string
}

func NewFileSet() *FileSet {
	return &FileSet{contents: make(map[string]string)}
}

// Put stores content under path, overwriting any previous entry.
func (fs *FileSet) Put(path, content string) {
	if _, exists := fs.contents[path]; !exists {
		fs.order = append(fs.order, path)
	}
	fs.contents[path] = content
}

// Get returns the content stored under path and whether the path is present.
func (fs *FileSet) Get(path string) (string, bool) {
	content, ok := fs.contents[path]
	return content, ok
}

// Has reports whether path is present in the set.
func (fs *FileSet) Has(path string) bool {
	_, ok := fs.contents[path]
	return ok
}

// Paths returns the paths in insertion order.
func (fs *FileSet) Paths() []string {
	paths := make([]string, len(fs.order))
	copy(paths, fs.order)
	return paths
}

// Len returns the number of entries in the set.
func (fs *FileSet) Len() int {
	return len(fs.contents)
}

// AsMap returns a plain path->content copy, e.g. for writing files to disk.
func (fs *FileSet) AsMap() map[string]string {
	m := make(map[string]string, len(fs.contents))
	for path, content := range fs.contents {
		m[path] = content
	}
	return m
}
