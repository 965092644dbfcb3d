package routecheck

import "github.com/gobwas/glob"

// FileFilter decides which files contribute events to a run. With no
// include patterns every file is included; exclude patterns always
// win. Patterns that fail to compile are skipped with a debug log,
// never an error.
type FileFilter struct {
	includes []glob.Glob
	excludes []glob.Glob
}

// NewFileFilter compiles include/exclude glob patterns.
func NewFileFilter(includes, excludes []string, logger Logger) *FileFilter {
	if logger == nil {
		logger = &defaultLogger{}
	}

	f := &FileFilter{}
	for _, pattern := range includes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			logger.Debug("skipping invalid include pattern %q: %v", pattern, err)
			continue
		}
		f.includes = append(f.includes, g)
	}
	for _, pattern := range excludes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			logger.Debug("skipping invalid exclude pattern %q: %v", pattern, err)
			continue
		}
		f.excludes = append(f.excludes, g)
	}
	return f
}

// Match reports whether a file should be analyzed.
func (f *FileFilter) Match(path string) bool {
	for _, g := range f.excludes {
		if g.Match(path) {
			return false
		}
	}

	if len(f.includes) == 0 {
		return true
	}
	for _, g := range f.includes {
		if g.Match(path) {
			return true
		}
	}
	return false
}
