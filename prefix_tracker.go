package routecheck

import "strings"

const (
	// DefaultMaxRouterDepth is the mount-chain ceiling applied when no
	// explicit depth is configured.
	DefaultMaxRouterDepth = 5
	minRouterDepth        = 1
	maxRouterDepth        = 10

	// DefaultPrefixCacheSize bounds the effective-prefix memo cache.
	DefaultPrefixCacheSize = 1000
)

// RouterBinding tracks one router identifier and the mount prefixes it
// has accumulated. Prefixes are only ever appended; once Depth reaches
// the configured ceiling the binding is frozen.
type RouterBinding struct {
	Identifier    string
	FrameworkHint string
	Prefixes      []string
	Depth         int
	DeclaringFile string
	Exported      bool
}

// ExportEntry records one exported router. Multiple files may export
// the same identifier name; all entries are retained in insertion
// order so ambiguous lookups stay deterministic.
type ExportEntry struct {
	Identifier    string
	DeclaringFile string
	Binding       *RouterBinding
}

// ImportRecord captures an import of a router from another module.
// Resolution does not consult these; they exist for bookkeeping and
// future aliased-import support.
type ImportRecord struct {
	ImportedName string
	LocalAlias   string
	SourceModule string
	File         string
}

// PrefixTracker resolves router identifiers to their accumulated mount
// prefixes. Local bindings are scoped to the file currently being
// processed; the export table spans the whole analysis run.
type PrefixTracker struct {
	maxDepth    int
	currentFile string
	local       map[string]*RouterBinding
	exports     []ExportEntry
	imports     []ImportRecord
	prefixCache *Cache[string, string]
	logger      Logger
}

// NewPrefixTracker returns a tracker with the given mount-depth
// ceiling (clamped to 1..10) and prefix cache size.
func NewPrefixTracker(maxDepth, cacheSize int) *PrefixTracker {
	if maxDepth < minRouterDepth {
		maxDepth = DefaultMaxRouterDepth
	}
	if maxDepth > maxRouterDepth {
		maxDepth = maxRouterDepth
	}
	if cacheSize <= 0 {
		cacheSize = DefaultPrefixCacheSize
	}
	return &PrefixTracker{
		maxDepth:    maxDepth,
		local:       make(map[string]*RouterBinding),
		prefixCache: NewCache[string, string](cacheSize),
		logger:      &defaultLogger{},
	}
}

// WithLogger replaces the tracker's logger.
func (t *PrefixTracker) WithLogger(logger Logger) *PrefixTracker {
	if logger != nil {
		t.logger = logger
	}
	return t
}

// Track registers a newly created router in the current file.
func (t *PrefixTracker) Track(identifier, frameworkHint string) *RouterBinding {
	binding := &RouterBinding{
		Identifier:    identifier,
		FrameworkHint: frameworkHint,
		DeclaringFile: t.currentFile,
	}
	t.local[identifier] = binding
	return binding
}

// ApplyPrefix appends a mount prefix to the named binding. It reports
// false for unknown bindings and for mounts past the depth ceiling;
// neither case mutates any state. Empty and root prefixes succeed
// without mutating, since they contribute nothing to the path.
func (t *PrefixTracker) ApplyPrefix(identifier, prefix string) bool {
	binding, ok := t.local[identifier]
	if !ok {
		return false
	}

	if prefix == "" || prefix == "/" {
		return true
	}

	newDepth := binding.Depth + 1
	if newDepth > t.maxDepth {
		t.logger.Info("router %q exceeded mount depth %d; prefix %q ignored", identifier, t.maxDepth, prefix)
		return false
	}

	binding.Prefixes = append(binding.Prefixes, prefix)
	binding.Depth = newDepth
	return true
}

// MarkExported flags a local binding as exported and appends it to the
// run-wide export table.
func (t *PrefixTracker) MarkExported(identifier string) bool {
	binding, ok := t.local[identifier]
	if !ok {
		return false
	}

	binding.Exported = true
	t.exports = append(t.exports, ExportEntry{
		Identifier:    identifier,
		DeclaringFile: t.currentFile,
		Binding:       binding,
	})
	return true
}

// RecordImport stores an import binding for bookkeeping.
func (t *PrefixTracker) RecordImport(importedName, localAlias, sourceModule string) {
	t.imports = append(t.imports, ImportRecord{
		ImportedName: importedName,
		LocalAlias:   localAlias,
		SourceModule: sourceModule,
		File:         t.currentFile,
	})
}

// EffectivePrefix resolves an identifier to its joined mount prefix.
// A local binding in the current file wins; otherwise the export table
// is consulted by name. The second return is false when the identifier
// is unknown or the resolved binding carries no prefixes.
func (t *PrefixTracker) EffectivePrefix(identifier string) (string, bool) {
	if binding, ok := t.local[identifier]; ok {
		return t.joinBinding(binding)
	}

	matches := t.exportMatches(identifier)
	if len(matches) == 0 {
		return "", false
	}
	if len(matches) > 1 {
		t.logger.Info("identifier %q exported by %d files; using first registration from %s",
			identifier, len(matches), matches[0].DeclaringFile)
	}
	return t.joinBinding(matches[0].Binding)
}

// Binding returns the local binding for an identifier, if present.
func (t *PrefixTracker) Binding(identifier string) (*RouterBinding, bool) {
	binding, ok := t.local[identifier]
	return binding, ok
}

// Exports returns the run-wide export table in insertion order.
func (t *PrefixTracker) Exports() []ExportEntry {
	return t.exports
}

// Imports returns the recorded import bindings.
func (t *PrefixTracker) Imports() []ImportRecord {
	return t.imports
}

// BeginFile clears the local bindings for a new file; the export table
// survives across files.
func (t *PrefixTracker) BeginFile(file string) {
	t.currentFile = file
	t.local = make(map[string]*RouterBinding)
}

// Reset clears everything: local bindings, the export table, import
// records and the prefix cache. Called once at the start of a run.
func (t *PrefixTracker) Reset() {
	t.currentFile = ""
	t.local = make(map[string]*RouterBinding)
	t.exports = nil
	t.imports = nil
	t.prefixCache.Clear()
}

func (t *PrefixTracker) exportMatches(identifier string) []ExportEntry {
	var matches []ExportEntry
	for _, entry := range t.exports {
		if entry.Identifier == identifier {
			matches = append(matches, entry)
		}
	}
	return matches
}

func (t *PrefixTracker) joinBinding(binding *RouterBinding) (string, bool) {
	if len(binding.Prefixes) == 0 {
		return "", false
	}

	key := strings.Join(binding.Prefixes, "\x00")
	if cached, ok := t.prefixCache.Get(key); ok {
		return cached, true
	}

	joined := JoinPaths(binding.Prefixes...)
	t.prefixCache.Set(key, joined)
	return joined, true
}

// JoinPaths joins path fragments into a single rooted path: slashes
// are collapsed, empty fragments discarded, and the result always has
// exactly one leading slash.
//
// Example:
//
//	JoinPaths("/api/", "//users//") // "/api/users"
func JoinPaths(fragments ...string) string {
	var parts []string
	for _, fragment := range fragments {
		for _, piece := range strings.Split(fragment, "/") {
			if piece != "" {
				parts = append(parts, piece)
			}
		}
	}

	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// IsRouterCreation reports whether a callee target has the shape of a
// router construction: a bare Router()/router() call or a two-part
// reference whose final member is Router/router. Extraction layers use
// it to decide whether a call site should become a RouterCreatedEvent;
// the engine trusts creation events it receives and does not re-check.
func IsRouterCreation(calleeTarget string) bool {
	parts := strings.Split(calleeTarget, ".")
	switch len(parts) {
	case 1:
		return parts[0] == "Router" || parts[0] == "router"
	case 2:
		return parts[1] == "Router" || parts[1] == "router"
	default:
		return false
	}
}

// IsMountCall reports whether a callee target has the shape of a mount
// invocation: a two-part reference ending in ".use".
func IsMountCall(calleeTarget string) bool {
	parts := strings.Split(calleeTarget, ".")
	return len(parts) == 2 && parts[1] == "use"
}
