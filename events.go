package routecheck

// Location points at a registration site in source.
type Location struct {
	File   string
	Line   int
	Column int
}

// Event is the closed set of extraction-layer facts the engine
// consumes. The extraction layer resolves syntax; the engine only sees
// these already-extracted shapes.
type Event interface {
	isEvent()
}

// RouterCreatedEvent announces a new router bound to an identifier.
type RouterCreatedEvent struct {
	Identifier    string
	FrameworkHint string
}

// PrefixMountEvent announces an attempted mount of a sub-router under
// a path prefix. Dynamic marks prefixes whose value is not statically
// known; those mounts are skipped.
type PrefixMountEvent struct {
	CalleeTarget   string
	Prefix         string
	RouterArgument string
	Dynamic        bool
}

// RouterExportedEvent announces that an identifier is exported from
// the current file.
type RouterExportedEvent struct {
	Identifier string
}

// RouterImportedEvent announces an import of a router from another
// module.
type RouterImportedEvent struct {
	ImportedName string
	LocalAlias   string
	SourceModule string
}

// RouteRegisteredEvent announces one method+path registration.
// RouterIdentifier is empty when the registration target could not be
// tied to a tracked router.
type RouteRegisteredEvent struct {
	Method           string
	RawPath          string
	Location         Location
	RouterIdentifier string
}

func (RouterCreatedEvent) isEvent()   {}
func (PrefixMountEvent) isEvent()     {}
func (RouterExportedEvent) isEvent()  {}
func (RouterImportedEvent) isEvent()  {}
func (RouteRegisteredEvent) isEvent() {}
