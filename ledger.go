package routecheck

// RouteRecord is one registration seen during the current run. Path
// holds the effective normalized path; EffectivePath keeps the joined
// pre-normalization template so collisions can be re-classified.
type RouteRecord struct {
	Method        string
	File          string
	Line          int
	Column        int
	Path          string
	EffectivePath string
}

// RouteLedger is the run-scoped registry of first-seen registrations.
// Keys are exact strings; callers must normalize before registering.
type RouteLedger struct {
	runID   string
	records map[string]*RouteRecord
	order   []string
}

// NewRouteLedger returns an empty ledger.
func NewRouteLedger() *RouteLedger {
	return &RouteLedger{records: make(map[string]*RouteRecord)}
}

// BeginRun clears the ledger when the run id changes. Repeated calls
// with the same id are no-ops, so incremental re-analysis can call it
// once per file without losing accumulated records.
func (l *RouteLedger) BeginRun(runID string) {
	if l.runID == runID {
		return
	}
	l.runID = runID
	l.records = make(map[string]*RouteRecord)
	l.order = l.order[:0]
}

// RunID returns the id of the current run.
func (l *RouteLedger) RunID() string {
	return l.runID
}

// Register inserts a record and returns nil, or returns the previously
// registered record for the same method+path without overwriting it.
func (l *RouteLedger) Register(record *RouteRecord) *RouteRecord {
	key := record.Method + ":" + record.Path
	if existing, ok := l.records[key]; ok {
		return existing
	}

	l.records[key] = record
	l.order = append(l.order, key)
	return nil
}

// Len returns the number of held records.
func (l *RouteLedger) Len() int {
	return len(l.records)
}

// Snapshot returns the held records in registration order.
func (l *RouteLedger) Snapshot() []*RouteRecord {
	out := make([]*RouteRecord, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.records[key])
	}
	return out
}

// Clear wipes all records and the held run id.
func (l *RouteLedger) Clear() {
	l.runID = ""
	l.records = make(map[string]*RouteRecord)
	l.order = nil
}
