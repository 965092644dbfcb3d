package routecheck

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/goliatone/go-routecheck"

// Diagnostic pairs a conflict classification with the two colliding
// registrations. Err carries the structured error handed to the
// reporting layer.
type Diagnostic struct {
	Conflict ConflictRecord
	Existing *RouteRecord
	Incoming *RouteRecord
	Err      error
}

// Analyzer wires the engine together: it owns a ledger, a prefix
// tracker, a normalizer and a detector, and consumes extraction-layer
// events one file at a time. It is synchronous and single-writer; use
// one Analyzer per concurrent run.
type Analyzer struct {
	cfg         Config
	ledger      *RouteLedger
	tracker     *PrefixTracker
	normalizer  *Normalizer
	detector    *Detector
	filter      *FileFilter
	logger      Logger
	tracer      trace.Tracer
	diagnostics []Diagnostic
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger injects a logger; the silent default is used otherwise.
func WithLogger(logger Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTracer injects an OpenTelemetry tracer. Without one, spans go
// through the globally registered provider (a no-op by default).
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Analyzer) {
		if tracer != nil {
			a.tracer = tracer
		}
	}
}

// NewAnalyzer builds an Analyzer from a configuration.
func NewAnalyzer(cfg Config, opts ...Option) *Analyzer {
	cfg = cfg.normalize()

	a := &Analyzer{
		cfg:        cfg,
		ledger:     NewRouteLedger(),
		tracker:    NewPrefixTracker(cfg.MaxRouterDepth, cfg.PrefixCacheSize),
		normalizer: NewNormalizer(cfg.NormalizeCacheSize),
		logger:     &defaultLogger{},
		tracer:     otel.Tracer(tracerName),
	}
	a.detector = NewDetector(a.normalizer)

	for _, opt := range opts {
		opt(a)
	}

	a.tracker.WithLogger(a.logger)
	a.filter = NewFileFilter(cfg.Include, cfg.Exclude, a.logger)
	return a
}

// BeginRun starts (or resumes) an analysis run and returns its id. An
// empty runID gets a generated one. Repeating the current run id keeps
// all accumulated state, so incremental re-analysis can call BeginRun
// freely.
func (a *Analyzer) BeginRun(runID string) string {
	if runID == "" {
		runID = uuid.NewString()
	}

	if a.ledger.RunID() != runID {
		a.ledger.BeginRun(runID)
		a.tracker.Reset()
		a.diagnostics = nil
	}
	return runID
}

// ProcessFile consumes one file's events in order and returns the
// diagnostics they produced. Files rejected by the include/exclude
// filter contribute nothing.
func (a *Analyzer) ProcessFile(ctx context.Context, file string, events []Event) []Diagnostic {
	_, span := a.tracer.Start(ctx, "routecheck.process_file",
		trace.WithAttributes(
			attribute.String("routecheck.file", file),
			attribute.Int("routecheck.events", len(events)),
		))
	defer span.End()

	if !a.filter.Match(file) {
		a.logger.Debug("file %s excluded by filter", file)
		return nil
	}

	a.tracker.BeginFile(file)

	before := len(a.diagnostics)
	for _, event := range events {
		a.apply(event)
	}

	produced := a.diagnostics[before:]
	span.SetAttributes(attribute.Int("routecheck.conflicts", len(produced)))
	return produced
}

// Diagnostics returns every diagnostic accumulated in the current run.
func (a *Analyzer) Diagnostics() []Diagnostic {
	return a.diagnostics
}

// Ledger exposes the run ledger for snapshots and tests.
func (a *Analyzer) Ledger() *RouteLedger {
	return a.ledger
}

// Tracker exposes the prefix tracker for inspection.
func (a *Analyzer) Tracker() *PrefixTracker {
	return a.tracker
}

func (a *Analyzer) apply(event Event) {
	switch ev := event.(type) {
	case RouterCreatedEvent:
		a.tracker.Track(ev.Identifier, ev.FrameworkHint)
	case PrefixMountEvent:
		a.applyMount(ev)
	case RouterExportedEvent:
		if !a.tracker.MarkExported(ev.Identifier) {
			a.logger.Debug("export of unknown router %q ignored", ev.Identifier)
		}
	case RouterImportedEvent:
		a.tracker.RecordImport(ev.ImportedName, ev.LocalAlias, ev.SourceModule)
	case RouteRegisteredEvent:
		a.applyRegistration(ev)
	}
}

func (a *Analyzer) applyMount(ev PrefixMountEvent) {
	if ev.CalleeTarget != "" && !IsMountCall(ev.CalleeTarget) {
		return
	}
	if ev.Dynamic {
		a.logger.Debug("dynamic mount prefix on %q skipped", ev.RouterArgument)
		return
	}
	if !isSimpleName(ev.RouterArgument) {
		return
	}

	if !a.tracker.ApplyPrefix(ev.RouterArgument, ev.Prefix) {
		a.logger.Debug("mount of %q under %q not applied", ev.RouterArgument, ev.Prefix)
	}
}

func (a *Analyzer) applyRegistration(ev RouteRegisteredEvent) {
	effective := ev.RawPath
	if ev.RouterIdentifier != "" {
		if prefix, ok := a.tracker.EffectivePrefix(ev.RouterIdentifier); ok {
			effective = JoinPaths(prefix, ev.RawPath)
		}
	}

	normalized := a.normalizer.Normalize(effective, a.cfg.NormalizationLevel, a.cfg.PreserveConstraints)

	record := &RouteRecord{
		Method:        strings.ToUpper(ev.Method),
		File:          ev.Location.File,
		Line:          ev.Location.Line,
		Column:        ev.Location.Column,
		Path:          normalized,
		EffectivePath: effective,
	}

	existing := a.ledger.Register(record)
	if existing == nil {
		return
	}

	conflict := a.detector.Detect(existing.EffectivePath, effective, a.cfg.NormalizationLevel)
	if conflict.Kind == ConflictNone {
		return
	}
	if !a.cfg.WarnNonExact() && conflict.Kind != ConflictExactDuplicate && conflict.Kind != ConflictParamName {
		return
	}

	a.diagnostics = append(a.diagnostics, Diagnostic{
		Conflict: conflict,
		Existing: existing,
		Incoming: record,
		Err:      NewConflictError(record, existing, conflict),
	})
}
