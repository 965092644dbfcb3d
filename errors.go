package routecheck

import (
	"fmt"
	"net/http"

	"github.com/ettle/strcase"
	goerrors "github.com/goliatone/go-errors"
)

// NewConflictError builds the structured diagnostic for a colliding
// registration. The reporting layer consumes the metadata; the message
// stands alone for plain-text output.
func NewConflictError(incoming, existing *RouteRecord, conflict ConflictRecord) error {
	message := fmt.Sprintf("route conflict: %s %s conflicts with registration at %s:%d",
		incoming.Method, incoming.EffectivePath, existing.File, existing.Line)
	if conflict.Message != "" {
		message = fmt.Sprintf("%s (%s)", message, conflict.Message)
	}

	metadata := map[string]any{
		"method":        incoming.Method,
		"path":          incoming.EffectivePath,
		"existing_path": existing.EffectivePath,
		"existing_file": existing.File,
		"existing_line": existing.Line,
		"kind":          conflict.Kind.String(),
	}

	if conflict.Index >= 0 {
		metadata["segment_index"] = conflict.Index
		metadata["segment"] = conflict.NewSegment
		metadata["existing_segment"] = conflict.ExistingSegment
	}

	return goerrors.New(message, goerrors.CategoryConflict).
		WithCode(http.StatusConflict).
		WithTextCode(conflictTextCode(conflict.Kind)).
		WithMetadata(metadata)
}

func conflictTextCode(kind ConflictKind) string {
	if kind == ConflictNone {
		return "ROUTE_CONFLICT"
	}
	return "ROUTE_" + strcase.ToSNAKE(string(kind))
}
