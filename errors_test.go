package routecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictTextCode(t *testing.T) {
	assert.Equal(t, "ROUTE_EXACT_DUPLICATE", conflictTextCode(ConflictExactDuplicate))
	assert.Equal(t, "ROUTE_PARAM_NAME_CONFLICT", conflictTextCode(ConflictParamName))
	assert.Equal(t, "ROUTE_CONFLICT", conflictTextCode(ConflictNone))
}

func TestNewConflictError(t *testing.T) {
	existing := &RouteRecord{Method: "GET", File: "a.js", Line: 12, Path: "/users", EffectivePath: "/users"}
	incoming := &RouteRecord{Method: "GET", File: "b.js", Line: 40, Path: "/users", EffectivePath: "/users"}

	conflict := ConflictRecord{
		Kind:    ConflictExactDuplicate,
		Message: "/users is an exact duplicate",
		Index:   -1,
	}

	err := NewConflictError(incoming, existing, conflict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /users")
	assert.Contains(t, err.Error(), "a.js:12")
	assert.Contains(t, err.Error(), "exact duplicate")
}
