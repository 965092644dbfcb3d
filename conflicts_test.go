package routecheck

import "testing"

func newTestDetector() *Detector {
	return NewDetector(NewNormalizer(0))
}

func TestDetect_ExactDuplicate(t *testing.T) {
	d := newTestDetector()

	for _, level := range []int{0, 1, 2} {
		conflict := d.Detect("/users", "/users", level)
		if conflict.Kind != ConflictExactDuplicate {
			t.Fatalf("level %d: expected exact duplicate, got %s", level, conflict.Kind)
		}
	}
}

func TestDetect_ParamNameConflict(t *testing.T) {
	d := newTestDetector()

	conflict := d.Detect("/users/:id", "/users/:userId", 1)
	if conflict.Kind != ConflictParamName {
		t.Fatalf("expected param name conflict, got %s", conflict.Kind)
	}

	// At level 0 no canonicalization happens, so the pair is distinct.
	conflict = d.Detect("/users/:id", "/users/:userId", 0)
	if conflict.Kind != ConflictNone {
		t.Fatalf("expected none at level 0, got %s", conflict.Kind)
	}
}

func TestDetect_DifferentShapeNeverConflicts(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		pathA string
		pathB string
	}{
		{"/users", "/users/:id"},
		{"/a/b/c", "/a/b"},
		{"/", "/users"},
	}

	for _, tt := range tests {
		conflict := d.Detect(tt.pathA, tt.pathB, 1)
		if conflict.Kind != ConflictNone {
			t.Fatalf("Detect(%q, %q): expected none, got %s", tt.pathA, tt.pathB, conflict.Kind)
		}
	}
}

func TestDetect_SegmentPairRules(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name  string
		pathA string
		pathB string
		kind  ConflictKind
		index int
	}{
		{
			name:  "wildcard vs param",
			pathA: "/files/*",
			pathB: "/files/:id",
			kind:  ConflictWildcard,
			index: 1,
		},
		{
			name:  "named wildcard vs static",
			pathA: "/files/:rest*",
			pathB: "/files/latest",
			kind:  ConflictWildcard,
			index: 1,
		},
		{
			name:  "static vs param",
			pathA: "/users/new",
			pathB: "/users/:id",
			kind:  ConflictStaticVsDynamic,
			index: 1,
		},
		{
			name:  "different constraints",
			pathA: `/users/:id(\d+)`,
			pathB: `/users/:id([a-f0-9]+)`,
			kind:  ConflictDifferentConstraints,
			index: 1,
		},
		{
			name:  "wildcard wins over later constraint mismatch",
			pathA: `/a/*/b/:id(\d+)`,
			pathB: `/a/:x/b/:id([a-z]+)`,
			kind:  ConflictWildcard,
			index: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := d.Detect(tt.pathA, tt.pathB, 1)
			if conflict.Kind != tt.kind {
				t.Fatalf("expected %s, got %s", tt.kind, conflict.Kind)
			}
			if conflict.Index != tt.index {
				t.Fatalf("expected conflict at segment %d, got %d", tt.index, conflict.Index)
			}
		})
	}
}

func TestDetect_SameConstraintFallsThrough(t *testing.T) {
	d := newTestDetector()

	conflict := d.Detect(`/users/:id(\d+)`, `/users/:userId(\d+)`, 1)
	if conflict.Kind != ConflictParamName {
		t.Fatalf("expected param name conflict, got %s", conflict.Kind)
	}
}

func TestDetect_DistinctStaticPaths(t *testing.T) {
	d := newTestDetector()

	conflict := d.Detect("/users/new", "/users/old", 1)
	if conflict.Kind != ConflictNone {
		t.Fatalf("expected none, got %s", conflict.Kind)
	}
}
