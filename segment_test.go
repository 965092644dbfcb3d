package routecheck

import "testing"

func TestParseSegment_Classification(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		kind       SegmentKind
		normalized string
		paramName  string
		constraint string
	}{
		{name: "static", raw: "users", kind: SegmentStatic, normalized: "users"},
		{name: "bare wildcard", raw: "*", kind: SegmentWildcard, normalized: "*"},
		{name: "double wildcard", raw: "**", kind: SegmentWildcard, normalized: "*"},
		{name: "param", raw: ":id", kind: SegmentParam, normalized: ":param", paramName: "id"},
		{name: "optional param", raw: ":id?", kind: SegmentOptionalParam, normalized: ":param?", paramName: "id"},
		{name: "named wildcard", raw: ":rest*", kind: SegmentWildcard, normalized: "*", paramName: "rest"},
		{name: "constrained param", raw: `:id(\d+)`, kind: SegmentConstrainedParam, normalized: ":param", paramName: "id", constraint: `(\d+)`},
		{name: "optional constrained", raw: `:id(\d+)?`, kind: SegmentConstrainedParam, normalized: ":param", paramName: "id", constraint: `(\d+)`},
		{name: "compound param", raw: ":from-to", kind: SegmentCompoundParam, normalized: ":param-:param", paramName: "from-to"},
		{name: "static with dash", raw: "user-profiles", kind: SegmentStatic, normalized: "user-profiles"},
		{name: "hyphen body with non-name chars", raw: ":a*b-c", kind: SegmentParam, normalized: ":param", paramName: "a*b-c"},
		{name: "hyphen body with colon", raw: ":from-:to", kind: SegmentParam, normalized: ":param", paramName: "from-:to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := ParseSegment(tt.raw)
			if seg.Kind != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, seg.Kind)
			}
			if seg.Normalized != tt.normalized {
				t.Fatalf("expected normalized %q, got %q", tt.normalized, seg.Normalized)
			}
			if tt.paramName != "" && seg.ParamName != tt.paramName {
				t.Fatalf("expected param name %q, got %q", tt.paramName, seg.ParamName)
			}
			if seg.Constraint != tt.constraint {
				t.Fatalf("expected constraint %q, got %q", tt.constraint, seg.Constraint)
			}
		})
	}
}

func TestSplitPathSegments_DiscardsEmptyFragments(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{path: "/users/:id", want: 2},
		{path: "//users//", want: 1},
		{path: "/", want: 0},
		{path: "", want: 0},
		{path: "a/b/c", want: 3},
	}

	for _, tt := range tests {
		got := SplitPathSegments(tt.path)
		if len(got) != tt.want {
			t.Fatalf("SplitPathSegments(%q): expected %d segments, got %d (%v)", tt.path, tt.want, len(got), got)
		}
	}
}

func TestConstraintPattern(t *testing.T) {
	seg := ParseSegment(`:id(\d+)`)
	pattern, ok := ConstraintPattern(seg)
	if !ok {
		t.Fatal("expected a valid constraint pattern")
	}
	if pattern != `\d+` {
		t.Fatalf("expected pattern %q, got %q", `\d+`, pattern)
	}
}

func TestConstraintPattern_MalformedIsNoConstraint(t *testing.T) {
	seg := ParseSegment(`:id([a-z)`)
	if seg.Kind != SegmentConstrainedParam {
		t.Fatalf("expected constrained param kind, got %s", seg.Kind)
	}

	if _, ok := ConstraintPattern(seg); ok {
		t.Fatal("expected malformed constraint to report no constraint")
	}
}

func TestConstraintPattern_NonConstrainedSegment(t *testing.T) {
	if _, ok := ConstraintPattern(ParseSegment(":id")); ok {
		t.Fatal("expected no constraint for plain param")
	}
}
