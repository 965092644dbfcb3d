package routecheck

import (
	"regexp"
	"strings"
)

// SegmentKind classifies one "/"-delimited unit of a path template.
type SegmentKind int

const (
	SegmentStatic SegmentKind = iota
	SegmentParam
	SegmentOptionalParam
	SegmentConstrainedParam
	SegmentWildcard
	SegmentCompoundParam
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentParam:
		return "param"
	case SegmentOptionalParam:
		return "optional_param"
	case SegmentConstrainedParam:
		return "constrained_param"
	case SegmentWildcard:
		return "wildcard"
	case SegmentCompoundParam:
		return "compound_param"
	default:
		return "static"
	}
}

// PathSegment is a single parsed unit of a path template. Kind and
// Normalized are derived from Raw alone, so parsing the same raw
// fragment always yields the same segment.
type PathSegment struct {
	Raw        string
	Kind       SegmentKind
	Normalized string
	ParamName  string
	// Constraint holds the raw constraint source including the
	// surrounding parentheses, e.g. "(\\d+)". Empty for every kind
	// other than SegmentConstrainedParam.
	Constraint string
}

var (
	wildcardParamRe    = regexp.MustCompile(`^([^()*]+)\*$`)
	constrainedParamRe = regexp.MustCompile(`^([^()]+)(\(.+\))$`)
	compoundParamRe    = regexp.MustCompile(`^([A-Za-z_$][A-Za-z0-9_$]*)-([A-Za-z_$][A-Za-z0-9_$]*)$`)
	simpleNameRe       = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// SplitPathSegments splits a path template on "/" discarding empty
// fragments, so "/a//b/" and "a/b" decompose identically.
func SplitPathSegments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// ParseSegments decomposes a path template into classified segments.
func ParseSegments(path string) []PathSegment {
	raw := SplitPathSegments(path)
	segments := make([]PathSegment, 0, len(raw))
	for _, fragment := range raw {
		segments = append(segments, ParseSegment(fragment))
	}
	return segments
}

// ParseSegment classifies a single path fragment.
func ParseSegment(raw string) PathSegment {
	if raw == "" {
		// SplitPathSegments never produces this, but direct callers might.
		return PathSegment{Raw: raw, Kind: SegmentStatic, Normalized: raw}
	}

	if raw == "*" || raw == "**" {
		return PathSegment{Raw: raw, Kind: SegmentWildcard, Normalized: "*"}
	}

	if !strings.HasPrefix(raw, ":") {
		return PathSegment{Raw: raw, Kind: SegmentStatic, Normalized: raw}
	}

	body := strings.TrimPrefix(raw, ":")
	optional := strings.HasSuffix(body, "?")
	if optional {
		body = strings.TrimSuffix(body, "?")
	}

	if m := wildcardParamRe.FindStringSubmatch(body); m != nil {
		return PathSegment{Raw: raw, Kind: SegmentWildcard, Normalized: "*", ParamName: m[1]}
	}

	if m := constrainedParamRe.FindStringSubmatch(body); m != nil {
		return PathSegment{
			Raw:        raw,
			Kind:       SegmentConstrainedParam,
			Normalized: ":param",
			ParamName:  m[1],
			Constraint: m[2],
		}
	}

	if m := compoundParamRe.FindStringSubmatch(body); m != nil {
		return PathSegment{
			Raw:        raw,
			Kind:       SegmentCompoundParam,
			Normalized: ":param-:param",
			ParamName:  m[1] + "-" + m[2],
		}
	}

	kind := SegmentParam
	normalized := ":param"
	if optional {
		kind = SegmentOptionalParam
		normalized = ":param?"
	}

	return PathSegment{Raw: raw, Kind: kind, Normalized: normalized, ParamName: body}
}

// ConstraintPattern returns the constraint text of a constrained
// parameter segment with the parentheses stripped. Constraint text
// that does not compile as a regular expression is treated as no
// constraint at all rather than an error.
func ConstraintPattern(segment PathSegment) (string, bool) {
	if segment.Kind != SegmentConstrainedParam || len(segment.Constraint) < 2 {
		return "", false
	}

	inner := segment.Constraint[1 : len(segment.Constraint)-1]
	if _, err := regexp.Compile(inner); err != nil {
		return "", false
	}
	return inner, true
}

func isSimpleName(s string) bool {
	return simpleNameRe.MatchString(s)
}
