package routecheck

import "fmt"

// ConflictKind classifies the relationship between two route paths.
type ConflictKind string

const (
	ConflictNone                 ConflictKind = "none"
	ConflictExactDuplicate       ConflictKind = "exact_duplicate"
	ConflictParamName            ConflictKind = "param_name_conflict"
	ConflictStaticVsDynamic      ConflictKind = "static_vs_dynamic"
	ConflictWildcard             ConflictKind = "wildcard_conflict"
	ConflictDifferentConstraints ConflictKind = "different_constraints"
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictExactDuplicate, ConflictParamName, ConflictStaticVsDynamic,
		ConflictWildcard, ConflictDifferentConstraints:
		return string(k)
	default:
		return string(ConflictNone)
	}
}

// ConflictRecord describes one detected conflict. Index and the
// segment pair are only meaningful for kinds triggered by a specific
// segment; Index is -1 otherwise.
type ConflictRecord struct {
	Kind            ConflictKind
	Message         string
	Index           int
	ExistingSegment string
	NewSegment      string
}

// Detector classifies the relationship between pairs of raw paths.
type Detector struct {
	normalizer *Normalizer
}

// NewDetector returns a Detector backed by the given Normalizer. The
// normalizer may be shared with the rest of the engine; detection only
// reads through it.
func NewDetector(normalizer *Normalizer) *Detector {
	if normalizer == nil {
		normalizer = NewNormalizer(DefaultNormalizeCacheSize)
	}
	return &Detector{normalizer: normalizer}
}

// Detect classifies pathA against pathB at the given normalization
// level. Rules apply in order and the first match wins:
//
//  1. identical raw strings are exact duplicates
//  2. differing segment counts never conflict
//  3. the first wildcard/static/constraint mismatch along the
//     index-aligned segments decides the kind
//  4. otherwise, paths that normalize identically at level > 0 differ
//     only by parameter names
func (d *Detector) Detect(pathA, pathB string, level int) ConflictRecord {
	if pathA == pathB {
		return ConflictRecord{
			Kind:    ConflictExactDuplicate,
			Message: fmt.Sprintf("%s is an exact duplicate", pathA),
			Index:   -1,
		}
	}

	segmentsA := ParseSegments(pathA)
	segmentsB := ParseSegments(pathB)
	if len(segmentsA) != len(segmentsB) {
		return ConflictRecord{Kind: ConflictNone, Index: -1}
	}

	for i := range segmentsA {
		segA := segmentsA[i]
		segB := segmentsB[i]

		aWildcard := segA.Kind == SegmentWildcard
		bWildcard := segB.Kind == SegmentWildcard
		if aWildcard != bWildcard {
			return ConflictRecord{
				Kind:            ConflictWildcard,
				Message:         "wildcard segment overlaps existing route",
				Index:           i,
				ExistingSegment: segA.Raw,
				NewSegment:      segB.Raw,
			}
		}

		aStatic := segA.Kind == SegmentStatic
		bStatic := segB.Kind == SegmentStatic
		if aStatic != bStatic {
			return ConflictRecord{
				Kind:            ConflictStaticVsDynamic,
				Message:         "static segment conflicts with dynamic segment",
				Index:           i,
				ExistingSegment: segA.Raw,
				NewSegment:      segB.Raw,
			}
		}

		if segA.Kind == SegmentConstrainedParam && segB.Kind == SegmentConstrainedParam &&
			segA.Constraint != segB.Constraint {
			return ConflictRecord{
				Kind:            ConflictDifferentConstraints,
				Message:         "parameter constraints differ for the same position",
				Index:           i,
				ExistingSegment: segA.Raw,
				NewSegment:      segB.Raw,
			}
		}
	}

	if level > 0 {
		normA := d.normalizer.Normalize(pathA, level, false)
		normB := d.normalizer.Normalize(pathB, level, false)
		if normA == normB {
			return ConflictRecord{
				Kind:    ConflictParamName,
				Message: fmt.Sprintf("%s and %s differ only by parameter names", pathA, pathB),
				Index:   -1,
			}
		}
	}

	return ConflictRecord{Kind: ConflictNone, Index: -1}
}
