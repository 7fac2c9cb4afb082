// Package nlp defines the collaborator capabilities the segmenter consumes
// for English text. Every capability is best-effort: the orchestrator treats
// an error as "nothing detected" and never aborts segmentation over one.
package nlp

import "sort"

// Span is a labeled byte range in a source text.
type Span struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
}

// Contains reports whether byte position pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// EntityDetector finds named entities (people, places, organizations) that
// should not be split across segments.
type EntityDetector interface {
	DetectEntities(text string) ([]Span, error)
}

// MeaningGroupDetector finds semantic phrase units (prepositional phrases,
// relative clauses) whose end offsets make good segment boundaries.
type MeaningGroupDetector interface {
	DetectMeaningGroups(text string) ([]Span, error)
}

// AbbreviationClassifier decides whether a period-terminated word is an
// abbreviation. It is consulted only after the fixed manual list misses.
type AbbreviationClassifier interface {
	IsAbbreviation(text, word string) (bool, error)
}

// MergeOverlaps resolves overlapping spans, keeping the longer span of any
// overlapping pair. The result is sorted by start offset.
func MergeOverlaps(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End-sorted[i].Start > sorted[j].End-sorted[j].Start
	})

	out := sorted[:1]
	for _, s := range sorted[1:] {
		last := &out[len(out)-1]
		if s.Start >= last.End {
			out = append(out, s)
			continue
		}
		if s.End-s.Start > last.End-last.Start {
			*last = s
		}
	}
	return out
}
