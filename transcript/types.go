// Package transcript partitions word-level TTS/ASR timing data into display
// segments for follow-along reading. The pipeline is enrich (annotate each
// word with timing, punctuation and linguistic flags), segment (greedy
// break-scored pass), merge (fold undersized segments into neighbors), then
// map to the output timeline.
package transcript

import "strings"

// WordTiming is one spoken word as reported by a TTS/ASR provider, in
// temporal order with start times non-decreasing. Times are seconds.
type WordTiming struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Word is the enriched form of a WordTiming. Built once during enrichment and
// never mutated afterwards; segmentation only groups words.
type Word struct {
	Text     string
	Start    int // ms
	End      int // ms
	Duration int // ms

	// GapAfter is the silence before the next word in ms, 0 for the last
	// word. Negative when provider timings overlap; negative gaps are
	// propagated rather than clamped so they can never clear a pause
	// threshold.
	GapAfter int

	// PunctuationAfter is the first punctuation character following the
	// word in the source text, or attached to the word itself. Empty when
	// none was found.
	PunctuationAfter  string
	PunctuationWeight int

	IsAbbreviation bool
	IsNumber       bool
	IsSentenceEnd  bool

	// English-only flags derived from the entity and meaning-group
	// detectors.
	InEntity               bool
	InMeaningGroup         bool
	AtMeaningGroupBoundary bool
}

// Segment is a contiguous, non-empty run of words displayed together.
// Segments partition the enriched word sequence exactly.
type Segment struct {
	Words []Word
}

func (s Segment) Text() string {
	parts := make([]string, len(s.Words))
	for i, w := range s.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

func (s Segment) Start() int {
	if len(s.Words) == 0 {
		return 0
	}
	return s.Words[0].Start
}

func (s Segment) Duration() int {
	if len(s.Words) == 0 {
		return 0
	}
	return s.Words[len(s.Words)-1].End - s.Words[0].Start
}

// TimelineWord is one word of the output timeline.
type TimelineWord struct {
	Text     string `json:"text"`
	Start    int    `json:"start"`
	Duration int    `json:"duration"`
}

// TimelineSegment is one display segment of the output timeline.
type TimelineSegment struct {
	Text     string         `json:"text"`
	Start    int            `json:"start"`
	Duration int            `json:"duration"`
	Timeline []TimelineWord `json:"timeline"`
}

// Timeline is the final output: ordered display segments with per-word
// timing, consumed by the playback layer.
type Timeline []TimelineSegment
