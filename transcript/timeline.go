package transcript

import (
	"github.com/rs/zerolog/log"

	"github.com/an-lee/enjoy-transcript/nlp"
	"github.com/an-lee/enjoy-transcript/sentence"
)

// Options configures a segmentation run. All capabilities are optional; the
// zero value runs on timing and punctuation signals alone.
type Options struct {
	Config               Config
	EntityDetector       nlp.EntityDetector
	MeaningGroupDetector nlp.MeaningGroupDetector
	Classifier           nlp.AbbreviationClassifier
	Segmenter            sentence.Segmenter
}

type Option func(*Options)

func WithConfig(cfg Config) Option {
	return func(o *Options) { o.Config = cfg }
}

func WithEntityDetector(d nlp.EntityDetector) Option {
	return func(o *Options) { o.EntityDetector = d }
}

func WithMeaningGroupDetector(d nlp.MeaningGroupDetector) Option {
	return func(o *Options) { o.MeaningGroupDetector = d }
}

func WithAbbreviationClassifier(c nlp.AbbreviationClassifier) Option {
	return func(o *Options) { o.Classifier = c }
}

func WithSentenceSegmenter(s sentence.Segmenter) Option {
	return func(o *Options) { o.Segmenter = s }
}

// SegmentTranscript partitions raw word timings into display segments aligned
// against sourceText. It is a pure function of its inputs, safe for
// concurrent use, and total over well-formed input: an empty timing sequence
// yields an empty timeline and capability failures degrade to "nothing
// detected" instead of surfacing.
func SegmentTranscript(sourceText string, timings []WordTiming, languageCode string, opts ...Option) Timeline {
	options := Options{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(&options)
	}

	if len(timings) == 0 {
		return Timeline{}
	}

	lang := sentence.Normalize(languageCode)
	oracle := sentence.NewOracle(options.Segmenter)

	var entities, groups []nlp.Span
	if lang == "en" {
		entities = detectEntities(options.EntityDetector, sourceText)
		groups = detectMeaningGroups(options.MeaningGroupDetector, sourceText)
	}

	e := newEnricher(sourceText, lang, oracle, entities, groups, options.Classifier)
	words := e.enrich(timings)
	segments := segmentWords(words, options.Config)
	segments = mergeShortSegments(segments, options.Config)
	return buildTimeline(segments)
}

// detectEntities makes a single best-effort attempt; errors and panics both
// degrade to no entities.
func detectEntities(d nlp.EntityDetector, text string) (spans []nlp.Span) {
	if d == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Any("panic", r).Msg("entity detector panicked")
			spans = nil
		}
	}()
	spans, err := d.DetectEntities(text)
	if err != nil {
		log.Warn().Err(err).Msg("entity detection failed")
		return nil
	}
	return spans
}

func detectMeaningGroups(d nlp.MeaningGroupDetector, text string) (spans []nlp.Span) {
	if d == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Any("panic", r).Msg("meaning-group detector panicked")
			spans = nil
		}
	}()
	spans, err := d.DetectMeaningGroups(text)
	if err != nil {
		log.Warn().Err(err).Msg("meaning-group detection failed")
		return nil
	}
	return nlp.MergeOverlaps(spans)
}

func buildTimeline(segments []Segment) Timeline {
	timeline := make(Timeline, 0, len(segments))
	for _, s := range segments {
		words := make([]TimelineWord, len(s.Words))
		for i, w := range s.Words {
			words[i] = TimelineWord{Text: w.Text, Start: w.Start, Duration: w.Duration}
		}
		timeline = append(timeline, TimelineSegment{
			Text:     s.Text(),
			Start:    s.Start(),
			Duration: s.Duration(),
			Timeline: words,
		})
	}
	return timeline
}
