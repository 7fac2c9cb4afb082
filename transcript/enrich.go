package transcript

import (
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/an-lee/enjoy-transcript/nlp"
	"github.com/an-lee/enjoy-transcript/sentence"
	"github.com/an-lee/enjoy-transcript/textutil"
)

var numberPattern = regexp.MustCompile(`^\d+([.,]\d+)*$`)

// enricher annotates raw word timings against the source text. All lookups
// are best-effort: when a word cannot be aligned back to the text, the
// text-derived fields stay at their zero values and segmentation proceeds on
// timing and word-attached signals alone.
type enricher struct {
	text       string
	lang       string
	boundaries map[int]bool
	entities   []nlp.Span
	groups     []nlp.Span
	classifier nlp.AbbreviationClassifier

	// occurrences counts how many times each cleaned lowercase word has
	// been seen, so repeated words resolve to the right text position.
	occurrences map[string]int
}

func newEnricher(text, lang string, oracle *sentence.Oracle, entities, groups []nlp.Span, classifier nlp.AbbreviationClassifier) *enricher {
	return &enricher{
		text:        text,
		lang:        lang,
		boundaries:  oracle.BoundarySet(text, lang),
		entities:    entities,
		groups:      groups,
		classifier:  classifier,
		occurrences: make(map[string]int),
	}
}

// enrich converts the raw timing sequence into enriched words, one per input
// word, same order.
func (e *enricher) enrich(timings []WordTiming) []Word {
	words := make([]Word, len(timings))
	for i, t := range timings {
		next := 0.0
		if i < len(timings)-1 {
			next = timings[i+1].StartTime
		}
		words[i] = e.enrichWord(t, next, i == len(timings)-1)
	}
	return words
}

func (e *enricher) enrichWord(t WordTiming, nextStart float64, last bool) Word {
	w := Word{
		Text:  t.Text,
		Start: toMillis(t.StartTime),
		End:   toMillis(t.EndTime),
	}
	w.Duration = w.End - w.Start
	if !last {
		w.GapAfter = toMillis(nextStart) - w.End
	}

	clean := cleanWord(t.Text)
	key := strings.ToLower(clean)
	occurrence := e.occurrences[key]
	e.occurrences[key]++

	pos := textutil.WordPosition(e.text, clean, occurrence)

	w.PunctuationAfter = textutil.PunctuationAfterWord(e.text, clean, occurrence)
	if w.PunctuationAfter == "" {
		w.PunctuationAfter = attachedPunctuation(t.Text)
	}

	w.IsAbbreviation = e.isAbbreviation(t.Text, clean, w.PunctuationAfter)
	w.IsNumber = isNumber(clean)
	w.IsSentenceEnd = e.isSentenceEnd(w, clean, pos)

	if e.lang == "en" && pos != textutil.NotFound {
		for _, span := range e.entities {
			if span.Contains(pos) {
				w.InEntity = true
				break
			}
		}
		for _, span := range e.groups {
			if span.Contains(pos) {
				w.InMeaningGroup = true
			}
			if span.End == pos+len(clean) {
				w.AtMeaningGroupBoundary = true
			}
		}
	}

	if !w.IsAbbreviation {
		w.PunctuationWeight = punctuationWeights[w.PunctuationAfter]
	}
	return w
}

// isSentenceEnd requires sentence-ending punctuation on a word that is
// neither an abbreviation nor a number. When the word aligns to the text, the
// boundary oracle is consulted at the position just past the word and its
// punctuation, and the answers are ORed: the oracle can add confidence, never
// veto the punctuation.
func (e *enricher) isSentenceEnd(w Word, clean string, pos int) bool {
	if !sentenceEnders[w.PunctuationAfter] || w.IsAbbreviation || w.IsNumber {
		return false
	}
	if pos == textutil.NotFound {
		return true
	}
	after := pos + len(clean)
	if w.PunctuationAfter != "" {
		after += len(w.PunctuationAfter)
	}
	// TODO: the oracle is ORed with the punctuation answer and so can only
	// confirm, never veto. Revisit against multilingual corpora.
	return e.boundaries[after] || sentenceEnders[w.PunctuationAfter]
}

func (e *enricher) isAbbreviation(raw, clean, punctuation string) bool {
	if punctuation != "." && !strings.HasSuffix(raw, ".") {
		return false
	}
	key := strings.ToLower(strings.TrimRight(clean, "."))
	if abbreviations[key] {
		return true
	}
	if e.lang != "en" || e.classifier == nil {
		return false
	}
	ok, err := e.classifier.IsAbbreviation(e.text, raw)
	if err != nil {
		log.Warn().Err(err).Str("word", raw).Msg("abbreviation classifier failed")
		return false
	}
	return ok
}

// isNumber strips everything but digits and separators and accepts the word
// when what remains is fully numeric and makes up at least half of the
// cleaned word. The density guard keeps ordinals like "3rd" out.
func isNumber(clean string) bool {
	if clean == "" {
		return false
	}
	var b strings.Builder
	for _, r := range clean {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	stripped := b.String()
	if stripped == "" || !numberPattern.MatchString(stripped) {
		return false
	}
	return len(stripped)*2 >= len(clean)
}

// cleanWord strips trailing sentence and clause punctuation, Latin and CJK,
// to get the token used for text lookups.
func cleanWord(word string) string {
	return strings.TrimRight(word, trailingPunctuation)
}

// attachedPunctuation recovers punctuation from the raw token itself when the
// source-text lookup missed, e.g. a provider that reports "world." verbatim.
func attachedPunctuation(raw string) string {
	trimmed := strings.TrimRight(raw, trailingPunctuation)
	if len(trimmed) == len(raw) {
		return ""
	}
	r := []rune(raw[len(trimmed):])
	return string(r[0])
}

func toMillis(seconds float64) int {
	return int(math.Round(seconds * 1000))
}
