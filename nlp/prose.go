package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseDetector backs the entity and meaning-group capabilities with the
// prose NLP library. English only; other languages should inject their own
// detectors or run without.
type ProseDetector struct{}

// DetectEntities runs prose NER over text and maps each entity back to a byte
// span. Entities whose text cannot be located again (tokenizer normalization)
// are skipped rather than reported with bogus offsets.
func (ProseDetector) DetectEntities(text string) ([]Span, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	var spans []Span
	cursor := 0
	for _, ent := range doc.Entities() {
		idx := strings.Index(text[cursor:], ent.Text)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		spans = append(spans, Span{
			Text:  ent.Text,
			Start: start,
			End:   start + len(ent.Text),
			Type:  ent.Label,
		})
		cursor = start + len(ent.Text)
	}
	return spans, nil
}

// Part-of-speech tags that may continue a phrase once one is open.
var phraseContinuationTags = map[string]bool{
	"DT": true, "PDT": true, "PRP": true, "PRP$": true, "POS": true,
	"JJ": true, "JJR": true, "JJS": true, "CD": true,
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

// DetectMeaningGroups finds prepositional phrases and relative clauses by POS
// tagging: a group opens at a preposition (IN) or relative pronoun (WDT, WP)
// and extends across determiners, adjectives and nouns. Overlaps are merged
// with the longer span winning, so callers get disjoint spans.
func (ProseDetector) DetectMeaningGroups(text string) ([]Span, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	var spans []Span
	var open *Span
	groupType := ""
	cursor := 0
	for _, tok := range doc.Tokens() {
		idx := strings.Index(text[cursor:], tok.Text)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		end := start + len(tok.Text)
		cursor = end

		switch {
		case tok.Tag == "IN" || tok.Tag == "WDT" || tok.Tag == "WP":
			if open != nil && strings.Count(open.Text, " ") >= 1 {
				spans = append(spans, *open)
			}
			if tok.Tag == "IN" {
				groupType = "prepositional"
			} else {
				groupType = "relative"
			}
			open = &Span{Text: tok.Text, Start: start, End: end, Type: groupType}
		case open != nil && phraseContinuationTags[tok.Tag]:
			open.Text = text[open.Start:end]
			open.End = end
		default:
			if open != nil && strings.Count(open.Text, " ") >= 1 {
				spans = append(spans, *open)
			}
			open = nil
		}
	}
	if open != nil && strings.Count(open.Text, " ") >= 1 {
		spans = append(spans, *open)
	}
	return MergeOverlaps(spans), nil
}
