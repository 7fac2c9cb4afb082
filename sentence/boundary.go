// Package sentence answers "is there a sentence boundary at this position?"
// for the transcript enricher. A locale segmenter capability is consulted
// first; when it is missing or fails, a per-language punctuation regex takes
// over. Capability failures never propagate.
package sentence

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// baseLocales collapses regional variants the app commonly receives to their
// primary tag before any parsing is attempted.
var baseLocales = map[string]string{
	"en-us": "en", "en-gb": "en", "en-au": "en",
	"zh-cn": "zh", "zh-tw": "zh", "zh-hk": "zh",
	"ja-jp": "ja", "ko-kr": "ko",
	"fr-fr": "fr", "de-de": "de", "es-es": "es", "es-mx": "es",
	"pt-br": "pt", "pt-pt": "pt", "it-it": "it", "ru-ru": "ru",
}

// enderClasses holds the fallback sentence-ending character class per
// language. Unknown languages use the Latin set.
var enderClasses = map[string]*regexp.Regexp{
	"en": regexp.MustCompile(`[.!?]+`),
	"zh": regexp.MustCompile(`[。！？…]+`),
	"ja": regexp.MustCompile(`[。！？…．]+`),
	"ko": regexp.MustCompile(`[.!?。！？]+`),
}

var latinEnders = enderClasses["en"]

// Normalize reduces a BCP 47 language code to its base tag, defaulting to
// "en" for empty or unparseable codes.
func Normalize(code string) string {
	if code == "" {
		return "en"
	}
	if base, ok := baseLocales[strings.ToLower(code)]; ok {
		return base
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// Oracle detects sentence boundaries in a text. The zero value is not usable;
// construct with NewOracle.
type Oracle struct {
	seg Segmenter
}

// NewOracle returns an Oracle backed by seg. A nil seg selects the UAX #29
// segmenter.
func NewOracle(seg Segmenter) *Oracle {
	if seg == nil {
		seg = UAX29Segmenter{}
	}
	return &Oracle{seg: seg}
}

// Boundaries returns the byte offsets immediately after each sentence in
// text, trailing whitespace excluded, in ascending order.
func (o *Oracle) Boundaries(text, lang string) []int {
	offsets, err := o.segmentBoundaries(text)
	if err != nil {
		log.Warn().Err(err).Str("language", lang).Msg("sentence segmenter capability failed, using punctuation fallback")
		offsets = fallbackBoundaries(text, Normalize(lang))
	}

	trimmed := make([]int, 0, len(offsets))
	for _, off := range offsets {
		t := trimBoundary(text, off)
		if t > 0 && (len(trimmed) == 0 || trimmed[len(trimmed)-1] != t) {
			trimmed = append(trimmed, t)
		}
	}
	return trimmed
}

// BoundarySet returns Boundaries as a membership set. Offsets are registered
// both whitespace-trimmed and raw so a query just after a closing mark and a
// query after the following space both test true.
func (o *Oracle) BoundarySet(text, lang string) map[int]bool {
	set := make(map[int]bool)
	offsets, err := o.segmentBoundaries(text)
	if err != nil {
		log.Warn().Err(err).Str("language", lang).Msg("sentence segmenter capability failed, using punctuation fallback")
		offsets = fallbackBoundaries(text, Normalize(lang))
	}
	for _, off := range offsets {
		set[off] = true
		set[trimBoundary(text, off)] = true
	}
	delete(set, 0)
	return set
}

// IsBoundary reports whether a sentence boundary exists at byte position pos.
func (o *Oracle) IsBoundary(text string, pos int, lang string) bool {
	return o.BoundarySet(text, lang)[pos]
}

// Split returns the sentences of text, whitespace-trimmed, empty runs
// dropped. Derived from the same boundary positions as IsBoundary.
func (o *Oracle) Split(text, lang string) []string {
	var out []string
	prev := 0
	bounds := append(o.Boundaries(text, lang), len(text))
	for _, b := range bounds {
		if b <= prev {
			continue
		}
		s := strings.TrimSpace(text[prev:b])
		if s != "" {
			out = append(out, s)
		}
		prev = b
	}
	return out
}

// segmentBoundaries runs the capability, converting panics to errors so a
// misbehaving segmenter degrades to the regex fallback.
func (o *Oracle) segmentBoundaries(text string) (offsets []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &capabilityPanic{value: r}
		}
	}()
	return o.seg.Boundaries(text)
}

type capabilityPanic struct{ value any }

func (p *capabilityPanic) Error() string { return "segmenter panic" }

// fallbackBoundaries places a boundary immediately after each run of
// sentence-ending punctuation for the language.
func fallbackBoundaries(text, lang string) []int {
	re, ok := enderClasses[lang]
	if !ok {
		re = latinEnders
	}
	matches := re.FindAllStringIndex(text, -1)
	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		offsets = append(offsets, m[1])
	}
	return offsets
}

// trimBoundary moves a boundary offset left over any whitespace preceding it,
// so "Hello. World" reports 6, not 7.
func trimBoundary(text string, off int) int {
	for off > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:off])
		if !unicode.IsSpace(r) {
			break
		}
		off -= size
	}
	return off
}
