package transcript

// Config carries the segmentation bounds and pause thresholds. The scoring
// weights themselves are fixed (see segment.go); these are the knobs that
// vary by display context.
type Config struct {
	MinWordsPerSegment       int
	PreferredWordsPerSegment int
	MaxWordsPerSegment       int

	// PauseThreshold and LongPauseThreshold are inter-word gaps in ms that
	// count as a pause and a long pause respectively.
	PauseThreshold     int
	LongPauseThreshold int
}

// DefaultConfig returns the bounds used by the reading practice view.
func DefaultConfig() Config {
	return Config{
		MinWordsPerSegment:       2,
		PreferredWordsPerSegment: 8,
		MaxWordsPerSegment:       14,
		PauseThreshold:           300,
		LongPauseThreshold:       800,
	}
}

// sentenceEnderWeight is the weight of sentence-ending punctuation in
// punctuationWeights; anything at or above it counts as a strong mark.
const sentenceEnderWeight = 10

// punctuationWeights maps a trailing punctuation character to its break
// strength, strong to weak. Unlisted characters contribute nothing.
var punctuationWeights = map[string]int{
	".": 10, "!": 10, "?": 10, "。": 10, "！": 10, "？": 10, "…": 10,
	";": 6, "；": 6,
	",": 5, "，": 5,
	":": 4, "：": 4,
	"—": 3,
	"-": 2,
}

// sentenceEnders are the punctuation characters that may terminate a
// sentence, Latin and CJK.
var sentenceEnders = map[string]bool{
	".": true, "!": true, "?": true,
	"。": true, "！": true, "？": true, "…": true,
}

// trailingPunctuation is the character set stripped from a raw word before
// any text lookup.
const trailingPunctuation = ".,!?;:…。！？，；：、"

// abbreviations is the fixed manual list, lowercase with trailing periods
// stripped. Checked before any external abbreviation classifier.
var abbreviations = map[string]bool{
	// honorifics
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "esq": true,
	// time and era markers
	"am": true, "pm": true, "bc": true, "ad": true, "bce": true, "ce": true,
	// places
	"us": true, "usa": true, "uk": true,
	// common Latin and English abbreviations
	"etc": true, "vs": true, "e.g": true, "i.e": true,
	"inc": true, "ltd": true, "corp": true, "co": true,
	// street types
	"st": true, "ave": true, "blvd": true, "rd": true,
	// academic degrees
	"ph.d": true, "m.d": true, "b.a": true, "m.a": true,
	// units
	"ft": true, "in": true, "lb": true, "oz": true,
	"kg": true, "g": true, "mg": true, "ml": true, "l": true,
	// generic
	"ca": true, "approx": true, "max": true, "min": true,
}
