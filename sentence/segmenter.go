package sentence

import (
	"github.com/clipperhouse/uax29/sentences"
)

// Segmenter is the locale segmenter capability consumed by the Oracle. It
// reports the byte offset following each sentence in text. Implementations
// may include trailing whitespace in a sentence; the Oracle compensates.
type Segmenter interface {
	Boundaries(text string) ([]int, error)
}

// UAX29Segmenter segments text by Unicode UAX #29 sentence rules. It is the
// default capability and needs no per-locale data.
type UAX29Segmenter struct{}

func (UAX29Segmenter) Boundaries(text string) ([]int, error) {
	seg := sentences.NewSegmenter([]byte(text))

	var offsets []int
	pos := 0
	for seg.Next() {
		pos += len(seg.Bytes())
		offsets = append(offsets, pos)
	}
	if err := seg.Err(); err != nil {
		return nil, err
	}
	return offsets, nil
}
