package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(texts ...string) Segment {
	words := make([]Word, len(texts))
	for i, txt := range texts {
		words[i] = Word{Text: txt}
	}
	return Segment{Words: words}
}

func TestMergeShortSegmentIntoNext(t *testing.T) {
	segments := []Segment{
		seg("oh"),
		seg("I", "see", "what", "you", "mean"),
	}
	merged := mergeShortSegments(segments, DefaultConfig())
	require.Len(t, merged, 1)
	assert.Equal(t, "oh I see what you mean", merged[0].Text())
}

func TestMergeRespectsMaxLength(t *testing.T) {
	big := seg("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n")
	segments := []Segment{seg("oh"), big}

	merged := mergeShortSegments(segments, DefaultConfig())
	require.Len(t, merged, 2, "1 + 14 would exceed the max")
}

func TestMergeProtectsStrongSingleWord(t *testing.T) {
	yes := seg("Yes!")
	yes.Words[0].PunctuationAfter = "!"
	yes.Words[0].PunctuationWeight = 10
	yes.Words[0].IsSentenceEnd = true

	segments := []Segment{yes, seg("that", "is", "fine")}
	merged := mergeShortSegments(segments, DefaultConfig())
	require.Len(t, merged, 2)
	assert.Equal(t, "Yes!", merged[0].Text())
}

func TestMergeLastSegmentNeverMergesForward(t *testing.T) {
	segments := []Segment{
		seg("we", "said", "that"),
		seg("already"),
	}
	merged := mergeShortSegments(segments, DefaultConfig())
	require.Len(t, merged, 2, "the last segment has no right neighbor")
}

func TestMergeSinglePassSkipsMergedPair(t *testing.T) {
	segments := []Segment{
		seg("a"),
		seg("b"),
		seg("c"),
		seg("tail", "words", "here"),
	}
	merged := mergeShortSegments(segments, DefaultConfig())
	// a+b merge and are skipped as a unit; c merges with the tail.
	require.Len(t, merged, 2)
	assert.Equal(t, "a b", merged[0].Text())
	assert.Equal(t, "c tail words here", merged[1].Text())
}

func TestMergeIdempotent(t *testing.T) {
	segments := []Segment{
		seg("oh"),
		seg("right", "I", "see"),
		seg("well"),
		seg("that", "settles", "it", "then"),
		seg("done"),
	}
	cfg := DefaultConfig()
	once := mergeShortSegments(segments, cfg)
	twice := mergeShortSegments(once, cfg)
	assert.Equal(t, once, twice)
}

func TestMergeEmptyAndSingle(t *testing.T) {
	assert.Empty(t, mergeShortSegments(nil, DefaultConfig()))
	one := []Segment{seg("only")}
	assert.Equal(t, one, mergeShortSegments(one, DefaultConfig()))
}
