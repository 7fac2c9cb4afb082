package sentence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize(""))
	assert.Equal(t, "en", Normalize("en-US"))
	assert.Equal(t, "en", Normalize("en"))
	assert.Equal(t, "zh", Normalize("zh-CN"))
	assert.Equal(t, "ja", Normalize("ja-JP"))
	assert.Equal(t, "fr", Normalize("fr-FR"))
	assert.Equal(t, "en", Normalize("not a tag"))
}

func TestBoundariesDefaultSegmenter(t *testing.T) {
	oracle := NewOracle(nil)
	text := "Hello world. How are you today?"

	bounds := oracle.Boundaries(text, "en")
	require.Equal(t, []int{12, 31}, bounds)

	assert.True(t, oracle.IsBoundary(text, 12, "en"), "position just after the period")
	assert.True(t, oracle.IsBoundary(text, 13, "en"), "position after the following space")
	assert.False(t, oracle.IsBoundary(text, 5, "en"))
	assert.False(t, oracle.IsBoundary(text, 0, "en"))
}

func TestSplit(t *testing.T) {
	oracle := NewOracle(nil)
	got := oracle.Split("Hello world. How are you today?", "en")
	assert.Equal(t, []string{"Hello world.", "How are you today?"}, got)
}

type failingSegmenter struct{}

func (failingSegmenter) Boundaries(string) ([]int, error) {
	return nil, errors.New("capability unavailable")
}

type panickingSegmenter struct{}

func (panickingSegmenter) Boundaries(string) ([]int, error) {
	panic("segmenter blew up")
}

func TestFallbackOnCapabilityError(t *testing.T) {
	oracle := NewOracle(failingSegmenter{})
	text := "你好。世界！"

	bounds := oracle.Boundaries(text, "zh-CN")
	assert.Equal(t, []int{9, 18}, bounds, "full-width enders at byte offsets")
}

func TestFallbackOnCapabilityPanic(t *testing.T) {
	oracle := NewOracle(panickingSegmenter{})

	assert.NotPanics(t, func() {
		bounds := oracle.Boundaries("One. Two.", "en")
		assert.Equal(t, []int{4, 9}, bounds)
	})
}

func TestFallbackUnknownLanguageUsesLatinSet(t *testing.T) {
	oracle := NewOracle(failingSegmenter{})
	bounds := oracle.Boundaries("Jambo dunia. Habari yako?", "sw")
	assert.Equal(t, []int{12, 25}, bounds)
}
