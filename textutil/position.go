// Package textutil aligns provider word tokens back to the original source
// text. TTS and ASR providers often strip trailing punctuation from the words
// they report, so lookups run on a cleaned word and recover punctuation from
// the source text separately.
package textutil

import (
	"regexp"
	"unicode"
)

// NotFound is returned by WordPosition when the requested occurrence of a
// word does not exist in the text.
const NotFound = -1

// WordPosition returns the byte offset of the occurrence-th whole-word,
// case-insensitive match of word in text, or NotFound. occurrence is
// zero-based. Regex metacharacters in word are escaped before matching.
func WordPosition(text, word string, occurrence int) int {
	if text == "" || word == "" || occurrence < 0 {
		return NotFound
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return NotFound
	}

	matches := re.FindAllStringIndex(text, occurrence+1)
	if len(matches) <= occurrence {
		return NotFound
	}
	return matches[occurrence][0]
}

// PunctuationAfterWord finds the occurrence-th match of word in text and
// scans the characters immediately following it, skipping whitespace, for the
// first character that is neither a word character nor whitespace. It returns
// that character, or "" when the next non-space character already belongs to
// the following word or the occurrence does not exist.
func PunctuationAfterWord(text, word string, occurrence int) string {
	pos := WordPosition(text, word, occurrence)
	if pos == NotFound {
		return ""
	}

	for _, r := range text[pos+len(word):] {
		switch {
		case unicode.IsSpace(r):
			continue
		case isWordRune(r):
			return ""
		default:
			return string(r)
		}
	}
	return ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
