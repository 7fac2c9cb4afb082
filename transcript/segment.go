package transcript

// Scoring constants for the break decision. Punctuation alone misfires on
// abbreviations and decimals, pauses alone misfire on disfluencies, and word
// counts alone produce unnatural cuts, so every signal is additive and a
// confirmed sentence end dominates the rest.
const (
	sentenceEndScore  = 12
	longPauseScore    = 8
	pauseScore        = 4
	lengthScore       = 3
	breakThreshold    = 6
	shortSegmentFloor = 10

	// Forced-break candidate scoring.
	huntSentenceEndScore = 15
	huntPauseScore       = 3
	huntFitScore         = 2
	huntWindow           = 5
)

// segmentWords walks the enriched sequence once, appending each word to the
// current segment and deciding whether to break after it. Segments that reach
// the max length with words still remaining get a backward hunt for the best
// nearby cut.
func segmentWords(words []Word, cfg Config) []Segment {
	var segments []Segment
	var current []Word

	for i := range words {
		current = append(current, words[i])

		if shouldBreakAt(words, i, len(current), cfg) {
			segments = append(segments, Segment{Words: current})
			current = nil
			continue
		}

		if len(current) >= cfg.MaxWordsPerSegment && i < len(words)-1 {
			head, rest := forceSplit(current, cfg)
			segments = append(segments, Segment{Words: head})
			current = rest
		}
	}
	if len(current) > 0 {
		segments = append(segments, Segment{Words: current})
	}
	return segments
}

// shouldBreakAt decides whether to end the current segment after words[i],
// where count is the current segment's word count including words[i].
func shouldBreakAt(words []Word, i, count int, cfg Config) bool {
	w := words[i]
	if i == len(words)-1 {
		return true
	}

	// Single-word exclamations like "Why?" stand alone rather than being
	// absorbed into the next segment.
	if count == 1 && w.IsSentenceEnd {
		return true
	}
	if count <= 2 && w.IsSentenceEnd && w.GapAfter >= cfg.PauseThreshold {
		return true
	}

	score := 0
	if !w.IsAbbreviation {
		score += w.PunctuationWeight
	}
	if w.IsSentenceEnd {
		score += sentenceEndScore
	}
	if w.GapAfter >= cfg.LongPauseThreshold {
		score += longPauseScore
	} else if w.GapAfter >= cfg.PauseThreshold {
		score += pauseScore
	}
	if count >= cfg.PreferredWordsPerSegment {
		score += lengthScore
	}

	// A segment that is still too short only breaks on a sentence-end or
	// long-pause class signal, never on weak clause punctuation alone.
	if count < cfg.MinWordsPerSegment && score < shortSegmentFloor {
		return false
	}
	return score >= breakThreshold
}

// forceSplit cuts an oversized segment. It hunts backward through the last
// few words for the strongest break candidate, then falls back to any word
// past the preferred length with some break signal, then to a mechanical cut
// at the preferred length, and finally gives up and emits the segment whole.
func forceSplit(current []Word, cfg Config) (head, rest []Word) {
	n := len(current)
	window := huntWindow
	if window > n-1 {
		window = n - 1
	}

	best := -1
	bestScore := 0
	for k := n - 2; k >= n-1-window && k >= 0; k-- {
		w := current[k]
		if w.IsAbbreviation {
			continue
		}
		score := 0
		if w.IsSentenceEnd {
			score = huntSentenceEndScore
		} else {
			score = w.PunctuationWeight * 2
		}
		if w.GapAfter >= cfg.PauseThreshold {
			score += huntPauseScore
		}
		if k+1 >= cfg.MinWordsPerSegment && k+1 <= cfg.PreferredWordsPerSegment {
			score += huntFitScore
		}
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	if bestScore > 0 {
		return current[:best+1], current[best+1:]
	}

	// No scored candidate: take any break signal deep enough into the
	// segment, scanning from the end. Depth is the head's word count (k+1),
	// so the shortest cut accepted here keeps exactly the preferred length,
	// matching the mechanical cut below.
	for k := n - 2; k >= 0 && k+1 >= cfg.PreferredWordsPerSegment; k-- {
		w := current[k]
		if w.AtMeaningGroupBoundary || w.PunctuationWeight > 0 || w.GapAfter >= cfg.PauseThreshold {
			return current[:k+1], current[k+1:]
		}
	}

	if n >= cfg.PreferredWordsPerSegment+3 {
		return current[:cfg.PreferredWordsPerSegment], current[cfg.PreferredWordsPerSegment:]
	}
	return current, nil
}
