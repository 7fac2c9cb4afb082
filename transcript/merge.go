package transcript

// mergeShortSegments folds undersized segments into their right neighbor in a
// single left-to-right pass. A merged pair is skipped as a unit and never
// re-tested in the same pass; with the max-length guard in place the result
// is stable under a second pass.
func mergeShortSegments(segments []Segment, cfg Config) []Segment {
	if len(segments) < 2 {
		return segments
	}

	out := make([]Segment, 0, len(segments))
	for i := 0; i < len(segments); i++ {
		s := segments[i]
		if i < len(segments)-1 &&
			len(s.Words) < cfg.MinWordsPerSegment &&
			!standsAlone(s) &&
			len(s.Words)+len(segments[i+1].Words) <= cfg.MaxWordsPerSegment {
			merged := make([]Word, 0, len(s.Words)+len(segments[i+1].Words))
			merged = append(merged, s.Words...)
			merged = append(merged, segments[i+1].Words...)
			out = append(out, Segment{Words: merged})
			i++
			continue
		}
		out = append(out, s)
	}
	return out
}

// standsAlone protects single words with strong punctuation, e.g. "Yes!",
// from being merged into a neighbor.
func standsAlone(s Segment) bool {
	if len(s.Words) != 1 {
		return false
	}
	w := s.Words[0]
	return w.IsSentenceEnd || w.PunctuationWeight >= sentenceEnderWeight
}
