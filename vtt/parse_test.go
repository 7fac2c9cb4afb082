package vtt

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"00:00:02.350", 2*time.Second + 350*time.Millisecond},
		{"00:01:00.000", time.Minute},
		{"01:02:03.5", time.Hour + 2*time.Minute + 3*time.Second + 500*time.Millisecond},
	}
	for _, c := range cases {
		got, err := ParseTime(c.in)
		if err != nil {
			t.Fatalf("ParseTime(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseTime("12:34"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.160 --> 00:00:02.350
Hello<00:00:00.520><c> world</c><00:00:00.880><c> how</c>

00:00:02.350 --> 00:00:04.000
are<00:00:02.900><c> you</c>
`

func TestParseWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.en.vtt")
	if err := os.WriteFile(path, []byte(sampleVTT), 0644); err != nil {
		t.Fatal(err)
	}

	timings, err := ParseWords(path)
	if err != nil {
		t.Fatalf("ParseWords failed: %v", err)
	}

	wantTexts := []string{"Hello", "world", "how", "are", "you"}
	if len(timings) != len(wantTexts) {
		t.Fatalf("got %d words, want %d", len(timings), len(wantTexts))
	}
	for i, want := range wantTexts {
		if timings[i].Text != want {
			t.Errorf("word %d: got %q, want %q", i, timings[i].Text, want)
		}
	}

	approx := func(got, want float64) bool { return math.Abs(got-want) < 0.001 }

	if !approx(timings[0].StartTime, 0.160) || !approx(timings[0].EndTime, 0.520) {
		t.Errorf("first word timing: got %v-%v", timings[0].StartTime, timings[0].EndTime)
	}
	if !approx(timings[1].StartTime, 0.520) || !approx(timings[1].EndTime, 0.880) {
		t.Errorf("second word timing: got %v-%v", timings[1].StartTime, timings[1].EndTime)
	}
	if !approx(timings[2].EndTime, 2.350) {
		t.Errorf("last word of cue should end at the cue end, got %v", timings[2].EndTime)
	}

	// Temporal order across cues.
	for i := 1; i < len(timings); i++ {
		if timings[i].StartTime < timings[i-1].StartTime {
			t.Errorf("word %d starts before word %d", i, i-1)
		}
	}
}

func TestParseWordsIgnoresUntaggedCues(t *testing.T) {
	const plain = `WEBVTT

00:00:00.000 --> 00:00:02.000
no word tags in here
`
	path := filepath.Join(t.TempDir(), "plain.vtt")
	if err := os.WriteFile(path, []byte(plain), 0644); err != nil {
		t.Fatal(err)
	}

	timings, err := ParseWords(path)
	if err != nil {
		t.Fatalf("ParseWords failed: %v", err)
	}
	if len(timings) != 0 {
		t.Errorf("got %d words from an untagged cue, want 0", len(timings))
	}
}

func TestParseWordsMissingFile(t *testing.T) {
	if _, err := ParseWords("/nonexistent/file.vtt"); err == nil {
		t.Error("expected error for missing file")
	}
}
