// Package vtt reads WebVTT files that carry word-level timing tags, the
// format yt-dlp emits for auto-generated captions, and converts them to the
// word timings the segmenter consumes.
package vtt

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/an-lee/enjoy-transcript/transcript"
)

// Regex to match timestamp lines like "00:00:00.160 --> 00:00:02.350"
var cueRegex = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}\.\d{3})\s+-->\s+(\d{2}:\d{2}:\d{2}\.\d{3})`)

// Word-level tags like "<00:00:00.520>" inside a cue payload.
var wordTagRegex = regexp.MustCompile(`<(\d{2}:\d{2}:\d{2}\.\d{3})>`)

// Styling tags like "<c>" and "</c>".
var styleTagRegex = regexp.MustCompile(`</?c[^>]*>`)

// ParseTime parses a "00:00:02.350" timestamp.
func ParseTime(timeStr string) (time.Duration, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time format: %s", timeStr)
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	secondsParts := strings.Split(parts[2], ".")
	seconds, _ := strconv.Atoi(secondsParts[0])
	milliseconds := 0
	if len(secondsParts) > 1 {
		// Pad or truncate to 3 digits
		msStr := secondsParts[1]
		if len(msStr) > 3 {
			msStr = msStr[:3]
		} else {
			for len(msStr) < 3 {
				msStr += "0"
			}
		}
		milliseconds, _ = strconv.Atoi(msStr)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(milliseconds)*time.Millisecond, nil
}

// ParseWords reads a word-tagged VTT file and returns one timing per word.
// Cues without word tags contribute nothing; duplicate rollup lines (cues
// re-stating the previous cue's text without tags) are skipped the same way.
func ParseWords(vttPath string) ([]transcript.WordTiming, error) {
	file, err := os.Open(vttPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var timings []transcript.WordTiming
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		matches := cueRegex.FindStringSubmatch(line)
		if len(matches) < 3 {
			continue
		}
		cueStart, err1 := ParseTime(matches[1])
		cueEnd, err2 := ParseTime(matches[2])
		if err1 != nil || err2 != nil {
			continue
		}

		for scanner.Scan() {
			payload := strings.TrimSpace(scanner.Text())
			if payload == "" {
				break
			}
			timings = append(timings, parseCueWords(payload, cueStart, cueEnd)...)
		}
	}

	return timings, scanner.Err()
}

// parseCueWords splits a cue payload on its word tags. Each chunk of text
// runs from the preceding tag (or the cue start) to the following tag (or the
// cue end).
func parseCueWords(payload string, cueStart, cueEnd time.Duration) []transcript.WordTiming {
	payload = styleTagRegex.ReplaceAllString(payload, "")

	tags := wordTagRegex.FindAllStringSubmatchIndex(payload, -1)
	if len(tags) == 0 {
		return nil
	}

	var timings []transcript.WordTiming
	prevEnd := 0
	prevTime := cueStart
	for _, tag := range tags {
		ts, err := ParseTime(payload[tag[2]:tag[3]])
		if err != nil {
			continue
		}
		timings = append(timings, wordsBetween(payload[prevEnd:tag[0]], prevTime, ts)...)
		prevEnd = tag[1]
		prevTime = ts
	}
	timings = append(timings, wordsBetween(payload[prevEnd:], prevTime, cueEnd)...)
	return timings
}

// wordsBetween splits a text chunk into words sharing the chunk's time range.
// Most chunks hold exactly one word; multi-word chunks divide the range
// evenly.
func wordsBetween(chunk string, start, end time.Duration) []transcript.WordTiming {
	fields := strings.Fields(chunk)
	if len(fields) == 0 {
		return nil
	}
	if end < start {
		end = start
	}

	step := (end - start) / time.Duration(len(fields))
	timings := make([]transcript.WordTiming, len(fields))
	for i, f := range fields {
		ws := start + step*time.Duration(i)
		we := ws + step
		if i == len(fields)-1 {
			we = end
		}
		timings[i] = transcript.WordTiming{
			Text:      f,
			StartTime: ws.Seconds(),
			EndTime:   we.Seconds(),
		}
	}
	return timings
}
