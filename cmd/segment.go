package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/an-lee/enjoy-transcript/nlp"
	"github.com/an-lee/enjoy-transcript/transcript"
	"github.com/an-lee/enjoy-transcript/vtt"
)

var (
	textFile    string
	timingsFile string
	language    string
	outputFile  string
	noNLP       bool
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Segment a transcript into display segments",
	Long: `Segment reads the source text and word-level timings, runs the
segmentation pipeline, and writes the resulting timeline as JSON.

Timings are a JSON array of {"text","start_time","end_time"} objects with
times in seconds, or a word-tagged WebVTT file (.vtt).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if textFile == "" || timingsFile == "" {
			return fmt.Errorf("both --text and --timings are required")
		}

		textBytes, err := os.ReadFile(textFile)
		if err != nil {
			return fmt.Errorf("reading text: %w", err)
		}

		var timings []transcript.WordTiming
		if strings.HasSuffix(strings.ToLower(timingsFile), ".vtt") {
			timings, err = vtt.ParseWords(timingsFile)
			if err != nil {
				return fmt.Errorf("parsing VTT: %w", err)
			}
		} else {
			raw, err := os.ReadFile(timingsFile)
			if err != nil {
				return fmt.Errorf("reading timings: %w", err)
			}
			if err := json.Unmarshal(raw, &timings); err != nil {
				return fmt.Errorf("parsing timings: %w", err)
			}
		}

		var opts []transcript.Option
		if !noNLP {
			detector := nlp.ProseDetector{}
			opts = append(opts,
				transcript.WithEntityDetector(detector),
				transcript.WithMeaningGroupDetector(detector),
			)
		}

		timeline := transcript.SegmentTranscript(string(textBytes), timings, language, opts...)

		out, err := json.MarshalIndent(timeline, "", "  ")
		if err != nil {
			return err
		}
		if outputFile == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(outputFile, out, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Printf("Wrote %d segments to %s\n", len(timeline), outputFile)
		return nil
	},
}

func init() {
	segmentCmd.Flags().StringVarP(&textFile, "text", "t", "", "Source text file (required)")
	segmentCmd.Flags().StringVarP(&timingsFile, "timings", "i", "", "Word timings: JSON array or word-tagged .vtt (required)")
	segmentCmd.Flags().StringVarP(&language, "language", "l", "en", "Language code of the text")
	segmentCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
	segmentCmd.Flags().BoolVar(&noNLP, "no-nlp", false, "Disable the entity/meaning-group detectors")
}
