// The command "zhoanno" annotates Chinese text with phonetic readings.
//
// It loads a packaged pronunciation dictionary (JSON, gob or text
// table), runs the annotation engine over text supplied inline, from a
// file or from stdin, and prints the rendered result on stdout.
//
// Example usages:
//
//	# Inline text, inline format:
//	zhoanno -dict dictionary.json -text "你好世界"
//
//	# A file, two-row aligned output with zhuyin:
//	zhoanno -dict dictionary.json -file input.txt -format rows -style zhuyin
//
//	# Stdin, structured JSON with confidences and alternatives:
//	cat input.txt | zhoanno -dict dictionary.json -format structured \
//	    -show-confidence -show-alternatives
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	carrier "github.com/benoit-pereira-da-silva/textual/pkg/textual"

	"github.com/zho-tools/zhoanno/pkg/annotate"
	"github.com/zho-tools/zhoanno/pkg/format"
	"github.com/zho-tools/zhoanno/pkg/zhdict"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("zhoanno: ")

	var (
		text        = flag.String("text", "", "Chinese text to annotate")
		file        = flag.String("file", "", "file containing Chinese text to annotate")
		dictPath    = flag.String("dict", "dictionary.json", "path to the packaged dictionary")
		formatName  = flag.String("format", "inline", "output format: inline, structured, brackets, ruby, table, rows")
		styleName   = flag.String("style", "pinyin", "annotation style: pinyin, zhuyin, both")
		confidence  = flag.Float64("confidence", 0.3, "minimum confidence threshold (0.0-1.0)")
		showAlts    = flag.Bool("show-alternatives", false, "show alternative pronunciations")
		showConf    = flag.Bool("show-confidence", false, "show confidence scores")
		traditional = flag.Bool("traditional", false, "prefer traditional Chinese readings")
		sandhi      = flag.Bool("sandhi", false, "apply Mandarin tone sandhi to pinyin readings")
		stats       = flag.Bool("stats", false, "print a summary block on stderr")
	)
	flag.Parse()

	cfg := annotate.Config{
		OutputFormat:        annotate.OutputFormat(*formatName),
		Style:               annotate.Style(*styleName),
		ConfidenceThreshold: *confidence,
		ShowAlternatives:    *showAlts,
		ShowConfidence:      *showConf,
		UseTraditional:      *traditional,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	input, err := readInput(*text, *file)
	if err != nil {
		log.Fatal(err)
	}
	if strings.TrimSpace(input) == "" {
		log.Fatal("no input text provided (use -text, -file or stdin)")
	}

	store, err := zhdict.LoadFiles(*dictPath)
	if err != nil {
		log.Fatalf("load dictionary: %v", err)
	}

	annotator := annotate.NewAnnotator(store)
	segments, err := annotator.Annotate(input, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *sandhi {
		segments = annotate.NewToneSandhi[carrier.Result]().Apply(segments)
	}

	out, err := format.Render(segments, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)

	if *stats {
		printStats(store, segments)
	}
}

// readInput resolves the input text: -text wins, then -file, then stdin.
func readInput(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printStats(store *zhdict.Store, segments []annotate.Segment) {
	chinese, annotated := 0, 0
	confidenceSum := 0.0
	for _, seg := range segments {
		if !seg.Chinese {
			continue
		}
		chinese++
		confidenceSum += seg.Confidence
		if seg.Annotated {
			annotated++
		}
	}
	avg := 0.0
	if chinese > 0 {
		avg = confidenceSum / float64(chinese)
	}

	log.Printf("dictionary entries: %d", store.EntryCount())
	log.Printf("segments: %d total, %d chinese, %d annotated", len(segments), chinese, annotated)
	log.Printf("average confidence: %.2f", avg)
}
