package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/zho-tools/zhoanno/pkg/annotate"
)

func sampleSegments() []annotate.Segment {
	return []annotate.Segment{
		{
			Start: 0, End: 2, Text: "你好",
			Pinyin: "nǐ hǎo", Zhuyin: "ㄋㄧˇ ㄏㄠˇ",
			Confidence: 1, Chinese: true, Annotated: true,
		},
		{Start: 2, End: 3, Text: "，"},
		{
			Start: 3, End: 5, Text: "世界",
			Pinyin: "shì jiè", Zhuyin: "ㄕˋ ㄐㄧㄝˋ",
			Confidence: 0.9, Chinese: true, Annotated: true,
		},
	}
}

func render(t *testing.T, segments []annotate.Segment, cfg annotate.Config) string {
	t.Helper()
	got, err := Render(segments, cfg)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}
	return got
}

func TestRenderUnknownFormat(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = "xml"
	if _, err := Render(sampleSegments(), cfg); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderInline(t *testing.T) {
	cfg := annotate.DefaultConfig()
	want := "你好(nǐhǎo)，世界(shìjiè)"
	if got := render(t, sampleSegments(), cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderInlineWithFlags(t *testing.T) {
	segments := []annotate.Segment{{
		Start: 0, End: 1, Text: "了",
		Pinyin: "le", Confidence: 0.75, Chinese: true, Annotated: true,
		Alternatives: []annotate.Alternative{{Pinyin: "liǎo", Score: 0.25}},
	}}
	cfg := annotate.DefaultConfig()
	cfg.ShowConfidence = true
	cfg.ShowAlternatives = true

	want := "了(le:0.75|liǎo)"
	if got := render(t, segments, cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderInlineBothStyle(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.Style = annotate.StyleBoth
	got := render(t, sampleSegments()[:1], cfg)
	want := "你好(nǐhǎo/ㄋㄧˇ ㄏㄠˇ)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderBrackets(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatBrackets
	want := "你好[nǐ hǎo]，世界[shì jiè]"
	if got := render(t, sampleSegments(), cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderBracketsPerCharacter(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatBrackets
	segments := []annotate.Segment{
		{Start: 0, End: 1, Text: "你", Pinyin: "nǐ", Chinese: true, Annotated: true},
		{Start: 1, End: 2, Text: "好", Pinyin: "hǎo", Chinese: true, Annotated: true},
	}
	want := "你[nǐ]好[hǎo]"
	if got := render(t, segments, cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderBracketsZhuyin(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatBrackets
	cfg.Style = annotate.StyleZhuyin
	segments := sampleSegments()
	// Styled calls carry only the requested reading.
	for i := range segments {
		segments[i].Pinyin = ""
	}
	want := "你好[ㄋㄧˇ ㄏㄠˇ]，世界[ㄕˋ ㄐㄧㄝˋ]"
	if got := render(t, segments, cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRuby(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatRuby
	want := "<ruby>你好<rt>nǐ hǎo</rt></ruby>，<ruby>世界<rt>shì jiè</rt></ruby>"
	if got := render(t, sampleSegments(), cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTable(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatTable
	cfg.ShowConfidence = true

	got := render(t, sampleSegments(), cfg)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "Position\tText\tPinyin\tConfidence" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "0\t你好\tnǐ hǎo\t1.000" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[2] != "3\t世界\tshì jiè\t0.900" {
		t.Errorf("unexpected second row %q", lines[2])
	}
}

func TestRenderTableEmptyInput(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatTable
	want := "Position\tText\tPinyin\n"
	if got := render(t, nil, cfg); got != want {
		t.Errorf("got %q, want header only %q", got, want)
	}
}

// TestRenderRows checks the column contract: every text cell is padded
// to the wider of the character and reading display widths, with
// East Asian characters counted as two cells.
func TestRenderRows(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatRows

	got := render(t, sampleSegments(), cfg)
	// 你好 is 4 cells wide under nǐhǎo (5); the fullwidth , (2) sits
	// over an empty reading padded to 2; 世界 (4) under shìjiè (6).
	want := "你好   ，  世界\nnǐhǎo      shìjiè"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderRowsWhitespaceDropped(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatRows

	segments := []annotate.Segment{
		{Start: 0, End: 1, Text: "你", Pinyin: "nǐ", Chinese: true, Annotated: true},
		{Start: 1, End: 2, Text: " "},
		{Start: 2, End: 3, Text: "好", Pinyin: "hǎo", Chinese: true, Annotated: true},
	}
	want := "你  好\nnǐ  hǎo"
	if got := render(t, segments, cfg); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRowsEmpty(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatRows
	if got := render(t, nil, cfg); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestRenderStructured(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatStructured
	cfg.ShowConfidence = true

	var out struct {
		Segments []struct {
			Text       string   `json:"text"`
			Pinyin     string   `json:"pinyin"`
			Confidence *float64 `json:"confidence"`
			Annotated  bool     `json:"annotated"`
			Chinese    bool     `json:"chinese"`
			Start      int      `json:"start"`
			End        int      `json:"end"`
		} `json:"segments"`
		Metadata struct {
			TotalSegments     int     `json:"total_segments"`
			ChineseSegments   int     `json:"chinese_segments"`
			AverageConfidence float64 `json:"average_confidence"`
			AnnotationStyle   string  `json:"annotation_style"`
		} `json:"metadata"`
	}
	got := render(t, sampleSegments(), cfg)
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("structured output is not valid JSON: %s\n%s", err, got)
	}

	if len(out.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(out.Segments))
	}
	first := out.Segments[0]
	if first.Text != "你好" || first.Pinyin != "nǐ hǎo" || !first.Annotated || !first.Chinese {
		t.Errorf("unexpected first segment: %+v", first)
	}
	if first.Start != 0 || first.End != 2 {
		t.Errorf("unexpected first span: %+v", first)
	}
	if first.Confidence == nil || *first.Confidence != 1 {
		t.Errorf("expected confidence 1, got %+v", first.Confidence)
	}

	md := out.Metadata
	if md.TotalSegments != 3 || md.ChineseSegments != 2 || md.AnnotationStyle != "pinyin" {
		t.Errorf("unexpected metadata: %+v", md)
	}
	if md.AverageConfidence != 0.95 {
		t.Errorf("average confidence = %v, want 0.95", md.AverageConfidence)
	}
}

func TestRenderStructuredOmitsConfidence(t *testing.T) {
	cfg := annotate.DefaultConfig()
	cfg.OutputFormat = annotate.FormatStructured
	got := render(t, sampleSegments(), cfg)
	if strings.Contains(got, "\"confidence\"") {
		t.Errorf("confidence must be omitted without the flag:\n%s", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	for s, want := range map[string]int{
		"":    0,
		"abc": 3,
		"你好":  4,
		"ㄋㄧˇ": 5, // bopomofo letters are wide, the tone mark is not
		"nǐ":  2,
		"，":   2,
		",":   1,
	} {
		if got := displayWidth(s); got != want {
			t.Errorf("displayWidth(%q) = %d, want %d", s, got, want)
		}
	}
}
