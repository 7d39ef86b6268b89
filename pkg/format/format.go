// Package format renders an annotated Segment sequence into one of six
// textual output shapes. Each shape is one deterministic, side-effect
// free function selected by the configuration's format value; rendering
// never fails for a well-formed sequence.
package format

import (
	"fmt"
	"strings"

	"github.com/zho-tools/zhoanno/pkg/annotate"
)

// Render maps a Segment sequence to its textual representation. An
// unsupported format value is a configuration error; everything else
// always succeeds.
func Render(segments []annotate.Segment, cfg annotate.Config) (string, error) {
	switch cfg.OutputFormat {
	case annotate.FormatInline:
		return renderInline(segments, cfg), nil
	case annotate.FormatStructured:
		return renderStructured(segments, cfg), nil
	case annotate.FormatBrackets:
		return renderBrackets(segments, cfg), nil
	case annotate.FormatRuby:
		return renderRuby(segments, cfg), nil
	case annotate.FormatTable:
		return renderTable(segments, cfg), nil
	case annotate.FormatRows:
		return renderRows(segments, cfg), nil
	}
	return "", fmt.Errorf("format: unsupported output format %q", cfg.OutputFormat)
}

// primaryReading returns the reading shown for a segment under the
// requested style. For StyleBoth the pinyin leads; inline additionally
// appends the zhuyin itself.
func primaryReading(seg annotate.Segment, style annotate.Style) string {
	if style == annotate.StyleZhuyin {
		return seg.Zhuyin
	}
	return seg.Pinyin
}

// altReading mirrors primaryReading for alternatives.
func altReading(alt annotate.Alternative, style annotate.Style) string {
	if style == annotate.StyleZhuyin {
		return alt.Zhuyin
	}
	return alt.Pinyin
}

// compactReading removes the syllable separators of a multi-character
// reading for the dense shapes (inline, rows).
func compactReading(seg annotate.Segment, style annotate.Style) string {
	reading := primaryReading(seg, style)
	if seg.End-seg.Start > 1 {
		return strings.ReplaceAll(reading, " ", "")
	}
	return reading
}

func renderInline(segments []annotate.Segment, cfg annotate.Config) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
		if !seg.Annotated || primaryReading(seg, cfg.Style) == "" {
			continue
		}

		b.WriteByte('(')
		b.WriteString(compactReading(seg, cfg.Style))
		if cfg.Style == annotate.StyleBoth && seg.Zhuyin != "" {
			b.WriteByte('/')
			b.WriteString(seg.Zhuyin)
		}
		if cfg.ShowConfidence {
			fmt.Fprintf(&b, ":%.2f", seg.Confidence)
		}
		if cfg.ShowAlternatives && len(seg.Alternatives) > 0 {
			for _, alt := range seg.Alternatives {
				b.WriteByte('|')
				b.WriteString(altReading(alt, cfg.Style))
			}
		}
		b.WriteByte(')')
	}
	return b.String()
}

func renderBrackets(segments []annotate.Segment, cfg annotate.Config) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
		if reading := primaryReading(seg, cfg.Style); seg.Annotated && reading != "" {
			b.WriteByte('[')
			b.WriteString(reading)
			b.WriteByte(']')
		}
	}
	return b.String()
}

func renderRuby(segments []annotate.Segment, cfg annotate.Config) string {
	var b strings.Builder
	for _, seg := range segments {
		reading := primaryReading(seg, cfg.Style)
		if !seg.Annotated || reading == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString("<ruby>")
		b.WriteString(seg.Text)
		b.WriteString("<rt>")
		b.WriteString(reading)
		b.WriteString("</rt></ruby>")
	}
	return b.String()
}

func renderTable(segments []annotate.Segment, cfg annotate.Config) string {
	headers := []string{"Position", "Text"}
	if cfg.Style != annotate.StyleZhuyin {
		headers = append(headers, "Pinyin")
	}
	if cfg.Style != annotate.StylePinyin {
		headers = append(headers, "Zhuyin")
	}
	if cfg.ShowConfidence {
		headers = append(headers, "Confidence")
	}
	if cfg.ShowAlternatives {
		headers = append(headers, "Alternatives")
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, "\t"))
	b.WriteByte('\n')

	for _, seg := range segments {
		if !seg.Chinese {
			continue
		}
		cols := []string{fmt.Sprintf("%d", seg.Start), seg.Text}
		if cfg.Style != annotate.StyleZhuyin {
			cols = append(cols, orDash(seg.Pinyin))
		}
		if cfg.Style != annotate.StylePinyin {
			cols = append(cols, orDash(seg.Zhuyin))
		}
		if cfg.ShowConfidence {
			cols = append(cols, fmt.Sprintf("%.3f", seg.Confidence))
		}
		if cfg.ShowAlternatives {
			alts := make([]string, 0, len(seg.Alternatives))
			for _, alt := range seg.Alternatives {
				alts = append(alts, altReading(alt, cfg.Style))
			}
			cols = append(cols, orDash(strings.Join(alts, "|")))
		}
		b.WriteString(strings.Join(cols, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func renderRows(segments []annotate.Segment, cfg annotate.Config) string {
	texts := make([]string, 0, len(segments))
	readings := make([]string, 0, len(segments))

	for _, seg := range segments {
		if seg.Annotated && primaryReading(seg, cfg.Style) != "" {
			texts = append(texts, seg.Text)
			readings = append(readings, compactReading(seg, cfg.Style))
			continue
		}
		// Keep non-annotated visible text so the upper line still reads
		// as the original sentence; pure whitespace is dropped.
		if strings.TrimSpace(seg.Text) != "" {
			texts = append(texts, seg.Text)
			readings = append(readings, "")
		}
	}

	var textLine, readingLine strings.Builder
	for i := range texts {
		if i > 0 {
			textLine.WriteString("  ")
			readingLine.WriteString("  ")
		}
		tw := displayWidth(texts[i])
		rw := displayWidth(readings[i])
		col := tw
		if rw > col {
			col = rw
		}
		textLine.WriteString(texts[i])
		textLine.WriteString(strings.Repeat(" ", col-tw))
		readingLine.WriteString(readings[i])
		readingLine.WriteString(strings.Repeat(" ", col-rw))
	}

	top := strings.TrimRight(textLine.String(), " ")
	bottom := strings.TrimRight(readingLine.String(), " ")
	if top == "" && bottom == "" {
		return ""
	}
	return top + "\n" + bottom
}
