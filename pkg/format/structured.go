package format

import (
	"encoding/json"

	"github.com/zho-tools/zhoanno/pkg/annotate"
)

// Wire shapes for the structured output. Optional fields follow the
// request flags: confidence appears only when asked for, alternatives
// only when collected.
type structuredSegment struct {
	Text         string                 `json:"text"`
	Pinyin       string                 `json:"pinyin,omitempty"`
	Zhuyin       string                 `json:"zhuyin,omitempty"`
	Confidence   *float64               `json:"confidence,omitempty"`
	Alternatives []annotate.Alternative `json:"alternatives,omitempty"`
	Annotated    bool                   `json:"annotated"`
	Chinese      bool                   `json:"chinese"`
	Start        int                    `json:"start"`
	End          int                    `json:"end"`
}

type structuredMetadata struct {
	TotalSegments     int     `json:"total_segments"`
	ChineseSegments   int     `json:"chinese_segments"`
	AverageConfidence float64 `json:"average_confidence"`
	AnnotationStyle   string  `json:"annotation_style"`
}

type structuredOutput struct {
	Segments []structuredSegment `json:"segments"`
	Metadata structuredMetadata  `json:"metadata"`
}

func renderStructured(segments []annotate.Segment, cfg annotate.Config) string {
	out := structuredOutput{
		Segments: make([]structuredSegment, 0, len(segments)),
	}

	chinese := 0
	confidenceSum := 0.0
	for _, seg := range segments {
		ws := structuredSegment{
			Text:         seg.Text,
			Pinyin:       seg.Pinyin,
			Zhuyin:       seg.Zhuyin,
			Alternatives: seg.Alternatives,
			Annotated:    seg.Annotated,
			Chinese:      seg.Chinese,
			Start:        seg.Start,
			End:          seg.End,
		}
		if cfg.ShowConfidence {
			c := seg.Confidence
			ws.Confidence = &c
		}
		out.Segments = append(out.Segments, ws)

		if seg.Chinese {
			chinese++
			confidenceSum += seg.Confidence
		}
	}

	out.Metadata = structuredMetadata{
		TotalSegments:   len(segments),
		ChineseSegments: chinese,
		AnnotationStyle: string(cfg.Style),
	}
	if chinese > 0 {
		out.Metadata.AverageConfidence = confidenceSum / float64(chinese)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		// Marshalling plain structs of strings and numbers cannot fail;
		// keep the contract that formatting never errors.
		return "{}"
	}
	return string(data)
}
