package annotate

// Alternative is a competing reading kept alongside the primary one,
// with its own normalized weight share.
type Alternative struct {
	Pinyin string  `json:"pinyin,omitempty"`
	Zhuyin string  `json:"zhuyin,omitempty"`
	Score  float64 `json:"score"`
}

// Segment is one contiguous span of the annotated text. The Segment
// sequence returned by Annotate fully partitions the normalized input:
// no gaps, no overlaps, concatenated texts equal the whole string.
type Segment struct {
	// Start and End are rune offsets in the normalized text; End is
	// exclusive. The normalizer preserves rune counts, so the offsets
	// are rune-aligned with the original input as well.
	Start int `json:"start"`
	End   int `json:"end"`

	Text string `json:"text"`

	// Pinyin and Zhuyin hold the primary reading per the requested
	// style. Both are empty on unannotated segments.
	Pinyin string `json:"pinyin,omitempty"`
	Zhuyin string `json:"zhuyin,omitempty"`

	// Confidence measures how dominant the primary reading is versus
	// competing readings of the same key, in [0,1]. It is not a
	// dictionary-quality score.
	Confidence float64 `json:"confidence"`

	Alternatives []Alternative `json:"alternatives,omitempty"`

	// Annotated is false for pass-through spans (no dictionary match)
	// and for matches whose confidence fell below the threshold.
	Annotated bool `json:"annotated"`

	// Chinese marks spans made of Han ideographs. Formatters use it to
	// distinguish unmatched Chinese characters from punctuation, Latin
	// letters and digits.
	Chinese bool `json:"chinese"`
}
