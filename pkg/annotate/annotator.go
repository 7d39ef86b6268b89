// Package annotate implements the annotation engine: it segments
// normalized Chinese text by greedy maximum match against a
// pronunciation dictionary, disambiguates competing readings with a
// confidence score, and returns an ordered Segment sequence that fully
// partitions the input.
package annotate

import (
	"errors"

	"github.com/zho-tools/zhoanno/pkg/zhdict"
	"github.com/zho-tools/zhoanno/pkg/zhnorm"
)

// ErrNoDictionary is returned when Annotate is called before a
// dictionary store has been attached. Loading must complete and be
// error-checked before any annotation call.
var ErrNoDictionary = errors.New("annotate: no dictionary store loaded")

// Annotator is the engine entry point. It is bound to one immutable
// dictionary store and holds no per-call state, so a single Annotator
// is safe to share across concurrently issued calls.
type Annotator struct {
	store *zhdict.Store
}

// NewAnnotator binds an engine to a loaded store.
func NewAnnotator(store *zhdict.Store) *Annotator {
	return &Annotator{store: store}
}

// Annotate normalizes text and converts it into a Segment sequence.
//
// The scan is a left-to-right greedy maximum match: at each position
// the longest dictionary-backed span wins, tried from the store's
// maximum key length down to a single character. Positions where no
// length matches, and all non-Chinese runes, are emitted as
// single-rune pass-through segments and never merged with adjacent
// Chinese spans. Choosing the longest span is purely length-based;
// picking among that span's readings is the picker's job.
//
// Empty input yields an empty, non-nil sequence. The call never panics
// on well-typed UTF-8 and never fails after the configuration check.
func (a *Annotator) Annotate(text string, cfg Config) ([]Segment, error) {
	if a == nil || a.store == nil {
		return nil, ErrNoDictionary
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runes := []rune(zhnorm.Normalize(text))
	segments := make([]Segment, 0, len(runes))
	if len(runes) == 0 {
		return segments, nil
	}

	p := picker{
		preferTraditional: cfg.UseTraditional || a.store.DetectTraditional(string(runes)),
		threshold:         cfg.threshold(),
		style:             cfg.Style,
		showAlternatives:  cfg.ShowAlternatives,
	}

	maxKeyLen := a.store.MaxKeyLen()
	i := 0
	for i < len(runes) {
		if !zhnorm.IsChinese(runes[i]) {
			segments = append(segments, passThrough(runes, i, false))
			i++
			continue
		}

		lmax := maxKeyLen
		if remaining := len(runes) - i; lmax > remaining {
			lmax = remaining
		}

		matched := false
		for l := lmax; l > 0; l-- {
			key := string(runes[i : i+l])
			cands := a.store.Candidates(key)
			if len(cands) == 0 {
				continue
			}
			seg := p.pick(cands)
			seg.Start = i
			seg.End = i + l
			seg.Text = key
			seg.Chinese = true
			segments = append(segments, seg)
			i += l
			matched = true
			break
		}
		if !matched {
			segments = append(segments, passThrough(runes, i, true))
			i++
		}
	}

	return segments, nil
}

// passThrough builds the single-rune unannotated segment emitted for
// unmatched positions.
func passThrough(runes []rune, i int, chinese bool) Segment {
	return Segment{
		Start:   i,
		End:     i + 1,
		Text:    string(runes[i]),
		Chinese: chinese,
	}
}
