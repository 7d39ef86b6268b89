package annotate

import (
	"testing"

	"github.com/zho-tools/zhoanno/pkg/zhdict"
)

// TestPickConfidenceShares checks that confidence and alternative
// scores are the weight shares of the considered candidate set.
func TestPickConfidenceShares(t *testing.T) {
	p := picker{threshold: 0, style: StylePinyin, showAlternatives: true}
	seg := p.pick([]zhdict.Candidate{
		{Pinyin: "de", Weight: 6},
		{Pinyin: "dí", Weight: 3},
		{Pinyin: "dì", Weight: 1},
	})

	if !seg.Annotated || seg.Pinyin != "de" {
		t.Fatalf("unexpected primary: %+v", seg)
	}
	if seg.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", seg.Confidence)
	}
	if len(seg.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %+v", seg.Alternatives)
	}
	if seg.Alternatives[0].Pinyin != "dí" || seg.Alternatives[0].Score != 0.3 {
		t.Errorf("unexpected first alternative: %+v", seg.Alternatives[0])
	}
	if seg.Alternatives[1].Pinyin != "dì" || seg.Alternatives[1].Score != 0.1 {
		t.Errorf("unexpected second alternative: %+v", seg.Alternatives[1])
	}
}

// TestPickZeroWeights falls back to an even split when every considered
// candidate has zero weight.
func TestPickZeroWeights(t *testing.T) {
	p := picker{threshold: 0, style: StylePinyin}
	seg := p.pick([]zhdict.Candidate{
		{Pinyin: "yī", Weight: 0},
		{Pinyin: "yí", Weight: 0},
	})
	if seg.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", seg.Confidence)
	}
	if !seg.Annotated || seg.Pinyin != "yī" {
		t.Errorf("zero-weight primary mishandled: %+v", seg)
	}
}

func TestPickSingleCandidate(t *testing.T) {
	p := picker{threshold: 1, style: StyleBoth, showAlternatives: true}
	seg := p.pick([]zhdict.Candidate{{Pinyin: "mā", Zhuyin: "ㄇㄚ", Weight: 2}})
	if seg.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", seg.Confidence)
	}
	if !seg.Annotated || seg.Pinyin != "mā" || seg.Zhuyin != "ㄇㄚ" {
		t.Errorf("single candidate mishandled: %+v", seg)
	}
	if seg.Alternatives != nil {
		t.Errorf("no alternatives expected, got %+v", seg.Alternatives)
	}
}

// TestReadingsForStyle checks the style projection leaves the unused
// reading empty so renderers never need to re-filter.
func TestReadingsForStyle(t *testing.T) {
	c := zhdict.Candidate{Pinyin: "hǎo", Zhuyin: "ㄏㄠˇ"}

	if p, z := readingsForStyle(c, StylePinyin); p != "hǎo" || z != "" {
		t.Errorf("pinyin style: got %q/%q", p, z)
	}
	if p, z := readingsForStyle(c, StyleZhuyin); p != "" || z != "ㄏㄠˇ" {
		t.Errorf("zhuyin style: got %q/%q", p, z)
	}
	if p, z := readingsForStyle(c, StyleBoth); p != "hǎo" || z != "ㄏㄠˇ" {
		t.Errorf("both style: got %q/%q", p, z)
	}
}

// TestFilterByScript covers the three regimes: mixed exclusive tags
// filter, a single exclusive tag leaves the list untouched, and an
// empty filter result falls back to the full list.
func TestFilterByScript(t *testing.T) {
	mixed := []zhdict.Candidate{
		{Pinyin: "fà", Script: zhdict.ScriptTraditional, Weight: 0.6},
		{Pinyin: "fā", Script: zhdict.ScriptSimplified, Weight: 0.4},
		{Pinyin: "fa", Script: zhdict.ScriptNeutral, Weight: 0.1},
	}

	kept := filterByScript(mixed, false)
	if len(kept) != 2 || kept[0].Pinyin != "fā" || kept[1].Pinyin != "fa" {
		t.Errorf("simplified filter: %+v", kept)
	}
	kept = filterByScript(mixed, true)
	if len(kept) != 2 || kept[0].Pinyin != "fà" || kept[1].Pinyin != "fa" {
		t.Errorf("traditional filter: %+v", kept)
	}

	single := []zhdict.Candidate{
		{Pinyin: "guó", Script: zhdict.ScriptTraditional, Weight: 1},
	}
	if kept := filterByScript(single, false); len(kept) != 1 {
		t.Errorf("single-script list must pass unchanged, got %+v", kept)
	}
}
