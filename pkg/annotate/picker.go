package annotate

import "github.com/zho-tools/zhoanno/pkg/zhdict"

// picker encapsulates the strategy used to select the primary reading
// for a matched span and to derive its confidence.
//
// The strategy is purely dictionary-based decision logic over tagged
// candidate records:
//
//  1. Script filter: when both exclusive script tags occur among the
//     candidates of a key, only the preferred script plus neutral
//     readings stay in play.
//  2. The highest-weight survivor becomes the primary reading.
//  3. Confidence is the primary's weight share of the filtered set, a
//     measure of how dominant the winning reading is versus competing
//     heteronym readings.
//  4. A confidence strictly below the threshold demotes the segment to
//     unannotated; alternatives are still reported when requested.
type picker struct {
	preferTraditional bool
	threshold         float64
	style             Style
	showAlternatives  bool
}

// pick fills the reading-related fields of a Segment from the raw
// candidate list of the matched key. Candidates arrive ordered by
// descending weight (a store invariant), so the first survivor of the
// script filter is the primary.
func (p picker) pick(cands []zhdict.Candidate) Segment {
	considered := filterByScript(cands, p.preferTraditional)

	total := 0.0
	for _, c := range considered {
		total += c.Weight
	}

	primary := considered[0]
	confidence := 1.0 / float64(len(considered))
	if total > 0 {
		confidence = primary.Weight / total
	}
	if confidence > 1 {
		confidence = 1
	}

	seg := Segment{Confidence: confidence}
	if confidence >= p.threshold {
		seg.Annotated = true
		seg.Pinyin, seg.Zhuyin = readingsForStyle(primary, p.style)
	}
	if p.showAlternatives && len(considered) > 1 {
		seg.Alternatives = make([]Alternative, 0, len(considered)-1)
		for _, c := range considered[1:] {
			score := 0.0
			if total > 0 {
				score = c.Weight / total
			}
			alt := Alternative{Score: score}
			alt.Pinyin, alt.Zhuyin = readingsForStyle(c, p.style)
			seg.Alternatives = append(seg.Alternatives, alt)
		}
	}
	return seg
}

// filterByScript applies the script-affinity preference. When the
// candidate list mixes both exclusive tags, only the preferred script
// and neutral readings remain; when a single exclusive tag exists the
// list is untouched, so toggling the preference cannot change the
// outcome for single-script keys.
func filterByScript(cands []zhdict.Candidate, preferTraditional bool) []zhdict.Candidate {
	hasSimplified, hasTraditional := false, false
	for _, c := range cands {
		switch c.Script {
		case zhdict.ScriptSimplified:
			hasSimplified = true
		case zhdict.ScriptTraditional:
			hasTraditional = true
		}
	}
	if !hasSimplified || !hasTraditional {
		return cands
	}

	preferred := zhdict.ScriptSimplified
	if preferTraditional {
		preferred = zhdict.ScriptTraditional
	}
	kept := make([]zhdict.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Script == preferred || c.Script == zhdict.ScriptNeutral {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return cands
	}
	return kept
}

// readingsForStyle projects a candidate's precomputed renderings onto
// the requested style.
func readingsForStyle(c zhdict.Candidate, style Style) (pinyin, zhuyin string) {
	switch style {
	case StyleZhuyin:
		return "", c.Zhuyin
	case StyleBoth:
		return c.Pinyin, c.Zhuyin
	default:
		return c.Pinyin, ""
	}
}
