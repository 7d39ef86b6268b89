package annotate

import (
	"context"
	"strings"

	carrier "github.com/benoit-pereira-da-silva/textual/pkg/textual"
)

// ToneSandhi rewrites tone-marked pinyin readings according to
// Mandarin's standard sandhi rules:
//
//   - a third tone before another third tone is pronounced second tone,
//     applied right to left across chains of third tones;
//   - 不 (bù) before a fourth tone becomes bú;
//   - 一 (yī) becomes yí before a fourth tone and yì before first,
//     second and third tones.
//
// Zhuyin renderings are left untouched: sandhi is conventionally not
// written in bopomofo. The processor only touches readings; spans,
// confidences and the partition invariant are preserved.
//
// ToneSandhi implements the package's Processor interfaces for Segment
// sequences; ApplyParcels exposes the same rewriting over
// carrier.Result channels, so the stage can also sit in
// textual-style pipelines next to other Parcel processors.
type ToneSandhi[S carrier.Result] struct{}

// Ensure ToneSandhi implements the pipeline interfaces.
var (
	_ Processor            = (*ToneSandhi[carrier.Result])(nil)
	_ CancellableProcessor = (*ToneSandhi[carrier.Result])(nil)
)

// NewToneSandhi constructs a sandhi stage.
func NewToneSandhi[S carrier.Result]() *ToneSandhi[S] {
	return &ToneSandhi[S]{}
}

// sandhiSyllable pairs one pinyin syllable with the character it reads.
type sandhiSyllable struct {
	pinyin string
	char   rune
}

// Apply implements Processor: it rewrites the pinyin of annotated
// Chinese segments. Sandhi runs span adjacent annotated segments, so a
// third tone at the end of one word still lifts before a third tone
// opening the next; unannotated and non-Chinese segments break the run.
func (p *ToneSandhi[S]) Apply(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)

	run := make([]sandhiSyllable, 0, len(out))
	// origin maps each syllable in the run back to its segment and
	// syllable index for the write-back.
	type origin struct{ seg, syl int }
	origins := make([]origin, 0, len(out))

	flush := func() {
		if len(run) == 0 {
			return
		}
		applySandhiRun(run)
		// Write rewritten syllables back into their segments.
		perSeg := map[int][]string{}
		for k, o := range origins {
			perSeg[o.seg] = append(perSeg[o.seg], run[k].pinyin)
		}
		for segIdx, syls := range perSeg {
			out[segIdx].Pinyin = strings.Join(syls, " ")
		}
		run = run[:0]
		origins = origins[:0]
	}

	for i, seg := range out {
		if !seg.Annotated || !seg.Chinese || seg.Pinyin == "" {
			flush()
			continue
		}
		syls := splitSyllables(seg.Pinyin)
		chars := []rune(seg.Text)
		for j, s := range syls {
			var ch rune
			if len(syls) == len(chars) {
				ch = chars[j]
			}
			run = append(run, sandhiSyllable{pinyin: s, char: ch})
			origins = append(origins, origin{seg: i, syl: j})
		}
	}
	flush()

	return out
}

// StreamApply implements CancellableProcessor. It emits a single
// rewritten sequence on the returned channel.
func (p *ToneSandhi[S]) StreamApply(ctx context.Context, segments []Segment) <-chan []Segment {
	out := make(chan []Segment, 1)

	go func() {
		defer close(out)

		select {
		case <-ctx.Done():
			return
		default:
		}

		res := p.Apply(segments)

		select {
		case <-ctx.Done():
			return
		case out <- res:
		}
	}()

	return out
}

// ApplyParcels implements the textual.Processor channel contract over
// carrier.Result. Each parcel's fragments are treated as one syllable
// run: the fragment text supplies the characters, Transformed supplies
// the pinyin.
func (p *ToneSandhi[S]) ApplyParcels(ctx context.Context, in <-chan carrier.Result) <-chan carrier.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan carrier.Result)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				// Stop emitting results but drain upstream to avoid
				// blocking senders.
				for range in {
				}
				return
			case res, ok := <-in:
				if !ok {
					return
				}

				processed := p.processParcel(res)

				select {
				case <-ctx.Done():
					return
				case out <- processed:
				}
			}
		}
	}()

	return out
}

// processParcel rewrites the Transformed readings of a parcel's
// fragments. Only fragments that form a contiguous chain participate in
// the same sandhi run.
func (p *ToneSandhi[S]) processParcel(res carrier.Result) carrier.Result {
	if len(res.Fragments) == 0 {
		return res
	}

	out := res
	out.Fragments = make([]carrier.Fragment, len(res.Fragments))
	copy(out.Fragments, res.Fragments)

	runes := []rune(string(res.Text))

	run := make([]sandhiSyllable, 0, len(out.Fragments))
	type origin struct{ frag, syl int }
	origins := make([]origin, 0, len(out.Fragments))

	flush := func() {
		if len(run) == 0 {
			return
		}
		applySandhiRun(run)
		perFrag := map[int][]string{}
		for k, o := range origins {
			perFrag[o.frag] = append(perFrag[o.frag], run[k].pinyin)
		}
		for fragIdx, syls := range perFrag {
			out.Fragments[fragIdx].Transformed = carrier.UTF8String(strings.Join(syls, " "))
		}
		run = run[:0]
		origins = origins[:0]
	}

	prevEnd := -1
	for i, frag := range out.Fragments {
		if prevEnd >= 0 && frag.Pos != prevEnd {
			flush()
		}
		prevEnd = frag.Pos + frag.Len

		syls := splitSyllables(string(frag.Transformed))
		if len(syls) == 0 {
			flush()
			continue
		}
		var chars []rune
		if frag.Pos >= 0 && frag.Pos+frag.Len <= len(runes) {
			chars = runes[frag.Pos : frag.Pos+frag.Len]
		}
		for j, s := range syls {
			var ch rune
			if len(syls) == len(chars) {
				ch = chars[j]
			}
			run = append(run, sandhiSyllable{pinyin: s, char: ch})
			origins = append(origins, origin{frag: i, syl: j})
		}
	}
	flush()

	return out
}

// applySandhiRun mutates the pinyin of a contiguous syllable run.
//
// The third-tone rule is applied right to left so that chains resolve
// the standard way: in a run of three third tones the first two lift to
// second tone. The 不/一 rules key off the character, since their bare
// syllables are shared with unrelated words.
func applySandhiRun(run []sandhiSyllable) {
	// The chain rule judges neighbors by their citation tones, not the
	// already-rewritten ones, so 3-3-3 resolves to 2-2-3.
	orig := make([]int, len(run))
	for i, s := range run {
		orig[i] = syllableTone(s.pinyin)
	}

	for i := len(run) - 2; i >= 0; i-- {
		next := orig[i+1]

		if orig[i] == 3 && next == 3 {
			run[i].pinyin = setSyllableTone(run[i].pinyin, 2)
			continue
		}

		switch run[i].char {
		case '不':
			if next == 4 {
				run[i].pinyin = setSyllableTone(run[i].pinyin, 2)
			}
		case '一':
			switch next {
			case 4:
				run[i].pinyin = setSyllableTone(run[i].pinyin, 2)
			case 1, 2, 3:
				run[i].pinyin = setSyllableTone(run[i].pinyin, 4)
			}
		}
	}
}
