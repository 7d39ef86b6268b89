// Package dictgen is the offline compiler that turns raw pronunciation
// sources (CC-CEDICT text or the enhanced JSON export) into the
// packaged lookup table the annotation engine consumes. It derives the
// tone-marked pinyin and zhuyin renderings, tags candidates with their
// script affinity and assigns the relative weights the disambiguator
// scores against.
package dictgen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
	"github.com/siongui/gojianfan"

	"github.com/zho-tools/zhoanno/pkg/zhdict"
)

// Options control a compilation run.
type Options struct {
	// Encoding of the raw source. Legacy lexica frequently ship in
	// GBK/GB18030 or Big5.
	Encoding SourceEncoding

	// CharFallback derives readings for single characters that appear
	// inside multi-character entries but have no standalone entry of
	// their own, so that the greedy scanner can always fall back to
	// length 1.
	CharFallback bool
}

// Report summarizes a compilation run.
type Report struct {
	SourceEntries    int
	Keys             int
	MultiCharKeys    int
	FallbackChars    int
	SkippedLines     int
	MissingZhuyin    int
	DerivedScriptKey int
}

// weightDecay ranks readings of the same key by source order: the
// first-listed reading of a CC-CEDICT key is overwhelmingly the common
// one, each later reading is down-weighted.
const weightDecay = 0.8

// compiler accumulates candidates per surface key.
type compiler struct {
	opts    Options
	dict    zhdict.Dictionary
	report  Report
	perKey  map[string]int
	pinyinA gopinyin.Args
}

func newCompiler(opts Options) *compiler {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone3
	args.Heteronym = true
	return &compiler{
		opts:    opts,
		dict:    make(zhdict.Dictionary, 1<<12),
		perKey:  make(map[string]int, 1<<12),
		pinyinA: args,
	}
}

// CompileCEDICT compiles a CC-CEDICT-style text source.
func CompileCEDICT(r io.Reader, opts Options) (zhdict.Dictionary, Report, error) {
	c := newCompiler(opts)

	scanner := bufio.NewScanner(opts.Encoding.DecodeReader(r))
	for scanner.Scan() {
		entry, ok, err := parseCEDICTLine(scanner.Text())
		if err != nil {
			c.report.SkippedLines++
			continue
		}
		if !ok {
			continue
		}
		if err := c.add(entry); err != nil {
			c.report.SkippedLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, c.report, fmt.Errorf("dictgen: read source: %w", err)
	}

	return c.finish()
}

// rawJSONEntry is the shape of the enhanced JSON export: one record per
// reading with both character forms.
type rawJSONEntry struct {
	Simplified  string `json:"sm"`
	Traditional string `json:"tr"`
	Pinyin      string `json:"pinyin"`
	Zhuyin      string `json:"zhuyin"`
}

// CompileRawJSON compiles the enhanced JSON export: an array of
// {sm, tr, pinyin, zhuyin} records.
func CompileRawJSON(r io.Reader, opts Options) (zhdict.Dictionary, Report, error) {
	c := newCompiler(opts)

	var entries []rawJSONEntry
	dec := json.NewDecoder(opts.Encoding.DecodeReader(r))
	if err := dec.Decode(&entries); err != nil {
		return nil, c.report, fmt.Errorf("dictgen: parse source JSON: %w", err)
	}

	for _, e := range entries {
		err := c.add(rawEntry{
			Traditional: e.Traditional,
			Simplified:  e.Simplified,
			Pinyin:      e.Pinyin,
			Zhuyin:      e.Zhuyin,
		})
		if err != nil {
			c.report.SkippedLines++
		}
	}

	return c.finish()
}

// add compiles one source record into tagged candidates.
func (c *compiler) add(e rawEntry) error {
	c.report.SourceEntries++

	pinyin := e.Pinyin
	if strings.ContainsAny(pinyin, "0123456789") {
		marked, err := MarkNumberedReading(pinyin)
		if err != nil {
			return err
		}
		zhuyin := e.Zhuyin
		if zhuyin == "" {
			z, err := NumberedReadingToZhuyin(pinyin)
			if err != nil {
				c.report.MissingZhuyin++
			} else {
				zhuyin = z
			}
		}
		return c.register(e.Simplified, e.Traditional, marked, zhuyin)
	}

	// Already tone-marked: zhuyin cannot be derived without the tone
	// digits, so a source that omits it stays pinyin-only.
	if e.Zhuyin == "" {
		c.report.MissingZhuyin++
	}
	return c.register(e.Simplified, e.Traditional, pinyin, e.Zhuyin)
}

// register emits the candidates for one reading under the simplified
// and traditional surface keys. Sources that carry a single character
// form get the missing counterpart derived by conversion; a key whose
// two forms coincide is script-neutral.
func (c *compiler) register(simplified, traditional, pinyin, zhuyin string) error {
	if simplified == "" && traditional == "" {
		return fmt.Errorf("dictgen: entry without headword")
	}
	if simplified == "" {
		simplified = gojianfan.T2S(traditional)
		c.report.DerivedScriptKey++
	}
	if traditional == "" {
		traditional = gojianfan.S2T(simplified)
		c.report.DerivedScriptKey++
	}

	if simplified == traditional {
		c.emit(simplified, zhdict.ScriptNeutral, pinyin, zhuyin)
		return nil
	}
	c.emit(simplified, zhdict.ScriptSimplified, pinyin, zhuyin)
	c.emit(traditional, zhdict.ScriptTraditional, pinyin, zhuyin)
	return nil
}

// emit appends one candidate to a key, with positional weight decay.
func (c *compiler) emit(key string, script zhdict.Script, pinyin, zhuyin string) {
	if key == "" || (pinyin == "" && zhuyin == "") {
		return
	}
	pos := c.perKey[key]
	c.perKey[key] = pos + 1
	c.dict[key] = append(c.dict[key], zhdict.Candidate{
		Pinyin: pinyin,
		Zhuyin: zhuyin,
		Script: script,
		Weight: math.Pow(weightDecay, float64(pos)),
	})
}

// finish runs the optional character fallback and fills the report.
func (c *compiler) finish() (zhdict.Dictionary, Report, error) {
	if c.opts.CharFallback {
		c.fallbackChars()
	}

	if len(c.dict) == 0 {
		return nil, c.report, zhdict.ErrEmptyDictionary
	}

	c.report.Keys = len(c.dict)
	for key := range c.dict {
		if len([]rune(key)) > 1 {
			c.report.MultiCharKeys++
		}
	}
	return c.dict, c.report, nil
}

// fallbackChars derives readings for single characters that occur in
// multi-character keys but lack a standalone entry.
func (c *compiler) fallbackChars() {
	for key := range c.dict {
		for _, r := range key {
			if !unicode.Is(unicode.Han, r) {
				continue
			}
			ch := string(r)
			if _, ok := c.dict[ch]; ok {
				continue
			}
			readings := gopinyin.Pinyin(ch, c.pinyinA)
			if len(readings) == 0 || len(readings[0]) == 0 {
				continue
			}
			for _, numbered := range readings[0] {
				marked, err := markNumbered(numbered)
				if err != nil {
					continue
				}
				zhuyin := ""
				if base, tone, err := splitNumbered(numbered); err == nil {
					if z, err := syllableToZhuyin(base, tone); err == nil {
						zhuyin = z
					}
				}
				c.emit(ch, zhdict.ScriptNeutral, marked, zhuyin)
			}
			if _, ok := c.dict[ch]; ok {
				c.report.FallbackChars++
			}
		}
	}
}

// WriteJSON exports the compiled table in the packaged JSON contract.
func WriteJSON(w io.Writer, d zhdict.Dictionary) error {
	data, err := zhdict.MarshalCandidates(d)
	if err != nil {
		return fmt.Errorf("dictgen: marshal table: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteGob exports the compiled table in the gob format.
func WriteGob(w io.Writer, d zhdict.Dictionary) error {
	return zhdict.EncodeGob(w, d)
}

// WriteText exports the compiled table in the tab-separated text
// format, keys sorted for stable diffs.
func WriteText(w io.Writer, d zhdict.Dictionary) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := bw.WriteString(zhdict.FormatTabTxtLine(k, d[k]) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
