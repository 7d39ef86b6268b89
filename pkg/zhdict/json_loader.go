package zhdict

import (
	"encoding/json"
	"fmt"
	"io"
)

// jsonLoader handles the JSON table contract:
//
//	{
//	  "你好": [
//	    {"pinyin": "nǐ hǎo", "zhuyin": "ㄋㄧˇ ㄏㄠˇ", "script": "neutral", "weight": 9.5}
//	  ]
//	}
//
// Script tags and weights are validated; anything off-contract is
// reported as ErrInvalidSchema.
type jsonLoader struct{}

// jsonCandidate is the wire shape of one candidate record.
type jsonCandidate struct {
	Pinyin string   `json:"pinyin"`
	Zhuyin string   `json:"zhuyin"`
	Script string   `json:"script"`
	Weight *float64 `json:"weight"`
}

func (j *jsonLoader) Kind() Kind { return KindJSON }

// Sniff accepts sources whose first non-whitespace byte opens a JSON
// object. Text and gob tables can never start that way.
func (j *jsonLoader) Sniff(sniff []byte, isEOF bool) bool {
	for _, b := range sniff {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func (j *jsonLoader) Load(r io.Reader, emit OnEntryFunc) error {
	var raw map[string][]jsonCandidate
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	for key, records := range raw {
		cands := make([]Candidate, 0, len(records))
		for _, rec := range records {
			script, ok := ParseScript(rec.Script)
			if !ok {
				return fmt.Errorf("%w: unknown script tag %q for %q", ErrInvalidSchema, rec.Script, key)
			}
			weight := 1.0
			if rec.Weight != nil {
				weight = *rec.Weight
			}
			if weight < 0 {
				return fmt.Errorf("%w: negative weight for %q", ErrInvalidSchema, key)
			}
			cands = append(cands, Candidate{
				Pinyin: rec.Pinyin,
				Zhuyin: rec.Zhuyin,
				Script: script,
				Weight: weight,
			})
		}
		if err := emit(key, cands); err != nil {
			return err
		}
	}
	return nil
}

// MarshalCandidates renders candidates back to the wire shape. The
// offline compiler uses it to emit the JSON table.
func MarshalCandidates(d Dictionary) ([]byte, error) {
	raw := make(map[string][]jsonCandidate, len(d))
	for key, cands := range d {
		records := make([]jsonCandidate, 0, len(cands))
		for _, c := range cands {
			w := c.Weight
			records = append(records, jsonCandidate{
				Pinyin: c.Pinyin,
				Zhuyin: c.Zhuyin,
				Script: c.Script.String(),
				Weight: &w,
			})
		}
		raw[key] = records
	}
	return json.MarshalIndent(raw, "", "  ")
}
