package zhdict

import (
	"encoding/gob"
	"fmt"
	"io"
	"unicode/utf8"
)

// gobLoader handles gob-encoded Dictionary payloads.
type gobLoader struct{}

func (g *gobLoader) Kind() Kind { return KindGOB }

// Sniff identifies gob payloads by binary heuristics: sources that are
// not valid UTF-8, or that contain NUL bytes, are very likely gob. This
// avoids misclassifying text or JSON tables as binary.
func (g *gobLoader) Sniff(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	if !utf8.Valid(sniff) {
		return true
	}
	for _, b := range sniff {
		if b == 0 {
			return true
		}
	}
	return false
}

func (g *gobLoader) Load(r io.Reader, emit OnEntryFunc) error {
	dec := gob.NewDecoder(r)
	dict := make(Dictionary)
	if err := dec.Decode(&dict); err != nil {
		return fmt.Errorf("%w: decode gob: %v", ErrInvalidSchema, err)
	}
	for key, cands := range dict {
		if len(cands) == 0 {
			continue
		}
		if err := emit(key, cands); err != nil {
			return err
		}
	}
	return nil
}

// EncodeGob serializes a Dictionary in the gob format understood by the
// gob loader.
func EncodeGob(w io.Writer, d Dictionary) error {
	return gob.NewEncoder(w).Encode(d)
}
