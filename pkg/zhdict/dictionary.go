// Package zhdict provides the pronunciation dictionary consumed by the
// annotation engine. It supports multiple packaged formats via pluggable
// "Loader" implementations and exposes an immutable, concurrency-safe
// Store built once at startup.
package zhdict

import (
	"sort"
	"unicode"
)

// Script tags a candidate reading with its character-form affinity.
type Script int

const (
	// ScriptNeutral marks readings valid for both character forms.
	ScriptNeutral Script = iota

	// ScriptSimplified marks readings attached to a simplified form.
	ScriptSimplified

	// ScriptTraditional marks readings attached to a traditional form.
	ScriptTraditional
)

// String returns the canonical tag used in packaged dictionary files.
func (s Script) String() string {
	switch s {
	case ScriptSimplified:
		return "simplified"
	case ScriptTraditional:
		return "traditional"
	default:
		return "neutral"
	}
}

// ParseScript maps a packaged tag back to a Script. Unknown tags are
// reported so that loaders can reject malformed files.
func ParseScript(tag string) (Script, bool) {
	switch tag {
	case "simplified":
		return ScriptSimplified, true
	case "traditional":
		return ScriptTraditional, true
	case "neutral", "":
		return ScriptNeutral, true
	}
	return ScriptNeutral, false
}

// Candidate is one pronunciation attached to a surface key. Both textual
// renderings are precomputed by the offline compiler; the engine never
// derives one from the other at runtime.
type Candidate struct {
	Pinyin string  `json:"pinyin"`
	Zhuyin string  `json:"zhuyin"`
	Script Script  `json:"-"`
	Weight float64 `json:"weight"`
}

// Dictionary maps surface keys (one or more characters) to their
// candidate readings. It is the in-memory shape shared by all loaders.
type Dictionary map[string][]Candidate

// MaxKeyLen returns the length in runes of the longest key.
func (d Dictionary) MaxKeyLen() int {
	max := 0
	for k := range d {
		n := 0
		for range k {
			n++
		}
		if n > max {
			max = n
		}
	}
	return max
}

// Stats summarizes a loaded dictionary, mirroring the numbers the
// offline compiler records alongside the table.
type Stats struct {
	TotalEntries     int
	MultiCharEntries int
	MaxKeyLen        int
}

// Store is the immutable lookup index built once from a packaged
// dictionary. After construction it is never mutated, so lookups are
// safe from any number of concurrent annotation calls without
// synchronization.
type Store struct {
	entries   Dictionary
	maxKeyLen int
	stats     Stats
}

// NewStore builds a Store from a Dictionary. Candidates of each key are
// ordered by descending weight; entries with no candidates are dropped.
// The input map must not be mutated by the caller afterwards.
func NewStore(d Dictionary) *Store {
	s := &Store{entries: make(Dictionary, len(d))}
	for key, cands := range d {
		if key == "" || len(cands) == 0 {
			continue
		}
		sorted := make([]Candidate, len(cands))
		copy(sorted, cands)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Weight > sorted[j].Weight
		})
		s.entries[key] = sorted

		n := 0
		for range key {
			n++
		}
		if n > s.maxKeyLen {
			s.maxKeyLen = n
		}
		if n > 1 {
			s.stats.MultiCharEntries++
		}
	}
	s.stats.TotalEntries = len(s.entries)
	s.stats.MaxKeyLen = s.maxKeyLen
	return s
}

// Candidates returns the readings registered for an exact surface key,
// ordered by descending weight, or nil when the key is absent. The
// returned slice is shared and must not be modified.
func (s *Store) Candidates(key string) []Candidate {
	return s.entries[key]
}

// MaxKeyLen returns the rune length of the longest key in the store.
// The segmenter uses it as the upper bound for greedy matching.
func (s *Store) MaxKeyLen() int {
	return s.maxKeyLen
}

// EntryCount returns the number of surface keys in the store.
func (s *Store) EntryCount() int {
	return s.stats.TotalEntries
}

// Stats returns the summary recorded at load time.
func (s *Store) Stats() Stats {
	return s.stats
}

// DetectTraditional reports whether text looks predominantly
// traditional. It counts single characters whose readings carry an
// exclusive script tag and compares the two totals; characters with
// only neutral readings do not vote.
func (s *Store) DetectTraditional(text string) bool {
	traditional, simplified := 0, 0
	for _, r := range text {
		if !unicode.Is(unicode.Han, r) {
			continue
		}
		for _, c := range s.entries[string(r)] {
			switch c.Script {
			case ScriptTraditional:
				traditional++
			case ScriptSimplified:
				simplified++
			}
		}
	}
	return traditional > simplified
}
