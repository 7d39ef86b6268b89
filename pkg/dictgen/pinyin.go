package dictgen

import (
	"fmt"
	"strings"
)

// Tone-marked vowels indexed by tone. Index 0 is the bare vowel used
// for the neutral tone.
var toneRows = map[rune][5]rune{
	'a': {'a', 'ā', 'á', 'ǎ', 'à'},
	'e': {'e', 'ē', 'é', 'ě', 'è'},
	'i': {'i', 'ī', 'í', 'ǐ', 'ì'},
	'o': {'o', 'ō', 'ó', 'ǒ', 'ò'},
	'u': {'u', 'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// splitNumbered takes one numbered-pinyin syllable ("hao3", "lu:4",
// "ma5") and returns the bare syllable with ü restored and the tone.
// Tone 5 (and 0) is the neutral tone. A missing digit counts as
// neutral.
func splitNumbered(s string) (base string, tone int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", 0, fmt.Errorf("empty syllable")
	}

	tone = 0
	last := s[len(s)-1]
	if last >= '0' && last <= '9' {
		tone = int(last - '0')
		s = s[:len(s)-1]
		if tone > 5 {
			return "", 0, fmt.Errorf("bad tone in %q", s)
		}
		if tone == 5 {
			tone = 0
		}
	}

	// CEDICT writes ü as "u:" or "v".
	s = strings.ReplaceAll(s, "u:", "ü")
	s = strings.ReplaceAll(s, "v", "ü")
	s = strings.ToLower(s)
	if s == "" {
		return "", 0, fmt.Errorf("empty syllable")
	}
	return s, tone, nil
}

// markNumbered converts one numbered-pinyin syllable to its tone-marked
// form following the standard placement rules: 'a' and 'e' always take
// the mark, 'o' takes it in "ou", otherwise the last vowel does.
func markNumbered(s string) (string, error) {
	base, tone, err := splitNumbered(s)
	if err != nil {
		return "", err
	}
	if tone == 0 {
		return base, nil
	}

	runes := []rune(base)
	markAt := -1
	for i, r := range runes {
		// 'a' and 'e' win outright; "ou" marks the 'o'.
		if r == 'a' || r == 'e' {
			markAt = i
			break
		}
		if r == 'o' && i+1 < len(runes) && runes[i+1] == 'u' {
			markAt = i
			break
		}
	}
	if markAt == -1 {
		for i, r := range runes {
			switch r {
			case 'i', 'o', 'u', 'ü':
				markAt = i
			}
		}
	}
	if markAt == -1 {
		return "", fmt.Errorf("no vowel in syllable %q", s)
	}

	row, ok := toneRows[runes[markAt]]
	if !ok {
		return "", fmt.Errorf("cannot place tone mark in %q", s)
	}
	runes[markAt] = row[tone]
	return string(runes), nil
}

// MarkNumberedReading converts a whole space-separated numbered reading
// ("ni3 hao3") to its tone-marked form ("nǐ hǎo").
func MarkNumberedReading(reading string) (string, error) {
	fields := strings.Fields(reading)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		m, err := markNumbered(f)
		if err != nil {
			return "", err
		}
		out = append(out, m)
	}
	return strings.Join(out, " "), nil
}
