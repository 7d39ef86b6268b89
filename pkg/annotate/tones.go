package annotate

import "strings"

// Tone-marked pinyin vowels, indexed by tone (1..4). Index 0 holds the
// bare vowel used for the neutral tone.
var toneRows = map[rune][5]rune{
	'a': {'a', 'ā', 'á', 'ǎ', 'à'},
	'e': {'e', 'ē', 'é', 'ě', 'è'},
	'i': {'i', 'ī', 'í', 'ǐ', 'ì'},
	'o': {'o', 'ō', 'ó', 'ǒ', 'ò'},
	'u': {'u', 'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// markToTone maps every tone-marked vowel to its bare vowel and tone.
var markToTone = map[rune]struct {
	base rune
	tone int
}{}

func init() {
	for base, row := range toneRows {
		for tone := 1; tone <= 4; tone++ {
			markToTone[row[tone]] = struct {
				base rune
				tone int
			}{base, tone}
		}
	}
}

// syllableTone returns the tone (1..4) of a tone-marked pinyin
// syllable, or 0 for the neutral tone (no marked vowel).
func syllableTone(syllable string) int {
	for _, r := range syllable {
		if m, ok := markToTone[r]; ok {
			return m.tone
		}
	}
	return 0
}

// setSyllableTone rewrites the tone mark of a syllable in place. A
// syllable without a marked vowel is returned unchanged: the neutral
// tone carries no written position for the new mark.
func setSyllableTone(syllable string, tone int) string {
	if tone < 1 || tone > 4 {
		return syllable
	}
	var b strings.Builder
	b.Grow(len(syllable))
	done := false
	for _, r := range syllable {
		if !done {
			if m, ok := markToTone[r]; ok {
				b.WriteRune(toneRows[m.base][tone])
				done = true
				continue
			}
		}
		b.WriteRune(r)
	}
	if !done {
		return syllable
	}
	return b.String()
}

// splitSyllables splits a multi-character reading into its
// space-separated syllables.
func splitSyllables(reading string) []string {
	return strings.Fields(reading)
}
