// Package zhnorm canonicalizes Chinese text before dictionary lookup.
// It folds code points that are visually identical to standard
// ideographs but carry distinct code points (Kangxi radicals, CJK
// compatibility ideographs, known variants) into their canonical forms,
// leaving everything else untouched.
package zhnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// variantTable maps known variant characters that NFKC does not fold to
// the form the packaged dictionaries use.
var variantTable = map[rune]rune{
	'⺀': '冫',
	'⺄': '乙',
	'⺆': '冂',
	'⺈': '刀',
	'⺊': '卜',
	'⺌': '小',
	'⺍': '小',
	'⺗': '心',
	'⺮': '竹',
	'⺳': '网',
	'⺷': '羊',
	'⺹': '老',
	'⻁': '虎',
	'⻄': '西',
	'⻍': '辵',
	'⻏': '邑',
	'⻖': '阜',
}

// foldable reports whether r sits in a block whose members are folded.
// Only these blocks are ever rewritten; canonicalization never touches
// ordinary ideographs, Latin text, digits or punctuation.
func foldable(r rune) bool {
	switch {
	case r >= 0x2E80 && r <= 0x2EFF: // CJK Radicals Supplement
		return true
	case r >= 0x2F00 && r <= 0x2FDF: // Kangxi Radicals
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK Compatibility Ideographs
		return true
	case r >= 0x2F800 && r <= 0x2FA1F: // CJK Compatibility Ideographs Supplement
		return true
	}
	return false
}

// foldRune returns the canonical form of a single foldable rune. NFKC
// maps every code point in the foldable blocks to exactly one unified
// ideograph; when it does not (unassigned code points), the rune is
// kept as is so that rune counts are always preserved.
func foldRune(r rune) rune {
	if v, ok := variantTable[r]; ok {
		return v
	}
	folded := []rune(norm.NFKC.String(string(r)))
	if len(folded) == 1 {
		return folded[0]
	}
	return r
}

// Normalize returns text with every foldable code point replaced by its
// canonical form. The function is pure, deterministic and idempotent,
// and it preserves the rune count of its input, so offsets into the
// returned string are rune-aligned with the original.
func Normalize(text string) string {
	var b *strings.Builder
	for i, r := range text {
		canon := r
		if foldable(r) {
			canon = foldRune(r)
		}
		if b == nil {
			if canon == r {
				continue
			}
			// First rewritten rune: copy the untouched prefix.
			b = &strings.Builder{}
			b.Grow(len(text))
			b.WriteString(text[:i])
		}
		b.WriteRune(canon)
	}
	if b == nil {
		return text
	}
	return b.String()
}

// IsChinese reports whether r is a Han ideograph. Kangxi radicals are
// part of the Han script, so the check holds before and after folding.
func IsChinese(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
