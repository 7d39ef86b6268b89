package zhnorm

import "testing"

// TestNormalizeKangxiRadical verifies that Kangxi radical code points
// fold to the unified ideographs the dictionaries are keyed on:
// U+2F00 (⼀) is visually identical to U+4E00 (一) but a distinct code
// point.
func TestNormalizeKangxiRadical(t *testing.T) {
	in := "⼀太"  // ⼀太 with a Kangxi radical first
	want := "一太" // 一太
	if got := Normalize(in); got != want {
		t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
	}
}

// TestNormalizeCompatibilityIdeograph verifies CJK compatibility
// ideographs fold to their canonical forms: U+F900 → U+8C48.
func TestNormalizeCompatibilityIdeograph(t *testing.T) {
	if got, want := Normalize("豈"), "豈"; got != want {
		t.Errorf("Normalize(U+F900) = %q, want %q", got, want)
	}
}

func TestNormalizePassThrough(t *testing.T) {
	inputs := []string{
		"",
		"你好, world! 123",
		"ﬁ ① Ａ", // compatibility forms outside the folded blocks stay put
	}
	for _, in := range inputs {
		if got := Normalize(in); got != in {
			t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
		}
	}
}

// TestNormalizeIdempotent checks normalize(normalize(s)) == normalize(s).
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"⼀⼁⼂",
		"你好世界",
		"豈 text ⾦",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

// TestNormalizePreservesRuneCount guards the offset contract: folding
// never changes the number of runes, so segment offsets stay aligned
// with the original input.
func TestNormalizePreservesRuneCount(t *testing.T) {
	inputs := []string{
		"⼀太",
		"豈更車",
		"mixed ⼈ text",
	}
	for _, in := range inputs {
		got := Normalize(in)
		if len([]rune(got)) != len([]rune(in)) {
			t.Errorf("rune count changed for %q: %q", in, got)
		}
	}
}

func TestIsChinese(t *testing.T) {
	for r, want := range map[rune]bool{
		'你': true,
		'⼀': true, // Kangxi radicals belong to the Han script
		'a': false,
		'1': false,
		'。': false,
	} {
		if got := IsChinese(r); got != want {
			t.Errorf("IsChinese(%q) = %v, want %v", r, got, want)
		}
	}
}
