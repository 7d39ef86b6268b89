package dictgen

import "testing"

func TestMarkNumbered(t *testing.T) {
	cases := map[string]string{
		"ni3":    "nǐ",
		"hao3":   "hǎo",
		"ma1":    "mā",
		"ma5":    "ma", // neutral tone stays unmarked
		"de":     "de", // missing digit counts as neutral
		"lu:4":   "lǜ",
		"lv4":    "lǜ",
		"nu:3":   "nǚ",
		"xiong2": "xióng",
		"gui4":   "guì", // ui marks the i
		"ou1":    "ōu",  // ou marks the o
		"hui2":   "huí",
		"jiao4":  "jiào",
		"er4":    "èr",
		"r5":     "r",
	}
	for in, want := range cases {
		got, err := markNumbered(in)
		if err != nil {
			t.Errorf("markNumbered(%q) failed: %s", in, err)
			continue
		}
		if got != want {
			t.Errorf("markNumbered(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMarkNumberedRejectsVowelless(t *testing.T) {
	if _, err := markNumbered("xx3"); err == nil {
		t.Error("expected error for syllable without a markable vowel")
	}
	if _, err := markNumbered(""); err == nil {
		t.Error("expected error for empty syllable")
	}
}

func TestMarkNumberedReading(t *testing.T) {
	got, err := MarkNumberedReading("ni3 hao3")
	if err != nil {
		t.Fatalf("MarkNumberedReading failed: %s", err)
	}
	if got != "nǐ hǎo" {
		t.Errorf("got %q, want %q", got, "nǐ hǎo")
	}

	if _, err := MarkNumberedReading("zhong1 xx7"); err == nil {
		t.Error("expected error for a bad syllable inside the reading")
	}
}

func TestSplitNumbered(t *testing.T) {
	base, tone, err := splitNumbered("Hao3")
	if err != nil {
		t.Fatalf("splitNumbered failed: %s", err)
	}
	if base != "hao" || tone != 3 {
		t.Errorf("got %q tone %d, want hao tone 3", base, tone)
	}

	base, tone, err = splitNumbered("ma5")
	if err != nil {
		t.Fatalf("splitNumbered failed: %s", err)
	}
	if base != "ma" || tone != 0 {
		t.Errorf("tone 5 must normalize to neutral, got %q tone %d", base, tone)
	}
}
