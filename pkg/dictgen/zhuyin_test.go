package dictgen

import "testing"

func TestNumberedReadingToZhuyin(t *testing.T) {
	cases := map[string]string{
		"ni3 hao3":     "ㄋㄧˇ ㄏㄠˇ",
		"zhong1 guo2":  "ㄓㄨㄥ ㄍㄨㄛˊ", // tone 1 is unmarked
		"shi4":         "ㄕˋ",
		"zi3":          "ㄗˇ",
		"er2":          "ㄦˊ",
		"ma5":          "˙ㄇㄚ",
		"yi1":          "ㄧ",
		"ying2":        "ㄧㄥˊ",
		"yin1":         "ㄧㄣ",
		"you3":         "ㄧㄡˇ",
		"wen2":         "ㄨㄣˊ",
		"wang2":        "ㄨㄤˊ",
		"wu3":          "ㄨˇ",
		"yu2":          "ㄩˊ",
		"xu1":          "ㄒㄩ",
		"ju4":          "ㄐㄩˋ",
		"lu:4":         "ㄌㄩˋ",
		"quan2":        "ㄑㄩㄢˊ",
		"xiong2":       "ㄒㄩㄥˊ",
		"chuang2":      "ㄔㄨㄤˊ",
		"tian1 qi4":    "ㄊㄧㄢ ㄑㄧˋ",
		"hui2 jia1":    "ㄏㄨㄟˊ ㄐㄧㄚ",
		"liu2":         "ㄌㄧㄡˊ",
		"cun2":         "ㄘㄨㄣˊ",
		"gong1":        "ㄍㄨㄥ",
	}
	for in, want := range cases {
		got, err := NumberedReadingToZhuyin(in)
		if err != nil {
			t.Errorf("NumberedReadingToZhuyin(%q) failed: %s", in, err)
			continue
		}
		if got != want {
			t.Errorf("NumberedReadingToZhuyin(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNumberedReadingToZhuyinRejectsUnknown(t *testing.T) {
	if _, err := NumberedReadingToZhuyin("blorp3"); err == nil {
		t.Error("expected error for a non-pinyin syllable")
	}
}

func TestNormalizeSyllable(t *testing.T) {
	cases := map[string]string{
		"yi":   "i",
		"yin":  "in",
		"ying": "ing",
		"ya":   "ia",
		"you":  "iou",
		"wu":   "u",
		"wen":  "uen",
		"yu":   "ü",
		"yuan": "üan",
		"ju":   "jü",
		"qu":   "qü",
		"xun":  "xün",
		"ni":   "ni", // untouched
	}
	for in, want := range cases {
		if got := normalizeSyllable(in); got != want {
			t.Errorf("normalizeSyllable(%q) = %q, want %q", in, got, want)
		}
	}
}
