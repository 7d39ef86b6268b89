package dictgen

import (
	"fmt"
	"strings"
)

// Pinyin-to-zhuyin conversion tables. The compiler precomputes the
// zhuyin rendering of every candidate so that the engine never derives
// it at runtime.

var zhuyinInitials = map[string]string{
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ", "r": "ㄖ",
	"z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

var zhuyinFinals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ê": "ㄝ",
	"ai": "ㄞ", "ei": "ㄟ", "ao": "ㄠ", "ou": "ㄡ",
	"an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ", "er": "ㄦ",
	"i": "ㄧ", "ia": "ㄧㄚ", "ie": "ㄧㄝ", "iao": "ㄧㄠ",
	"iu": "ㄧㄡ", "iou": "ㄧㄡ", "ian": "ㄧㄢ", "in": "ㄧㄣ",
	"iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ",
	"ui": "ㄨㄟ", "uei": "ㄨㄟ", "uan": "ㄨㄢ", "un": "ㄨㄣ",
	"uen": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ", "ong": "ㄨㄥ",
	"ü": "ㄩ", "üe": "ㄩㄝ", "üan": "ㄩㄢ", "ün": "ㄩㄣ",
}

// Syllables written with an initial only: the vowel of zhi/chi/shi/ri/
// zi/ci/si is implicit in zhuyin.
var zhuyinWhole = map[string]string{
	"zhi": "ㄓ", "chi": "ㄔ", "shi": "ㄕ", "ri": "ㄖ",
	"zi": "ㄗ", "ci": "ㄘ", "si": "ㄙ",
	"er": "ㄦ", "r": "ㄦ", "ê": "ㄝ", "o": "ㄛ",
}

var zhuyinTones = map[int]string{
	2: "ˊ", 3: "ˇ", 4: "ˋ",
}

// normalizeSyllable rewrites the orthographic y/w forms to the
// underlying finals (ya→ia, wu→u, yu→ü...) and restores ü after
// j/q/x, so that the final table applies uniformly.
func normalizeSyllable(base string) string {
	switch {
	case strings.HasPrefix(base, "yi"):
		// yi, yin, ying: the y is silent before i.
		base = base[len("y"):]
	case base == "wu":
		base = "u"
	case strings.HasPrefix(base, "yu"):
		base = "ü" + base[len("yu"):]
	case strings.HasPrefix(base, "y"):
		base = "i" + base[len("y"):]
	case strings.HasPrefix(base, "w"):
		base = "u" + base[len("w"):]
	}
	// "iou"/"uei"/"uen" spellings never follow y/w rewriting with a
	// second vowel dropped; the finals table carries both spellings.

	// ü is written u after j/q/x.
	for _, ini := range []string{"j", "q", "x"} {
		if strings.HasPrefix(base, ini) {
			rest := base[len(ini):]
			if strings.HasPrefix(rest, "u") {
				base = ini + "ü" + rest[len("u"):]
			}
			break
		}
	}
	return base
}

// syllableToZhuyin converts one bare pinyin syllable plus tone to its
// zhuyin rendering. Tone 1 is unmarked, tones 2-4 append their mark,
// the neutral tone is prefixed with ˙.
func syllableToZhuyin(base string, tone int) (string, error) {
	base = normalizeSyllable(base)

	var body string
	if whole, ok := zhuyinWhole[base]; ok {
		body = whole
	} else {
		initial := ""
		for _, cand := range []string{"zh", "ch", "sh"} {
			if strings.HasPrefix(base, cand) {
				initial = cand
				break
			}
		}
		if initial == "" && len(base) > 0 {
			if _, ok := zhuyinInitials[base[:1]]; ok && base != "er" {
				initial = base[:1]
			}
		}
		final := base[len(initial):]
		sym, ok := zhuyinFinals[final]
		if !ok {
			return "", fmt.Errorf("no zhuyin final for %q", base)
		}
		body = zhuyinInitials[initial] + sym
	}

	if tone == 0 {
		return "˙" + body, nil
	}
	return body + zhuyinTones[tone], nil
}

// NumberedReadingToZhuyin converts a space-separated numbered pinyin
// reading to zhuyin, one block per syllable.
func NumberedReadingToZhuyin(reading string) (string, error) {
	fields := strings.Fields(reading)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		base, tone, err := splitNumbered(f)
		if err != nil {
			return "", err
		}
		z, err := syllableToZhuyin(base, tone)
		if err != nil {
			return "", err
		}
		out = append(out, z)
	}
	return strings.Join(out, " "), nil
}
