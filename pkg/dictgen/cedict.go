package dictgen

import (
	"fmt"
	"strings"
)

// rawEntry is one source record before compilation: both character
// forms plus a numbered or tone-marked pinyin reading.
type rawEntry struct {
	Traditional string
	Simplified  string
	Pinyin      string // numbered ("ni3 hao3")
	Zhuyin      string // empty when the source does not carry zhuyin
}

// parseCEDICTLine parses one CC-CEDICT line:
//
//	你好 你好 [ni3 hao3] /hello/hi/
//
// i.e. traditional, simplified, bracketed numbered pinyin, glosses.
// Comment and metadata lines (leading '#') return an empty entry.
func parseCEDICTLine(line string) (rawEntry, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rawEntry{}, false, nil
	}

	open := strings.Index(line, "[")
	if open < 0 {
		return rawEntry{}, false, fmt.Errorf("dictgen: no reading in line %q", line)
	}
	close_ := strings.Index(line[open:], "]")
	if close_ < 0 {
		return rawEntry{}, false, fmt.Errorf("dictgen: unterminated reading in line %q", line)
	}

	head := strings.Fields(strings.TrimSpace(line[:open]))
	if len(head) != 2 {
		return rawEntry{}, false, fmt.Errorf("dictgen: malformed headwords in line %q", line)
	}

	reading := strings.TrimSpace(line[open+1 : open+close_])
	if reading == "" {
		return rawEntry{}, false, fmt.Errorf("dictgen: empty reading in line %q", line)
	}

	return rawEntry{
		Traditional: head[0],
		Simplified:  head[1],
		Pinyin:      reading,
	}, true, nil
}
