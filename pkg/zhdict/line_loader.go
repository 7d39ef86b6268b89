package zhdict

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// stripLineComment trims a raw source line and cuts everything from the
// first '#' on. Blank and pure-comment lines come back empty.
func stripLineComment(line string) string {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// newLineLoader constructs a Loader that reads a text source line by
// line and delegates actual parsing to the provided parser. This keeps
// the door open for additional textual formats without touching the
// sniffing machinery.
func newLineLoader(
	kind Kind,
	sniff func(sniff []byte, isEOF bool) bool,
	parser lineParser,
) Loader {
	return &lineLoader{
		kind:      kind,
		sniffFunc: sniff,
		parseLine: parser,
	}
}

// lineParser is a per-line parser for text-based formats.
//
// It receives a single logical line (surrounding whitespace and inline
// comments already stripped by the loader) and returns the surface key
// and its candidates. A line to be ignored returns key == "" or no
// candidates.
type lineParser func(line string) (key string, cands []Candidate, err error)

type lineLoader struct {
	kind      Kind
	sniffFunc func(sniff []byte, isEOF bool) bool
	parseLine lineParser
}

func (p *lineLoader) Kind() Kind { return p.kind }

func (p *lineLoader) Sniff(sniff []byte, isEOF bool) bool {
	if p.sniffFunc == nil {
		return false
	}
	return p.sniffFunc(sniff, isEOF)
}

func (p *lineLoader) Load(r io.Reader, emit OnEntryFunc) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stripLineComment(scanner.Text())
		if line == "" {
			continue
		}
		key, cands, err := p.parseLine(line)
		if err != nil {
			return fmt.Errorf("(%s): parse line %q: %w", p.kind, line, err)
		}
		if key == "" || len(cands) == 0 {
			continue
		}
		if err := emit(key, cands); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// sniffTabTxt detects the tab-separated text table:
//
//	你好	nǐ hǎo|ㄋㄧˇ ㄏㄠˇ|neutral|9.5
//	长	cháng|ㄔㄤˊ|neutral|5 ; zhǎng|ㄓㄤˇ|neutral|3
//
// i.e. every non-comment line holds exactly one tab.
func sniffTabTxt(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	scanner := bufio.NewScanner(bytes.NewReader(sniff))
	checked := 0
	for scanner.Scan() && checked < 10 {
		line := stripLineComment(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Count(line, "\t") != 1 {
			return false
		}
		checked++
	}
	return checked > 0
}

// parseTabTxtLine parses one entry of the text table. Candidates are
// separated by " ; "; within a candidate the fields are
// pinyin|zhuyin|script|weight, with zhuyin, script and weight optional.
func parseTabTxtLine(line string) (string, []Candidate, error) {
	parts := strings.SplitN(line, "\t", 2)
	if len(parts) != 2 {
		return "", nil, nil
	}
	key := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])
	if key == "" || raw == "" {
		return "", nil, nil
	}

	chunks := strings.Split(raw, ";")
	cands := make([]Candidate, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		fields := strings.Split(chunk, "|")
		c := Candidate{Weight: 1.0}
		c.Pinyin = strings.TrimSpace(fields[0])
		if len(fields) > 1 {
			c.Zhuyin = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			script, ok := ParseScript(strings.TrimSpace(fields[2]))
			if !ok {
				return "", nil, fmt.Errorf("%w: unknown script tag %q", ErrInvalidSchema, fields[2])
			}
			c.Script = script
		}
		if len(fields) > 3 {
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
			if err != nil {
				return "", nil, fmt.Errorf("%w: bad weight %q", ErrInvalidSchema, fields[3])
			}
			c.Weight = w
		}
		if c.Pinyin == "" && c.Zhuyin == "" {
			continue
		}
		cands = append(cands, c)
	}
	if len(cands) == 0 {
		return "", nil, nil
	}
	return key, cands, nil
}

// FormatTabTxtLine renders one entry in the text table format. The
// offline compiler uses it for the human-readable export.
func FormatTabTxtLine(key string, cands []Candidate) string {
	chunks := make([]string, 0, len(cands))
	for _, c := range cands {
		chunks = append(chunks, fmt.Sprintf("%s|%s|%s|%s",
			c.Pinyin, c.Zhuyin, c.Script,
			strconv.FormatFloat(c.Weight, 'g', -1, 64)))
	}
	return key + "\t" + strings.Join(chunks, " ; ")
}
