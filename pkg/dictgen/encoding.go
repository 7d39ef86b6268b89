package dictgen

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SourceEncoding is an enum-like type for the encodings raw dictionary
// sources ship in. Legacy Chinese lexica are commonly distributed in
// GBK/GB18030 or Big5 rather than UTF-8.
type SourceEncoding int

const (
	UTF8 SourceEncoding = iota
	UTF16LE
	GBK
	GB18030
	Big5
)

// ParseSourceEncoding maps a canonical name to a SourceEncoding.
func ParseSourceEncoding(name string) (SourceEncoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "utf-16le", "utf16le":
		return UTF16LE, nil
	case "gbk":
		return GBK, nil
	case "gb18030":
		return GB18030, nil
	case "big5":
		return Big5, nil
	}
	return UTF8, fmt.Errorf("dictgen: unsupported source encoding %q", name)
}

// EncodingName returns the canonical string name.
func (e SourceEncoding) EncodingName() string {
	switch e {
	case UTF16LE:
		return "UTF-16LE"
	case GBK:
		return "GBK"
	case GB18030:
		return "GB18030"
	case Big5:
		return "Big5"
	default:
		return "UTF-8"
	}
}

func (e SourceEncoding) encoding() encoding.Encoding {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case GBK:
		return simplifiedchinese.GBK
	case GB18030:
		return simplifiedchinese.GB18030
	case Big5:
		return traditionalchinese.Big5
	default:
		return unicode.UTF8
	}
}

// DecodeReader wraps r so that its content is transcoded from e to
// UTF-8. For UTF-8 sources the reader is returned unchanged.
func (e SourceEncoding) DecodeReader(r io.Reader) io.Reader {
	if e == UTF8 {
		return r
	}
	return transform.NewReader(r, e.encoding().NewDecoder())
}
