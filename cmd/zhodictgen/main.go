// The command "zhodictgen" compiles a raw pronunciation source into the
// packaged lookup table consumed by the annotation engine.
//
// Supported sources are CC-CEDICT-style text (traditional simplified
// [numbered pinyin] /gloss/) and the enhanced JSON export (an array of
// {sm, tr, pinyin, zhuyin} records). Legacy encodings (GBK, GB18030,
// Big5) are transcoded on the fly.
//
// Example usages:
//
//	# CEDICT source to the JSON table:
//	zhodictgen -in cedict_ts.u8 -out dictionary.json
//
//	# Big5 source to a gob table, with single-character fallback:
//	zhodictgen -in lexicon.big5 -encoding big5 -char-fallback \
//	    -export gob -out dictionary.gob
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zho-tools/zhoanno/pkg/dictgen"
	"github.com/zho-tools/zhoanno/pkg/zhdict"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("zhodictgen: ")

	var (
		inPath       = flag.String("in", "", "raw source path (CC-CEDICT text or enhanced JSON; - for stdin)")
		outPath      = flag.String("out", "", "output path (- or empty for stdout)")
		encodingName = flag.String("encoding", "utf-8", "source encoding: utf-8, utf-16le, gbk, gb18030, big5")
		export       = flag.String("export", "json", "output format: json, gob, text")
		charFallback = flag.Bool("char-fallback", false, "derive readings for single characters missing from the source")
	)
	flag.Parse()

	enc, err := dictgen.ParseSourceEncoding(*encodingName)
	if err != nil {
		log.Fatal(err)
	}
	opts := dictgen.Options{Encoding: enc, CharFallback: *charFallback}

	in, name, err := openInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	dict, report, err := compile(in, name, opts)
	if err != nil {
		log.Fatalf("compile %s: %v", name, err)
	}

	out, err := openOutput(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	switch *export {
	case "json":
		err = dictgen.WriteJSON(out, dict)
	case "gob":
		err = dictgen.WriteGob(out, dict)
	case "text":
		err = dictgen.WriteText(out, dict)
	default:
		log.Fatalf("unsupported export format %q", *export)
	}
	if err != nil {
		log.Fatalf("write table: %v", err)
	}

	log.Printf("source entries: %d (%d skipped)", report.SourceEntries, report.SkippedLines)
	log.Printf("keys: %d (%d multi-character, %d fallback characters)",
		report.Keys, report.MultiCharKeys, report.FallbackChars)
	if report.MissingZhuyin > 0 {
		log.Printf("readings without derivable zhuyin: %d", report.MissingZhuyin)
	}
}

// compile picks the source parser from the file content: a JSON array
// is the enhanced export, everything else is treated as CEDICT text.
func compile(r io.Reader, name string, opts dictgen.Options) (zhdict.Dictionary, dictgen.Report, error) {
	if strings.HasSuffix(name, ".json") {
		return dictgen.CompileRawJSON(r, opts)
	}
	// Sniff the first non-space byte for a JSON array.
	buf := make([]byte, 1)
	var head []byte
	for {
		n, err := r.Read(buf)
		if n > 0 {
			head = append(head, buf[0])
			if !isSpaceByte(buf[0]) {
				break
			}
		}
		if err != nil {
			break
		}
	}
	rest := io.MultiReader(strings.NewReader(string(head)), r)
	if len(head) > 0 && head[len(head)-1] == '[' {
		return dictgen.CompileRawJSON(rest, opts)
	}
	return dictgen.CompileCEDICT(rest, opts)
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
