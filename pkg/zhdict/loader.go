package zhdict

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Kind identifies the packaged format a Loader understands.
type Kind string

const (
	// KindJSON identifies the JSON table emitted by the offline
	// compiler: an object mapping surface keys to candidate arrays.
	KindJSON Kind = "zh_json"

	// KindGOB identifies a gob-encoded Dictionary, used to serialize
	// compiled tables natively in Go for fast reloading.
	KindGOB Kind = "zh_gob"

	// KindTabTxt identifies the tab-separated text format:
	//   <key>\t<pinyin>|<zhuyin>|<script>|<weight> ; <pinyin>|...
	KindTabTxt Kind = "zh_txt"
)

// sniffLen defines the size of the block used to sniff the type.
const sniffLen = 4 * 1024 // a few kilobytes, like http.DetectContentType

// OnEntryFunc is called by a Loader for each dictionary entry
// (surface key, candidate readings).
type OnEntryFunc func(key string, cands []Candidate) error

// Loader parses a packaged dictionary source (file or bytes) and emits
// (key, candidates) entries through the provided callback.
type Loader interface {
	// Kind returns a short identifier for the loader.
	Kind() Kind

	// Sniff inspects a prefix of the input (sniff) and decides whether
	// this loader is appropriate for the source.
	//
	// - sniff: initial bytes of the source (up to a few KB).
	// - isEOF: true if sniff contains the full source.
	Sniff(sniff []byte, isEOF bool) bool

	// Load parses the entire source from r and calls emit for each entry found.
	Load(r io.Reader, emit OnEntryFunc) error
}

var builtinLoaders []Loader

func init() {
	// Built-in loaders, ordered from most specific to most generic.
	builtinLoaders = []Loader{
		&jsonLoader{},
		&gobLoader{},
		newLineLoader(KindTabTxt, sniffTabTxt, parseTabTxtLine),
	}
}

// RegisterLoader allows external code to add additional Loaders.
// Loaders are consulted in registration order during sniffing.
func RegisterLoader(l Loader) {
	if l == nil {
		return
	}
	builtinLoaders = append(builtinLoaders, l)
}

// selectLoader chooses the first loader whose Sniff method returns true.
func selectLoader(sniff []byte, isEOF bool) Loader {
	for _, l := range builtinLoaders {
		if l.Sniff(sniff, isEOF) {
			return l
		}
	}
	return nil
}

// LoadPaths loads and merges packaged dictionaries from a sequence of
// file paths and returns the immutable Store built from them. Entries
// from later paths are appended after existing ones, de-duplicated on
// (key, pinyin, zhuyin).
func LoadPaths(fsys fs.FS, paths ...string) (*Store, error) {
	ing := newIngest()
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := loadFromFile(fsys, ing, path); err != nil {
			return nil, err
		}
	}
	return ing.finish()
}

// LoadBlobs loads and merges packaged dictionaries from in-memory byte
// slices, with the same merge semantics as LoadPaths.
func LoadBlobs(blobs ...[]byte) (*Store, error) {
	ing := newIngest()
	for _, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		sniff := blob
		isEOF := true
		if len(sniff) > sniffLen {
			sniff = sniff[:sniffLen]
			isEOF = false
		}
		l := selectLoader(sniff, isEOF)
		if l == nil {
			return nil, fmt.Errorf("%w: unrecognized blob format", ErrInvalidSchema)
		}
		if err := runLoader(l, bytes.NewReader(blob), ing); err != nil {
			return nil, err
		}
	}
	return ing.finish()
}

// LoadFiles is the OS-path counterpart of LoadPaths, for callers that
// are not working against an fs.FS (the command line surface).
func LoadFiles(paths ...string) (*Store, error) {
	ing := newIngest()
	for _, path := range paths {
		if path == "" {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		err = sniffAndRun(ing, f, path)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return ing.finish()
}

// loadFromFile opens a file, sniffs its format and runs the matching loader.
func loadFromFile(fsys fs.FS, ing *ingest, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return sniffAndRun(ing, f, path)
}

// sniffAndRun reads the sniff block, selects the loader and ingests the
// remainder of the stream.
func sniffAndRun(ing *ingest, f io.Reader, path string) error {
	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(f, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return fmt.Errorf("sniff %s: %w", path, readErr)
	}
	buf = buf[:n]
	isEOF := readErr == io.EOF || readErr == io.ErrUnexpectedEOF || n == 0

	l := selectLoader(buf, isEOF)
	if l == nil {
		return fmt.Errorf("%w: no loader matched for %s", ErrInvalidSchema, path)
	}

	reader := io.MultiReader(bytes.NewReader(buf), f)
	return runLoader(l, reader, ing)
}

// ingest accumulates entries across sources, de-duplicating candidates
// on (key, pinyin, zhuyin).
type ingest struct {
	entries Dictionary
	seen    map[string]struct{}
}

func newIngest() *ingest {
	return &ingest{
		entries: make(Dictionary, 1<<12),
		seen:    make(map[string]struct{}, 1<<14),
	}
}

func (ing *ingest) emit(key string, cands []Candidate) error {
	if key == "" || len(cands) == 0 {
		return nil
	}
	for _, c := range cands {
		if c.Pinyin == "" && c.Zhuyin == "" {
			continue
		}
		if c.Weight < 0 {
			return fmt.Errorf("%w: negative weight for %q", ErrInvalidSchema, key)
		}
		dupKey := key + "\x00" + c.Pinyin + "\x00" + c.Zhuyin
		if _, ok := ing.seen[dupKey]; ok {
			continue
		}
		ing.seen[dupKey] = struct{}{}
		ing.entries[key] = append(ing.entries[key], c)
	}
	return nil
}

func (ing *ingest) finish() (*Store, error) {
	if len(ing.entries) == 0 {
		return nil, ErrEmptyDictionary
	}
	return NewStore(ing.entries), nil
}

// runLoader executes a loader against a source and feeds the ingest.
func runLoader(l Loader, r io.Reader, ing *ingest) error {
	if err := l.Load(r, ing.emit); err != nil {
		return fmt.Errorf("load (%s): %w", l.Kind(), err)
	}
	return nil
}
