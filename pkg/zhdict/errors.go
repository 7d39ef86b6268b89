package zhdict

import "errors"

// Load failures are split into three families so that callers can react
// differently to a missing file, a corrupt one, and one that parsed but
// contains nothing usable. File-access problems are returned wrapped, so
// errors.Is(err, fs.ErrNotExist) works for the missing-file case.
var (
	// ErrInvalidSchema reports a source that was readable but does not
	// follow the packaged dictionary contract (wrong shape, bad script
	// tag, negative weight, truncated payload).
	ErrInvalidSchema = errors.New("zhdict: invalid dictionary schema")

	// ErrEmptyDictionary reports a source that parsed cleanly but
	// yielded no entries. The engine refuses to run on it.
	ErrEmptyDictionary = errors.New("zhdict: empty dictionary")
)
