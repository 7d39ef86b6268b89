package annotate

import "fmt"

// OutputFormat selects one of the supported rendering shapes.
type OutputFormat string

const (
	FormatInline     OutputFormat = "inline"
	FormatStructured OutputFormat = "structured"
	FormatBrackets   OutputFormat = "brackets"
	FormatRuby       OutputFormat = "ruby"
	FormatTable      OutputFormat = "table"
	FormatRows       OutputFormat = "rows"
)

// Style selects which reading(s) a rendered annotation carries.
type Style string

const (
	StylePinyin Style = "pinyin"
	StyleZhuyin Style = "zhuyin"
	StyleBoth   Style = "both"
)

// Config holds the request-scoped annotation settings. A Config is
// never mutated by the engine; the same value can be reused across any
// number of calls.
type Config struct {
	OutputFormat OutputFormat

	Style Style

	// ConfidenceThreshold gates annotation: segments whose confidence
	// falls strictly below it are reported unannotated. Out-of-range
	// values are clamped to [0,1] rather than rejected.
	ConfidenceThreshold float64

	ShowAlternatives bool
	ShowConfidence   bool

	// UseTraditional prefers traditional-tagged readings. When false,
	// the engine auto-detects the input script and otherwise prefers
	// simplified readings.
	UseTraditional bool
}

// DefaultConfig mirrors the defaults of the command line surface.
func DefaultConfig() Config {
	return Config{
		OutputFormat:        FormatInline,
		Style:               StylePinyin,
		ConfidenceThreshold: 0.3,
	}
}

// Validate rejects unknown format or style values. It runs before any
// annotation work so that a bad configuration never reaches rendering.
func (c Config) Validate() error {
	switch c.OutputFormat {
	case FormatInline, FormatStructured, FormatBrackets, FormatRuby, FormatTable, FormatRows:
	default:
		return fmt.Errorf("annotate: unsupported output format %q", c.OutputFormat)
	}
	switch c.Style {
	case StylePinyin, StyleZhuyin, StyleBoth:
	default:
		return fmt.Errorf("annotate: unsupported style %q", c.Style)
	}
	return nil
}

// threshold returns the confidence threshold clamped to [0,1].
func (c Config) threshold() float64 {
	switch {
	case c.ConfidenceThreshold < 0:
		return 0
	case c.ConfidenceThreshold > 1:
		return 1
	}
	return c.ConfidenceThreshold
}
