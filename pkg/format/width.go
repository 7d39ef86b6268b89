package format

import "golang.org/x/text/width"

// displayWidth returns the terminal column count of a string: East
// Asian wide and fullwidth runes occupy two columns, everything else
// one. The rows shape aligns its two lines with it.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
