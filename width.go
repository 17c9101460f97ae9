package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of r: 2 for wide characters
// (CJK, emoji), 1 for normal, 0 for zero-width (combining marks,
// control codes). Used by the print algorithm's §4.5 step 3.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune reports whether r occupies two display columns.
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}
