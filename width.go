package termgrid

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// clusterWidth returns the display width of a full grapheme cluster: a
// primary codepoint plus any combining codepoints extending it. Combining
// marks on their own measure zero width, so a cluster's width is not simply
// the sum of its parts; it is measured over the whole cluster and clamped
// to the 1-2 column range a terminal cell can occupy.
func clusterWidth(primary rune, continuation []rune) int {
	if primary == 0 {
		return 0
	}
	if len(continuation) == 0 {
		if w := runeWidth(primary); w > 0 {
			return w
		}
		return 1
	}

	cluster := make([]rune, 0, 1+len(continuation))
	cluster = append(cluster, primary)
	cluster = append(cluster, continuation...)

	w := StringWidth(string(cluster))
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	default:
		return w
	}
}
