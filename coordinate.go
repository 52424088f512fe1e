package termgrid

// LineOffset addresses a line relative to the top of the live page. Zero is
// the first page line; positive values address further down the page;
// negative values address scrollback, with -1 the newest history line.
// A LineOffset's identity is stable across scrolling: when a line scrolls
// from the page into history its LineOffset decreases by one, but it still
// refers to the same textual content.
type LineOffset int32

// ColumnOffset addresses a column, 0-based, bounded by the grid's column count.
type ColumnOffset int32

// LineCount is a count of lines (a dimensional scalar, never an address).
type LineCount int32

// ColumnCount is a count of columns (a dimensional scalar, never an address).
type ColumnCount int32

// Coordinate is a (line, column) position. Coordinates order lexicographically:
// line first, then column.
type Coordinate struct {
	Line   LineOffset
	Column ColumnOffset
}

// Compare returns -1, 0, or 1 as c orders before, equal to, or after other.
func (c Coordinate) Compare(other Coordinate) int {
	if c.Line != other.Line {
		if c.Line < other.Line {
			return -1
		}
		return 1
	}
	if c.Column != other.Column {
		if c.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c orders strictly before other.
func (c Coordinate) Less(other Coordinate) bool {
	return c.Compare(other) < 0
}

// Equal reports whether c and other address the same position.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Line == other.Line && c.Column == other.Column
}
