package termgrid

import "strings"

// line is one row of the page: a fixed-capacity cell sequence plus the
// wrapped bit recording whether it continues the line above it.
type line struct {
	cells   []Cell
	wrapped bool
}

func newLine(columns int) line {
	return line{cells: make([]Cell, columns)}
}

// Grid is a fixed-width page of cells backed by a bounded scrollback. Lines
// are addressed by LineOffset: 0 is the top of the page, positive values
// descend the page, and negative values reach into history, with -1 the
// most recently scrolled-out line. A LineOffset's identity survives
// scrolling: a line that scrolls out of the page keeps referring to the
// same text, just at a LineOffset one lower than before.
//
// Grid has no internal locking. Per the single-writer concurrency model it
// belongs to, it must only be touched from the one logical thread that owns
// it; a renderer or selection reading concurrently needs external
// synchronisation against that writer.
type Grid struct {
	pageLines   int
	pageColumns int
	page        []line
	history     HistoryStore
	hasDirty    bool
}

// GridOption configures a Grid at construction.
type GridOption func(*Grid)

// WithHistoryStore sets the store used to retain lines scrolled off the
// page. The default is NoopHistoryStore, which retains nothing.
func WithHistoryStore(store HistoryStore) GridOption {
	return func(g *Grid) { g.history = store }
}

// NewGrid creates a page of the given size and, unless WithHistoryStore
// overrides it, no scrollback.
func NewGrid(lines LineCount, columns ColumnCount, opts ...GridOption) *Grid {
	g := &Grid{
		pageLines:   int(lines),
		pageColumns: int(columns),
		page:        make([]line, int(lines)),
		history:     NoopHistoryStore{},
	}
	for i := range g.page {
		g.page[i] = newLine(g.pageColumns)
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PageSize returns the page's fixed dimensions.
func (g *Grid) PageSize() (LineCount, ColumnCount) {
	return LineCount(g.pageLines), ColumnCount(g.pageColumns)
}

// HistoryLineCount returns the number of lines currently retained in
// scrollback.
func (g *Grid) HistoryLineCount() LineCount {
	return LineCount(g.history.Len())
}

// LineCount returns the total addressable line count: history plus page.
func (g *Grid) LineCount() LineCount {
	return g.HistoryLineCount() + LineCount(g.pageLines)
}

func (g *Grid) inColumnBounds(column ColumnOffset) bool {
	return column >= 0 && int(column) < g.pageColumns
}

// At resolves an absolute coordinate to its cell. line must be in
// [-HistoryLineCount(), pageLines) and column in [0, pageColumns); outside
// those bounds, or if the history line has since been evicted, At returns
// nil rather than erroring, per the bounds-violation contract: reads signal
// absence, they never fail.
//
// The returned pointer is only safely mutable when line addresses the live
// page; a pointer into a history line is a detached copy; mutating it has
// no effect on the grid; history is logically frozen once a line has
// scrolled out.
func (g *Grid) At(line LineOffset, column ColumnOffset) *Cell {
	if !g.inColumnBounds(column) {
		return nil
	}
	if line >= 0 {
		idx := int(line)
		if idx >= g.pageLines {
			return nil
		}
		return &g.page[idx].cells[int(column)]
	}

	historyIndex := int(-line) - 1
	hl, ok := g.history.Line(historyIndex)
	if !ok || int(column) >= len(hl.Cells) {
		return nil
	}
	cell := hl.Cells[int(column)].clone()
	return &cell
}

// IsLineWrapped reports whether line continues the line above it. Out of
// range or evicted lines report false.
func (g *Grid) IsLineWrapped(offset LineOffset) bool {
	if offset >= 0 {
		idx := int(offset)
		if idx >= g.pageLines {
			return false
		}
		return g.page[idx].wrapped
	}
	hl, ok := g.history.Line(int(-offset) - 1)
	return ok && hl.Wrapped
}

// SetLineWrapped sets the wrapped bit of a page line. History lines are
// immutable once scrolled out, so this only affects offset >= 0.
func (g *Grid) SetLineWrapped(offset LineOffset, wrapped bool) {
	if offset < 0 {
		return
	}
	idx := int(offset)
	if idx >= g.pageLines {
		return
	}
	g.page[idx].wrapped = wrapped
}

// lineCells returns the cell slice for offset and whether it was found.
// Neither page nor history lines are copied: the slice is the one the grid
// or its history store holds, so callers only read through it.
func (g *Grid) lineCells(offset LineOffset) ([]Cell, bool) {
	if offset >= 0 {
		idx := int(offset)
		if idx >= g.pageLines {
			return nil, false
		}
		return g.page[idx].cells, true
	}
	hl, ok := g.history.Line(int(-offset) - 1)
	if !ok {
		return nil, false
	}
	return hl.Cells, true
}

// LineText concatenates a line's grapheme clusters into a UTF-8 string,
// skipping wide-cell tails, without trimming trailing empty columns.
// Returns "" for an out-of-range or evicted line.
func (g *Grid) LineText(offset LineOffset) string {
	cells, ok := g.lineCells(offset)
	if !ok {
		return ""
	}
	var b strings.Builder
	for i := range cells {
		appendCellText(&b, &cells[i])
	}
	return b.String()
}

// TrimmedLineText is LineText with trailing empty columns removed, the
// form clipboard copies and line-oriented tests generally want.
func (g *Grid) TrimmedLineText(offset LineOffset) string {
	return strings.TrimRight(g.LineText(offset), " ")
}

func appendCellText(b *strings.Builder, c *Cell) {
	if c.IsWideTail() {
		return
	}
	n := c.CodepointCount()
	if n == 0 {
		b.WriteRune(' ')
		return
	}
	for i := 0; i < n; i++ {
		b.WriteRune(c.Codepoint(i))
	}
}

// HasDirty reports whether any page cell has been marked dirty since the
// last ClearDirty.
func (g *Grid) HasDirty() bool { return g.hasDirty }

// markDirty records that some page cell was touched outside of Grid's own
// mutators (namely Screen.WriteGrapheme, which marks the cell itself and
// calls this to keep HasDirty consistent).
func (g *Grid) markDirty() { g.hasDirty = true }

// DirtyLines returns the page-relative offsets of every line containing at
// least one dirty cell, in ascending order. A renderer walks this instead
// of diffing the whole page to find what changed since the last frame.
func (g *Grid) DirtyLines() []LineOffset {
	var dirty []LineOffset
	for i := range g.page {
		for j := range g.page[i].cells {
			if g.page[i].cells[j].IsDirty() {
				dirty = append(dirty, LineOffset(i))
				break
			}
		}
	}
	return dirty
}

// ClearDirty clears the dirty flag on every page cell.
func (g *Grid) ClearDirty() {
	for i := range g.page {
		for j := range g.page[i].cells {
			g.page[i].cells[j].ClearDirty()
		}
	}
	g.hasDirty = false
}

// ClearLine resets every cell of a page line to empty, applying attrs as
// its rendition.
func (g *Grid) ClearLine(offset LineOffset, attrs GraphicsAttributes) {
	g.ClearLineRange(offset, 0, g.pageColumns, attrs)
}

// ClearLineRange resets cells [fromColumn, toColumn) of a page line.
func (g *Grid) ClearLineRange(offset LineOffset, fromColumn, toColumn int, attrs GraphicsAttributes) {
	if offset < 0 || int(offset) >= g.pageLines {
		return
	}
	if fromColumn < 0 {
		fromColumn = 0
	}
	if toColumn > g.pageColumns {
		toColumn = g.pageColumns
	}
	cells := g.page[int(offset)].cells
	for c := fromColumn; c < toColumn; c++ {
		cells[c].ResetWithAttributes(attrs, "")
		cells[c].MarkDirty()
	}
	g.hasDirty = true
}

// ScrollUp shifts the page rows [top, bottom) up by n, pushing the vacated
// rows onto the back. When top == 0, the rows that scroll off are pushed
// into history before being discarded, per the rule that only scrolling at
// the very top of the page feeds scrollback.
func (g *Grid) ScrollUp(top, bottom, n int) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > g.pageLines {
		bottom = g.pageLines
	}
	if n > bottom-top {
		n = bottom - top
	}

	if top == 0 {
		for i := 0; i < n; i++ {
			g.history.Push(HistoryLine{
				Cells:   g.page[i].cells,
				Wrapped: g.page[i].wrapped,
			})
		}
	}

	for row := top; row < bottom-n; row++ {
		g.page[row] = g.page[row+n]
		for col := range g.page[row].cells {
			g.page[row].cells[col].MarkDirty()
		}
	}
	for row := bottom - n; row < bottom; row++ {
		g.page[row] = newLine(g.pageColumns)
		for col := range g.page[row].cells {
			g.page[row].cells[col].MarkDirty()
		}
	}
	g.hasDirty = true
}

// ScrollDown shifts the page rows [top, bottom) down by n, discarding the
// bottom n rows and inserting n blank rows at top. It never touches
// history: scrolling backward never recreates evicted lines.
func (g *Grid) ScrollDown(top, bottom, n int) {
	if n <= 0 || top >= bottom {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom > g.pageLines {
		bottom = g.pageLines
	}
	if n > bottom-top {
		n = bottom - top
	}

	for row := bottom - 1; row >= top+n; row-- {
		g.page[row] = g.page[row-n]
		for col := range g.page[row].cells {
			g.page[row].cells[col].MarkDirty()
		}
	}
	for row := top; row < top+n; row++ {
		g.page[row] = newLine(g.pageColumns)
		for col := range g.page[row].cells {
			g.page[row].cells[col].MarkDirty()
		}
	}
	g.hasDirty = true
}

// InsertLines inserts n blank lines at row, pushing the lines from row to
// bottom down and discarding the ones that fall off the bottom.
func (g *Grid) InsertLines(row, n, bottom int) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	g.ScrollDown(row, bottom, n)
}

// DeleteLines removes n lines at row, pulling the lines below up to fill
// the gap.
func (g *Grid) DeleteLines(row, n, bottom int) {
	if row < 0 || row >= bottom || n <= 0 {
		return
	}
	g.ScrollUp(row, bottom, n)
}

// InsertBlanks inserts n blank cells at (row, col), shifting the rest of
// the row right and dropping whatever falls off the right edge.
func (g *Grid) InsertBlanks(row, col, n int, attrs GraphicsAttributes) {
	if row < 0 || row >= g.pageLines || col < 0 || col >= g.pageColumns || n <= 0 {
		return
	}
	cells := g.page[row].cells
	for c := g.pageColumns - 1; c >= col+n; c-- {
		cells[c] = cells[c-n].clone()
		cells[c].MarkDirty()
	}
	for c := col; c < col+n && c < g.pageColumns; c++ {
		cells[c].ResetWithAttributes(attrs, "")
		cells[c].MarkDirty()
	}
	g.hasDirty = true
}

// DeleteChars removes n cells at (row, col), shifting the rest of the row
// left and filling the vacated right edge with blanks.
func (g *Grid) DeleteChars(row, col, n int, attrs GraphicsAttributes) {
	if row < 0 || row >= g.pageLines || col < 0 || col >= g.pageColumns || n <= 0 {
		return
	}
	cells := g.page[row].cells
	for c := col; c < g.pageColumns-n; c++ {
		cells[c] = cells[c+n].clone()
		cells[c].MarkDirty()
	}
	for c := g.pageColumns - n; c < g.pageColumns; c++ {
		if c >= 0 {
			cells[c].ResetWithAttributes(attrs, "")
			cells[c].MarkDirty()
		}
	}
	g.hasDirty = true
}

// Resize changes the page dimensions, keeping existing content anchored at
// the top-left corner. Growing adds blank cells/rows; shrinking discards
// whatever no longer fits. It does not touch history.
func (g *Grid) Resize(lines LineCount, columns ColumnCount) {
	newLines, newColumns := int(lines), int(columns)
	if newLines <= 0 || newColumns <= 0 {
		return
	}

	newPage := make([]line, newLines)
	for i := range newPage {
		newPage[i] = newLine(newColumns)
		if i < g.pageLines {
			n := g.pageColumns
			if newColumns < n {
				n = newColumns
			}
			for j := 0; j < n; j++ {
				newPage[i].cells[j] = g.page[i].cells[j].clone()
			}
			newPage[i].wrapped = g.page[i].wrapped
		}
		for j := range newPage[i].cells {
			newPage[i].cells[j].MarkDirty()
		}
	}

	g.page = newPage
	g.pageLines = newLines
	g.pageColumns = newColumns
	g.hasDirty = true
}

// GrowRows appends n blank rows to the bottom of the page.
func (g *Grid) GrowRows(n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		row := newLine(g.pageColumns)
		for j := range row.cells {
			row.cells[j].MarkDirty()
		}
		g.page = append(g.page, row)
	}
	g.pageLines += n
	g.hasDirty = true
}

// GrowCols widens the page to at least minColumns, extending every
// existing row with blank cells. Does nothing if the page is already at
// least that wide.
func (g *Grid) GrowCols(minColumns int) {
	if minColumns <= g.pageColumns {
		return
	}
	for i := range g.page {
		extended := make([]Cell, minColumns)
		copy(extended, g.page[i].cells)
		for j := len(g.page[i].cells); j < minColumns; j++ {
			extended[j].MarkDirty()
		}
		g.page[i].cells = extended
	}
	g.pageColumns = minColumns
	g.hasDirty = true
}

// ClearScrollback discards every retained history line.
func (g *Grid) ClearScrollback() {
	g.history.Clear()
}

// Accessor returns a CellAccessor bound to this grid, for constructing a
// Selection over it.
func (g *Grid) Accessor() CellAccessor {
	return func(line LineOffset, column ColumnOffset) (*Cell, bool) {
		cell := g.At(line, column)
		if cell == nil {
			return nil, false
		}
		return cell, true
	}
}

// WrapPredicate returns a WrapPredicate bound to this grid, for
// constructing a Selection over it.
func (g *Grid) WrapPredicate() WrapPredicate {
	return g.IsLineWrapped
}
