package termgrid

// CursorStyle determines how the cursor is rendered.
type CursorStyle int

const (
	CursorStyleBlinkingBlock CursorStyle = iota
	CursorStyleSteadyBlock
	CursorStyleBlinkingUnderline
	CursorStyleSteadyUnderline
	CursorStyleBlinkingBar
	CursorStyleSteadyBar
)

// Cursor tracks the write position and presentation of the Screen's cursor.
// Line and Column are always page-relative (Line >= 0); a cursor has no
// business pointing into history.
type Cursor struct {
	Line    LineOffset
	Column  ColumnOffset
	Style   CursorStyle
	Visible bool
}

// Screen is the read/write facade a parser sink drives and a renderer or
// selection reads through. It owns the write-path state that does not
// belong to Grid itself: the cursor, the current graphics rendition and
// hyperlink ("pen"), tab stops, and auto-wrap. This is intentionally a thin
// layer: it does not parse escape sequences or decode bytes; a sink
// translates parsed operations into calls against this API.
type Screen struct {
	grid       *Grid
	cursor     Cursor
	pen        GraphicsAttributes
	hyperlink  HyperlinkID
	hyperlinks *HyperlinkTable
	images     *ImageStore
	tabStop    []bool
	autoWrap   bool
}

// ScreenOption configures a Screen at construction.
type ScreenOption func(*Screen)

// WithHyperlinkTable supplies a hyperlink interning table. By default a
// Screen owns a private table; share one explicitly when multiple screens
// (primary/alternate) must resolve the same hyperlink ids.
func WithHyperlinkTable(table *HyperlinkTable) ScreenOption {
	return func(s *Screen) { s.hyperlinks = table }
}

// WithImageStore supplies an image store, for the same sharing reasons as
// WithHyperlinkTable.
func WithImageStore(store *ImageStore) ScreenOption {
	return func(s *Screen) { s.images = store }
}

// WithAutoWrap sets the initial auto-wrap mode (DECAWM). Default is on.
func WithAutoWrap(enabled bool) ScreenOption {
	return func(s *Screen) { s.autoWrap = enabled }
}

// NewScreen wraps grid with cursor and pen-state tracking. Default tab
// stops are set every 8 columns, auto-wrap is enabled, and the hyperlink
// table and image store are freshly allocated unless overridden.
func NewScreen(grid *Grid, opts ...ScreenOption) *Screen {
	_, columns := grid.PageSize()
	s := &Screen{
		grid:       grid,
		cursor:     Cursor{Visible: true},
		hyperlinks: NewHyperlinkTable(),
		images:     NewImageStore(),
		tabStop:    make([]bool, int(columns)),
		autoWrap:   true,
	}
	for i := 0; i < int(columns); i += 8 {
		s.tabStop[i] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the underlying grid.
func (s *Screen) Grid() *Grid { return s.grid }

// Cursor returns the current cursor state.
func (s *Screen) Cursor() Cursor { return s.cursor }

// SetCursorStyle sets the cursor's presentation style.
func (s *Screen) SetCursorStyle(style CursorStyle) { s.cursor.Style = style }

// SetCursorVisible sets whether the cursor should be rendered.
func (s *Screen) SetCursorVisible(visible bool) { s.cursor.Visible = visible }

// MoveCursorTo sets the cursor position, clamped to the page.
func (s *Screen) MoveCursorTo(line LineOffset, column ColumnOffset) {
	pageLines, pageColumns := s.grid.PageSize()
	if line < 0 {
		line = 0
	}
	if line >= LineOffset(pageLines) {
		line = LineOffset(pageLines) - 1
	}
	if column < 0 {
		column = 0
	}
	if column >= ColumnOffset(pageColumns) {
		column = ColumnOffset(pageColumns) - 1
	}
	s.cursor.Line = line
	s.cursor.Column = column
}

// SetGraphicsRendition replaces the pen applied to subsequent writes,
// without touching already-written cells.
func (s *Screen) SetGraphicsRendition(attrs GraphicsAttributes) { s.pen = attrs }

// PenAttributes returns the graphics rendition that will be applied to the
// next write.
func (s *Screen) PenAttributes() GraphicsAttributes { return s.pen }

// SetHyperlink interns uri (OSC 8) and makes it the pen's current
// hyperlink; subsequent writes carry this id until cleared or replaced.
// An empty uri clears the current hyperlink.
func (s *Screen) SetHyperlink(uri, explicitID string) {
	if uri == "" {
		s.hyperlink = ""
		return
	}
	s.hyperlink = s.hyperlinks.Intern(uri, explicitID)
}

// Hyperlinks returns the screen's hyperlink interning table.
func (s *Screen) Hyperlinks() *HyperlinkTable { return s.hyperlinks }

// Images returns the screen's image store.
func (s *Screen) Images() *ImageStore { return s.images }

// WriteGrapheme writes one grapheme cluster (already segmented by the
// caller) at the cursor, applying the current pen and hyperlink, then
// advances the cursor by width columns. If auto-wrap is enabled and the
// cluster would overflow the line, the cursor wraps to the next line first
// (scrolling the page up by one when it is already on the bottom line) and
// that line is marked as a wrapped continuation. With auto-wrap enabled, a
// write that fills the last column leaves the cursor one past it, so the
// next write wraps; with auto-wrap disabled the cursor stays on the last
// column and later writes overwrite it.
func (s *Screen) WriteGrapheme(primary rune, combining []rune, width int) {
	_, pageColumns := s.grid.PageSize()
	if width < 1 {
		width = 1
	}

	if s.autoWrap && int(s.cursor.Column)+width > pageColumns {
		s.wrapToNextLine()
	}

	cell := s.grid.At(s.cursor.Line, s.cursor.Column)
	if cell == nil {
		return
	}
	cell.Write(s.pen, primary, width, s.hyperlink)
	for _, cp := range combining {
		cell.AppendCodepoint(cp)
	}
	cell.MarkDirty()
	s.grid.markDirty()

	if width == 2 {
		if tail := s.grid.At(s.cursor.Line, s.cursor.Column+1); tail != nil {
			tail.MakeWideTail(s.pen)
			tail.MarkDirty()
		}
	}

	s.cursor.Column += ColumnOffset(width)
	if !s.autoWrap && int(s.cursor.Column) >= pageColumns {
		s.cursor.Column = ColumnOffset(pageColumns - 1)
	}
}

func (s *Screen) wrapToNextLine() {
	pageLines, _ := s.grid.PageSize()
	if int(s.cursor.Line)+1 >= int(pageLines) {
		s.grid.ScrollUp(0, int(pageLines), 1)
	} else {
		s.cursor.Line++
	}
	s.cursor.Column = 0
	s.grid.SetLineWrapped(s.cursor.Line, true)
}

// LineFeed moves the cursor down one line, scrolling the page (and feeding
// history) if the cursor is already on the bottom line.
func (s *Screen) LineFeed() {
	pageLines, _ := s.grid.PageSize()
	if int(s.cursor.Line)+1 >= int(pageLines) {
		s.grid.ScrollUp(0, int(pageLines), 1)
		return
	}
	s.cursor.Line++
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() { s.cursor.Column = 0 }

// Resize changes the page size and extends tab stops to match, preserving
// stops within the old width.
func (s *Screen) Resize(lines LineCount, columns ColumnCount) {
	s.grid.Resize(lines, columns)
	newTabStop := make([]bool, int(columns))
	copy(newTabStop, s.tabStop)
	for i := len(s.tabStop); i < int(columns); i += 8 {
		newTabStop[i] = true
	}
	s.tabStop = newTabStop
	s.MoveCursorTo(s.cursor.Line, s.cursor.Column)
}

// SetTabStop enables a tab stop at column.
func (s *Screen) SetTabStop(column int) {
	if column >= 0 && column < len(s.tabStop) {
		s.tabStop[column] = true
	}
}

// ClearTabStop disables the tab stop at column.
func (s *Screen) ClearTabStop(column int) {
	if column >= 0 && column < len(s.tabStop) {
		s.tabStop[column] = false
	}
}

// ClearAllTabStops disables every tab stop.
func (s *Screen) ClearAllTabStops() {
	for i := range s.tabStop {
		s.tabStop[i] = false
	}
}

// NextTabStop returns the first enabled tab stop after column, or the last
// column if there is none.
func (s *Screen) NextTabStop(column int) int {
	for c := column + 1; c < len(s.tabStop); c++ {
		if s.tabStop[c] {
			return c
		}
	}
	return len(s.tabStop) - 1
}

// PrevTabStop returns the first enabled tab stop before column, or 0 if
// there is none.
func (s *Screen) PrevTabStop(column int) int {
	for c := column - 1; c >= 0; c-- {
		if s.tabStop[c] {
			return c
		}
	}
	return 0
}
