package termgrid

import "github.com/rivo/uniseg"

// CellFlags is a bitmask of SGR rendering attributes carried by a Cell.
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagFaint
	FlagItalic
	FlagUnderline
	FlagBlink
	FlagInverse
	FlagHidden
	FlagCrossedOut
	FlagDoubleUnderline
	FlagCurlyUnderline
	FlagDottedUnderline
	FlagDashedUnderline
	FlagFramed
	FlagEncircled
	FlagOverline
	// FlagDirty is not an SGR attribute; the grid sets it to track which
	// cells changed since the last render so a consumer can repaint
	// incrementally instead of redrawing the whole page every frame.
	FlagDirty
)

// Has reports whether every flag in test is set in f.
func (f CellFlags) Has(test CellFlags) bool { return f&test == test }

// maxCodepoints is the largest grapheme cluster a Cell can hold: the primary
// codepoint plus up to 6 combining codepoints.
const maxCodepoints = 7

// GraphicsAttributes bundles the SGR state a Write or a bare attribute reset
// applies to a cell: the two colors, the flag set, and an optional explicit
// underline color. It is the rendition half of what a Cell stores; the
// grapheme content is the other half.
type GraphicsAttributes struct {
	Fg                Color
	Bg                Color
	Flags             CellFlags
	UnderlineColor    Color
	HasUnderlineColor bool
}

// cellExtra holds the rarely-needed parts of a Cell's state: the combining
// codepoints beyond the primary one, a non-default underline color, an
// explicit width, a hyperlink reference and an image fragment. Most cells in
// a terminal are a single narrow US-ASCII codepoint with no decoration, so
// keeping this data behind a pointer keeps the common Cell small.
type cellExtra struct {
	continuation      []rune
	width             uint8
	flags             CellFlags
	underlineColor    Color
	hasUnderlineColor bool
	hyperlink         HyperlinkID
	image             *ImageFragment
}

func (e *cellExtra) isDefault() bool {
	return len(e.continuation) == 0 &&
		e.width == 1 &&
		e.flags == 0 &&
		!e.hasUnderlineColor &&
		e.hyperlink == "" &&
		e.image == nil
}

func (e cellExtra) clone() *cellExtra {
	e.continuation = append([]rune(nil), e.continuation...)
	return &e
}

// Cell is one grid position: a grapheme cluster together with its graphics
// rendition. Codepoint and the two colors are stored inline; everything
// else that a typical cell never uses lives behind the extra pointer, which
// is nil for the overwhelming majority of cells a terminal ever writes.
type Cell struct {
	codepoint rune
	fg        Color
	bg        Color
	extra     *cellExtra
}

// NewCell returns an empty, default-colored, narrow cell. It is equivalent
// to the zero value; it exists so callers have a named constructor to reach
// for, matching the rest of this package's API.
func NewCell() Cell { return Cell{} }

// clone returns a copy of c whose extra block, if any, does not alias c's.
// Every place a Cell is duplicated into another slot that may later be
// mutated independently (scrolling, insert/delete, resize) must go through
// clone instead of a bare assignment, or the two cells' extras would share
// state behind the caller's back.
func (c Cell) clone() Cell {
	if c.extra == nil {
		return c
	}
	c.extra = c.extra.clone()
	return c
}

func (c *Cell) ensureExtra() *cellExtra {
	if c.extra == nil {
		c.extra = &cellExtra{width: 1}
	}
	return c.extra
}

func (c *Cell) compact() {
	if c.extra != nil && c.extra.isDefault() {
		c.extra = nil
	}
}

// Reset clears c to the default empty cell: no content, default colors, no
// flags, no hyperlink, no image.
func (c *Cell) Reset() {
	c.codepoint = 0
	c.fg = Color{}
	c.bg = Color{}
	c.extra = nil
}

// ResetWithAttributes clears c's content but applies attrs as the cell's
// rendition, as when an erase operation fills cells with the cursor's
// current graphics state rather than the terminal default.
func (c *Cell) ResetWithAttributes(attrs GraphicsAttributes, hyperlink HyperlinkID) {
	c.codepoint = 0
	c.fg = attrs.Fg
	c.bg = attrs.Bg
	c.extra = nil
	c.applyAttributes(attrs, hyperlink)
	c.compact()
}

// Write sets c's content to a single grapheme cluster's primary codepoint,
// its display width, and its rendition in one step. Call AppendCodepoint
// afterward for each further combining codepoint in the cluster.
func (c *Cell) Write(attrs GraphicsAttributes, codepoint rune, width int, hyperlink HyperlinkID) {
	c.codepoint = codepoint
	c.fg = attrs.Fg
	c.bg = attrs.Bg
	c.extra = nil
	if width != 1 {
		c.ensureExtra().width = uint8(width)
	}
	c.applyAttributes(attrs, hyperlink)
	c.compact()
}

func (c *Cell) applyAttributes(attrs GraphicsAttributes, hyperlink HyperlinkID) {
	if attrs.Flags != 0 {
		c.ensureExtra().flags = attrs.Flags
	}
	if attrs.HasUnderlineColor {
		e := c.ensureExtra()
		e.underlineColor = attrs.UnderlineColor
		e.hasUnderlineColor = true
	}
	if hyperlink != "" {
		c.ensureExtra().hyperlink = hyperlink
	}
}

// SetGraphicsRendition replaces c's rendition (colors, flags, underline
// color) without touching its content, codepoint, or image fragment. This
// is what a bare SGR sequence applies to the cursor's template cell before
// the next Write, and it is also applied directly to cells for operations
// that recolor already-written content in place.
func (c *Cell) SetGraphicsRendition(attrs GraphicsAttributes) {
	c.fg = attrs.Fg
	c.bg = attrs.Bg
	if c.extra != nil {
		c.extra.flags = 0
		c.extra.hasUnderlineColor = false
	}
	c.applyAttributes(attrs, "")
	c.compact()
}

// Codepoint returns the i-th codepoint of the cell's grapheme cluster (0 is
// the primary codepoint). Returns 0 if i is out of range.
func (c *Cell) Codepoint(i int) rune {
	if i == 0 {
		return c.codepoint
	}
	if c.extra == nil {
		return 0
	}
	j := i - 1
	if j < 0 || j >= len(c.extra.continuation) {
		return 0
	}
	return c.extra.continuation[j]
}

// CodepointCount returns how many codepoints make up the cell's grapheme
// cluster. An empty cell has a count of 0.
func (c *Cell) CodepointCount() int {
	if c.codepoint == 0 {
		return 0
	}
	if c.extra == nil {
		return 1
	}
	return 1 + len(c.extra.continuation)
}

func (c *Cell) clusterRunes() []rune {
	if c.codepoint == 0 {
		return nil
	}
	runes := make([]rune, 0, maxCodepoints)
	runes = append(runes, c.codepoint)
	if c.extra != nil {
		runes = append(runes, c.extra.continuation...)
	}
	return runes
}

// AppendCodepoint extends the cell's grapheme cluster with one more
// combining codepoint, if doing so still forms a single grapheme cluster
// and the cluster has not already reached its maximum length. Returns the
// resulting change in the cell's display width (0, +1 or -1), which the
// caller applies to any cells following it, since a cluster extension can
// change a cell from narrow to wide.
func (c *Cell) AppendCodepoint(codepoint rune) int {
	contLen := 0
	if c.extra != nil {
		contLen = len(c.extra.continuation)
	}
	if c.codepoint == 0 || contLen >= maxCodepoints-1 {
		return 0
	}

	cluster := append(c.clusterRunes(), codepoint)
	full := string(cluster)
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(full, -1)
	if rest != "" {
		return 0
	}

	oldWidth := c.Width()
	e := c.ensureExtra()
	e.continuation = append(e.continuation, codepoint)
	newWidth := clusterWidth(c.codepoint, e.continuation)
	e.width = uint8(newWidth)
	c.compact()
	return newWidth - oldWidth
}

// Width returns the cell's display width in columns: 1 for narrow
// codepoints, 2 for wide ones, 0 for the trailing cell of a wide character.
func (c *Cell) Width() int {
	if c.extra == nil {
		return 1
	}
	return int(c.extra.width)
}

// Empty reports whether the cell carries no content: no codepoint and no
// image fragment. A cell with only a non-default background color is still
// empty under this definition; Empty asks about text content, not paint.
func (c *Cell) Empty() bool {
	return c.codepoint == 0 && !c.HasImage()
}

// Fg returns the cell's foreground color.
func (c *Cell) Fg() Color { return c.fg }

// Bg returns the cell's background color.
func (c *Cell) Bg() Color { return c.bg }

// UnderlineColor returns the cell's explicit underline color, if any. When
// ok is false the underline, if drawn, uses the foreground color instead.
func (c *Cell) UnderlineColor() (color Color, ok bool) {
	if c.extra == nil || !c.extra.hasUnderlineColor {
		return Color{}, false
	}
	return c.extra.underlineColor, true
}

// Flags returns the cell's rendition flags.
func (c *Cell) Flags() CellFlags {
	if c.extra == nil {
		return 0
	}
	return c.extra.flags
}

// HasFlag reports whether flag is set on the cell.
func (c *Cell) HasFlag(flag CellFlags) bool { return c.Flags()&flag != 0 }

// SetFlag sets flag on the cell, in addition to whatever is already set.
func (c *Cell) SetFlag(flag CellFlags) {
	c.ensureExtra().flags |= flag
}

// ClearFlag clears flag on the cell.
func (c *Cell) ClearFlag(flag CellFlags) {
	if c.extra == nil {
		return
	}
	c.extra.flags &^= flag
	c.compact()
}

// IsDirty reports whether the cell has been marked dirty since the last
// ClearDirty.
func (c *Cell) IsDirty() bool { return c.HasFlag(FlagDirty) }

// MarkDirty flags the cell as changed.
func (c *Cell) MarkDirty() { c.SetFlag(FlagDirty) }

// ClearDirty clears the cell's dirty flag.
func (c *Cell) ClearDirty() { c.ClearFlag(FlagDirty) }

// Hyperlink returns the id of the hyperlink covering this cell, or the zero
// HyperlinkID if none.
func (c *Cell) Hyperlink() HyperlinkID {
	if c.extra == nil {
		return ""
	}
	return c.extra.hyperlink
}

// SetHyperlink sets the cell's hyperlink reference.
func (c *Cell) SetHyperlink(id HyperlinkID) {
	if id == "" {
		if c.extra != nil {
			c.extra.hyperlink = ""
			c.compact()
		}
		return
	}
	c.ensureExtra().hyperlink = id
}

// HasImage reports whether the cell carries an image fragment.
func (c *Cell) HasImage() bool { return c.extra != nil && c.extra.image != nil }

// ImageFragment returns the cell's image fragment reference, or nil.
func (c *Cell) ImageFragment() *ImageFragment {
	if c.extra == nil {
		return nil
	}
	return c.extra.image
}

// SetImageFragment attaches an image fragment reference to the cell,
// rendered above any text content it also carries.
func (c *Cell) SetImageFragment(fragment *ImageFragment) {
	if fragment == nil {
		if c.extra != nil {
			c.extra.image = nil
			c.compact()
		}
		return
	}
	c.ensureExtra().image = fragment
}

// IsWide reports whether this cell is the leading cell of a double-width
// character.
func (c *Cell) IsWide() bool { return c.Width() == 2 }

// IsWideTail reports whether this cell is the trailing, content-less half
// of a double-width character occupying the previous column.
func (c *Cell) IsWideTail() bool { return c.codepoint == 0 && c.extra != nil && c.extra.width == 0 }

// MakeWideTail turns c into the trailing half of a wide character: empty of
// content but otherwise carrying the preceding cell's rendition, so
// deleting or overwriting only the lead cell still paints correctly.
func (c *Cell) MakeWideTail(attrs GraphicsAttributes) {
	c.codepoint = 0
	c.fg = attrs.Fg
	c.bg = attrs.Bg
	c.extra = nil
	c.ensureExtra().width = 0
	c.applyAttributes(attrs, "")
}
