// Package termgrid provides the cell, grid, and selection model behind a
// terminal emulator's display: a memory-aware cell representation, a
// scrollback-backed grid addressed by absolute line offsets, and a
// four-mode selection state machine over it.
//
// This package does not parse control sequences, read a PTY, or render
// anything. It is the data plane a VT/ANSI parser writes into (through
// [Screen]) and a renderer or interactive selector reads back out of.
//
// # Quick Start
//
//	grid := termgrid.NewGrid(24, 80, termgrid.WithHistoryStore(
//		termgrid.NewMemoryHistoryStore(10000),
//	))
//	screen := termgrid.NewScreen(grid)
//	screen.WriteGrapheme('H', nil, 1)
//	screen.WriteGrapheme('i', nil, 1)
//	fmt.Println(grid.TrimmedLineText(0)) // "Hi"
//
// # Architecture
//
//   - [Cell]: one grid position — a grapheme cluster plus its rendition
//   - [Grid]: a fixed-size page plus bounded scrollback, addressed by
//     [LineOffset]
//   - [Screen]: the read/write facade a parser sink drives (cursor, pen,
//     tab stops, auto-wrap) — Grid itself has no notion of a cursor
//   - [Selection]: a four-mode selection state machine over Grid
//     coordinates
//
// # Coordinates
//
// [LineOffset] is signed and absolute: 0 is the top of the live page,
// positive values descend the page, and negative values reach into
// scrollback, with -1 the most recently scrolled-out line. A LineOffset's
// identity survives scrolling — a line that scrolls out of the page keeps
// referring to the same text, just at a LineOffset one lower than before —
// so a [Selection] built against one grid snapshot stays valid as more
// output arrives, up to eviction from history.
//
// # Cells
//
// Each cell carries a primary codepoint, up to six combining codepoints
// forming one grapheme cluster, a display width, foreground/background
// [Color], a [CellFlags] bitmask, an optional underline color, an optional
// [HyperlinkID], and an optional [ImageFragment]. Only the primary
// codepoint and the two colors live inline; everything else lives behind a
// lazily allocated block, so a plain ASCII cell with no decoration stays
// small:
//
//	var cell termgrid.Cell
//	cell.Write(termgrid.GraphicsAttributes{Flags: termgrid.FlagBold}, 'A', 1, "")
//	cell.AppendCodepoint(0x0301) // combining acute accent
//
// # Colors
//
// [Color] is a tagged sum of default, 256-color palette index, and 24-bit
// truecolor. [Color.Resolve] converts any variant to a concrete
// [image/color.RGBA] given whether it is being used as foreground or
// background; [Color.Dim] derives the faint (SGR 2) variant by blending
// toward black in Lab space rather than scaling RGB channels directly, so
// hue holds steady as luminance drops.
//
// # Grid and Scrollback
//
// [Grid] holds a fixed pageLines x pageColumns page and an optional
// [HistoryStore] for scrollback. [Grid.At] is a total function over the
// addressable coordinate space: out-of-range or since-evicted coordinates
// return nil rather than erroring, per this package's bounds-violation
// discipline — reads signal absence, they never fail.
//
// Scrolling, resizing, and line insert/delete preserve the invariant that a
// wide cell's right neighbour is a content-less tail cell
// ([Cell.IsWideTail]); callers iterating columns should skip tails to avoid
// double-counting a wide character.
//
// # Screen
//
// [Screen] wraps a [Grid] with the write-side state a parser sink needs
// but a grid has no business owning: [Cursor] position and style, the
// current graphics rendition ("pen"), tab stops, auto-wrap, a
// [HyperlinkTable], and an [ImageStore]. [Screen.WriteGrapheme] applies the
// pen and current hyperlink to the cell under the cursor and advances it,
// wrapping to the next line (and scrolling, if already on the last one)
// when auto-wrap is enabled and the next cluster would overflow.
//
// # Hyperlinks and Images
//
// Cells do not own the data behind an OSC 8 hyperlink or an inline image;
// they hold an opaque [HyperlinkID] or [ImageFragment] referencing a
// [HyperlinkTable] or [ImageStore] that must outlive every cell
// referencing it. Both are instance-scoped — never global state — and are
// shared across screens only by explicitly passing the same table or store
// via [WithHyperlinkTable] / [WithImageStore].
//
// # Selection
//
// [Selection] is constructed against a cell accessor and a wrap predicate
// rather than a concrete Grid, so it can be tested or driven by any
// backing store:
//
//	sel := termgrid.NewSelection(
//		termgrid.Linear, grid.Accessor(), grid.WrapPredicate(),
//		nil, grid.LineCount(), columns, anchor,
//	)
//	sel.Extend(line, column)
//	sel.Stop()
//	for _, r := range sel.Ranges() {
//		// r.Line, r.FromColumn, r.ToColumn
//	}
//	text := sel.Text()
//
// Four modes are supported: [Linear] (contiguous run, wraps at line ends),
// [LinearWordWise] (snaps both ends to word boundaries against a
// caller-supplied delimiter set), [FullLine] (whole logical lines, joining
// wrapped continuations), and [Rectangular] (column-aligned block,
// independent of wrapping). A selection progresses Waiting -> InProgress ->
// Complete; [Selection.Extend] is a no-op once Complete.
//
// # Concurrency
//
// Nothing in this package is internally thread-safe. The intended model is
// single-threaded cooperative: one logical writer (a parser sink driving
// [Screen]) owns the grid, and readers ([Selection], a renderer) observe a
// consistent state only between writer quiescence points. Callers running a
// renderer on a separate thread must provide their own synchronisation
// around "process input batch" versus "snapshot for frame".
package termgrid
