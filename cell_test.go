package termgrid

import (
	"testing"
)

func TestNewCell(t *testing.T) {
	cell := NewCell()

	if cell.CodepointCount() != 0 {
		t.Errorf("expected empty cell, got codepoint count %d", cell.CodepointCount())
	}
	if !cell.Empty() {
		t.Error("expected empty cell")
	}
	if cell.Fg() != (Color{}) {
		t.Error("expected default foreground")
	}
	if cell.Flags() != 0 {
		t.Error("expected no flags")
	}
}

func TestCellWrite(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{Fg: MakeTrueColor(255, 0, 0)}, 'A', 1, "")

	if cell.Codepoint(0) != 'A' {
		t.Errorf("expected 'A', got %q", cell.Codepoint(0))
	}
	if cell.Width() != 1 {
		t.Errorf("expected width 1, got %d", cell.Width())
	}
	if cell.Empty() {
		t.Error("expected non-empty cell after write")
	}
}

func TestCellReset(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{}, 'A', 1, "")
	cell.SetFlag(FlagBold)

	cell.Reset()

	if !cell.Empty() {
		t.Error("expected empty cell after reset")
	}
	if cell.HasFlag(FlagBold) {
		t.Error("expected no flags after reset")
	}
}

func TestCellFlags(t *testing.T) {
	var cell Cell

	cell.SetFlag(FlagBold)
	if !cell.HasFlag(FlagBold) {
		t.Error("expected bold flag")
	}

	cell.SetFlag(FlagItalic)
	if !cell.HasFlag(FlagBold) || !cell.HasFlag(FlagItalic) {
		t.Error("expected both flags")
	}

	cell.ClearFlag(FlagBold)
	if cell.HasFlag(FlagBold) {
		t.Error("expected bold flag to be cleared")
	}
	if !cell.HasFlag(FlagItalic) {
		t.Error("expected italic flag to remain")
	}
}

func TestCellFlagsCompactAway(t *testing.T) {
	var cell Cell
	cell.SetFlag(FlagBold)
	cell.ClearFlag(FlagBold)

	if cell.extra != nil {
		t.Error("expected extras to compact away once back to default")
	}
}

func TestCellDirty(t *testing.T) {
	var cell Cell

	if cell.IsDirty() {
		t.Error("expected cell not dirty initially")
	}

	cell.MarkDirty()
	if !cell.IsDirty() {
		t.Error("expected cell to be dirty")
	}

	cell.ClearDirty()
	if cell.IsDirty() {
		t.Error("expected cell not dirty after clear")
	}
}

func TestCellWide(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{}, '中', 2, "")
	if !cell.IsWide() {
		t.Error("expected cell to be wide")
	}

	var tail Cell
	tail.MakeWideTail(GraphicsAttributes{})
	if !tail.IsWideTail() {
		t.Error("expected cell to be a wide tail")
	}
	if !tail.Empty() {
		t.Error("expected wide tail to carry no content")
	}
}

func TestCellClone(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{Flags: FlagBold | FlagItalic}, 'X', 1, "")

	cloned := cell.clone()

	if cloned.Codepoint(0) != 'X' {
		t.Errorf("expected 'X', got %q", cloned.Codepoint(0))
	}
	if !cloned.HasFlag(FlagBold) || !cloned.HasFlag(FlagItalic) {
		t.Error("expected flags to be copied")
	}

	cell.SetFlag(FlagUnderline)
	if cloned.HasFlag(FlagUnderline) {
		t.Error("clone should be independent of the original's later mutations")
	}
}

func TestCellAppendCodepoint(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{}, 'e', 1, "")

	delta := cell.AppendCodepoint(0x0301) // combining acute accent
	if delta != 0 {
		t.Errorf("expected no width change combining onto narrow base, got %d", delta)
	}
	if cell.CodepointCount() != 2 {
		t.Errorf("expected 2 codepoints, got %d", cell.CodepointCount())
	}
	if cell.Codepoint(1) != 0x0301 {
		t.Errorf("expected combining accent at index 1, got %q", cell.Codepoint(1))
	}
}

func TestCellAppendCodepointRejectsNonCombining(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{}, 'A', 1, "")

	delta := cell.AppendCodepoint('B')
	if delta != 0 {
		t.Error("expected rejection of a second independent letter")
	}
	if cell.CodepointCount() != 1 {
		t.Errorf("expected cell to remain a single codepoint, got %d", cell.CodepointCount())
	}
}

func TestCellHyperlink(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{}, 'X', 1, "link-1")

	if cell.Hyperlink() != "link-1" {
		t.Errorf("expected link-1, got %q", cell.Hyperlink())
	}

	cell.SetHyperlink("")
	if cell.Hyperlink() != "" {
		t.Error("expected hyperlink cleared")
	}
}

func TestCellUnderlineColor(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{
		UnderlineColor:    MakeTrueColor(1, 2, 3),
		HasUnderlineColor: true,
	}, 'X', 1, "")

	color, ok := cell.UnderlineColor()
	if !ok {
		t.Fatal("expected an explicit underline color")
	}
	if color != MakeTrueColor(1, 2, 3) {
		t.Errorf("unexpected underline color %+v", color)
	}
}

func TestCellSetGraphicsRenditionPreservesContent(t *testing.T) {
	var cell Cell
	cell.Write(GraphicsAttributes{Flags: FlagBold}, 'X', 1, "")

	cell.SetGraphicsRendition(GraphicsAttributes{Flags: FlagItalic})

	if cell.Codepoint(0) != 'X' {
		t.Error("expected codepoint to survive a rendition change")
	}
	if cell.HasFlag(FlagBold) {
		t.Error("expected bold replaced, not merged")
	}
	if !cell.HasFlag(FlagItalic) {
		t.Error("expected italic applied")
	}
}
