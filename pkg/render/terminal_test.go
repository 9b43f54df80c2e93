package render

import (
	"image"
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalPresenterSize(t *testing.T) {
	tp := NewTerminalPresenter(80, 24, 2)
	if got := tp.Size(); got != image.Pt(160, 96) {
		t.Errorf("size = %v, want 160x96", got)
	}
	tp.Resize(0, 0)
	if got := tp.Size(); got != image.Pt(2, 4) {
		t.Errorf("size after empty resize = %v, want 2x4", got)
	}
}

func TestTerminalPresenterDraw(t *testing.T) {
	tp := NewTerminalPresenter(10, 4, 2)
	tp.Clear(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	tp.FillPolygon([]image.Point{{0, 0}, {20, 0}, {20, 8}, {0, 8}}, color.NRGBA{R: 255, A: 255})
	tp.Text(image.Pt(4, 13), "hi", Font{Bold: true}, color.White)

	scr := uv.NewScreenBuffer(10, 4)
	tp.Draw(scr, scr.Bounds())

	top := scr.CellAt(5, 0)
	if top == nil || top.Content != "▀" {
		t.Fatalf("cell (5,0) = %+v, want half block", top)
	}
	if r, _, _, _ := top.Style.Fg.RGBA(); r>>8 != 255 {
		t.Errorf("top pixel red = %d, want 255", r>>8)
	}

	// Baseline 13 on a 4px cell row lands on row 3, x 4 on column 2.
	if c := scr.CellAt(2, 3); c == nil || c.Content != "h" || c.Style.Attrs&uv.AttrBold == 0 {
		t.Errorf("cell (2,3) = %+v, want bold h", c)
	}
	if c := scr.CellAt(3, 3); c == nil || c.Content != "i" {
		t.Errorf("cell (3,3) = %+v, want i", c)
	}
}

func TestTerminalPresenterLogicalWidth(t *testing.T) {
	tp := NewTerminalPresenter(10, 4, 2)
	tp.SetLogicalWidth(80)
	if got := tp.Size(); got != image.Pt(80, 64) {
		t.Errorf("logical size = %v, want 80x64", got)
	}

	tp.Clear(color.Black)
	tp.Text(image.Pt(40, 60), "x", Font{}, color.White)
	scr := uv.NewScreenBuffer(10, 4)
	tp.Draw(scr, scr.Bounds())
	// (40,60) maps to canvas (10,15): column 5, row 3.
	if c := scr.CellAt(5, 3); c == nil || c.Content != "x" {
		t.Errorf("cell (5,3) = %+v, want x", c)
	}

	tp.SetLogicalWidth(0)
	if got := tp.Size(); got != image.Pt(20, 16) {
		t.Errorf("size after reset = %v, want 20x16", got)
	}
}
