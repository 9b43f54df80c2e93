package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/roomcraft/pkg/scene"
)

func TestDrawRoom(t *testing.T) {
	room := scene.DefaultRoom()
	proj := NewProjector(*NewCamera())

	tests := []struct {
		name        string
		walls       scene.Color
		opts        RenderOptions
		wantFills   int
		wantWallA   uint8
		wantCeiling bool
	}{
		{"default", scene.RGB(255, 255, 255), DefaultRenderOptions(), 4, 180, true},
		{"translucent walls", scene.Color{R: 90, G: 90, B: 90, A: 60}, DefaultRenderOptions(), 4, 60, true},
		{"no ceiling", scene.RGB(255, 255, 255), RenderOptions{HideCeiling: true}, 3, 180, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := room
			r.Walls = tc.walls
			var dl DisplayList
			DrawRoom(&dl, proj, r, tc.opts)

			fills := dl.Filter(OpFill)
			if len(fills) != tc.wantFills {
				t.Fatalf("got %d fills, want %d", len(fills), tc.wantFills)
			}
			if fills[0].Color != r.Floor.NRGBA() {
				t.Errorf("floor color = %v, want %v", fills[0].Color, r.Floor)
			}
			for _, w := range fills[1:3] {
				if w.Color.A != tc.wantWallA {
					t.Errorf("wall alpha = %d, want %d", w.Color.A, tc.wantWallA)
				}
			}
			if tc.wantCeiling && fills[3].Color != r.Ceiling.NRGBA() {
				t.Errorf("ceiling color = %v, want %v", fills[3].Color, r.Ceiling)
			}

			// 500 wide gives 11 lines, 400 long gives 9.
			grid := dl.Filter(OpStroke)
			if len(grid) != 20 {
				t.Errorf("got %d grid lines, want 20", len(grid))
			}
			for _, g := range grid {
				if g.Color != (color.NRGBA{R: 200, G: 200, B: 200, A: 100}) || g.Width != 0.5 {
					t.Errorf("grid line = %v width %v", g.Color, g.Width)
					break
				}
			}
		})
	}
}

func TestDrawRoomFloorCorners(t *testing.T) {
	proj := NewProjector(*NewCamera())
	var dl DisplayList
	DrawRoom(&dl, proj, scene.DefaultRoom(), DefaultRenderOptions())

	floor := dl.Commands[0]
	want := proj.Project(scene.DefaultRoom().Min())
	if floor.Points[0] != want {
		t.Errorf("floor first corner = %v, want %v", floor.Points[0], want)
	}
}

func TestDrawRoomNonFinite(t *testing.T) {
	proj := NewProjector(*NewCamera())
	tests := []struct {
		name          string
		width, length float64
	}{
		{"inf width", math.Inf(1), 400},
		{"inf length", 500, math.Inf(1)},
		{"nan width", math.NaN(), 400},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := scene.DefaultRoom()
			r.Width, r.Length = tc.width, tc.length
			var dl DisplayList
			DrawRoom(&dl, proj, r, DefaultRenderOptions())
			if n := len(dl.Filter(OpStroke)); n != 0 {
				t.Errorf("got %d grid lines, want 0", n)
			}
			if n := len(dl.Filter(OpFill)); n != 4 {
				t.Errorf("got %d fills, want 4", n)
			}
		})
	}
}
