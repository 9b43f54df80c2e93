package render

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/taigrr/roomcraft/pkg/scene"
)

type staticSource scene.Snapshot

func (s staticSource) Snapshot() scene.Snapshot { return scene.Snapshot(s) }

func texts(dl *DisplayList) []string {
	var out []string
	for _, c := range dl.Filter(OpText) {
		out = append(out, c.Text)
	}
	return out
}

func TestFrameDraw(t *testing.T) {
	snap := scene.DefaultSnapshot()
	snap.Items = []scene.Item{tableItem()}
	size := image.Pt(800, 600)

	tests := []struct {
		name      string
		selected  string
		showHelp  bool
		wantTexts []string
	}{
		{"no selection", "", true, []string{"Left drag: Rotate", "Scroll: Zoom", "Zoom: 1.0x"}},
		{"dangling selection", "gone", false, nil},
		{"selected", "table", false, []string{"Table", "Size: 120 x 30 x 80", "Position: (0, 0, 0)", "Material: wood"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := snap
			s.SelectedID = tc.selected
			f := NewFrame(staticSource(s), nil)
			f.ShowHelp = tc.showHelp

			var dl DisplayList
			f.Draw(&dl, size)

			got := texts(&dl)
			if strings.Join(got, "|") != strings.Join(tc.wantTexts, "|") {
				t.Errorf("texts = %q, want %q", got, tc.wantTexts)
			}
		})
	}
}

func TestFrameCentresProjection(t *testing.T) {
	snap := scene.DefaultSnapshot()
	f := NewFrame(staticSource(snap), nil)
	f.ShowHelp = false

	var dl DisplayList
	f.Draw(&dl, image.Pt(800, 600))

	floor := dl.Commands[0]
	want := NewProjector(*f.Camera).Project(snap.Room.Min()).Add(image.Pt(400, 300))
	if floor.Points[0] != want {
		t.Errorf("floor corner = %v, want %v", floor.Points[0], want)
	}
}

func TestFrameRedrawRequests(t *testing.T) {
	redraws := 0
	f := NewFrame(staticSource(scene.DefaultSnapshot()), func() { redraws++ })

	f.OnOrbitDrag(10, 0)
	f.OnZoom(ZoomIn)
	f.OnResetView()
	if redraws != 3 {
		t.Errorf("redraws = %d, want 3", redraws)
	}
	if f.Camera.Yaw != DefaultYaw || f.Camera.Zoom != DefaultZoom {
		t.Errorf("camera not reset: %+v", f.Camera)
	}
}

func TestInteraction(t *testing.T) {
	redraws := 0
	f := NewFrame(staticSource(scene.DefaultSnapshot()), func() { redraws++ })
	in := NewInteraction(f)

	in.Move(image.Pt(50, 50))
	if redraws != 0 || f.Camera.Yaw != DefaultYaw {
		t.Fatalf("idle move changed the camera")
	}

	in.Press(image.Pt(10, 10))
	if in.State() != Orbiting {
		t.Fatalf("state after press = %v, want orbiting", in.State())
	}
	in.Move(image.Pt(20, 30))
	if f.Camera.Yaw != -25 || f.Camera.Pitch != 40 {
		t.Errorf("after drag yaw=%v pitch=%v, want -25 and 40", f.Camera.Yaw, f.Camera.Pitch)
	}

	in.Release(image.Pt(20, 30))
	if in.State() != Idle {
		t.Errorf("state after release = %v, want idle", in.State())
	}
	in.Move(image.Pt(90, 90))
	if f.Camera.Yaw != -25 {
		t.Errorf("move after release orbited to yaw %v", f.Camera.Yaw)
	}

	in.Wheel(1)
	in.Wheel(0)
	if f.Camera.Zoom != 0.9 {
		t.Errorf("zoom after wheel = %v, want 0.9", f.Camera.Zoom)
	}
	if redraws != 2 {
		t.Errorf("redraws = %d, want 2", redraws)
	}
}

func TestFrameDrawInfiniteRoom(t *testing.T) {
	snap := scene.DefaultSnapshot()
	snap.Room.Width = math.Inf(1)
	f := NewFrame(staticSource(snap), nil)

	c := NewCanvas(160, 120)
	f.Draw(c, image.Pt(160, 120))

	var dl DisplayList
	f.Draw(&dl, image.Pt(160, 120))
	if n := len(dl.Filter(OpStroke)); n != 0 {
		t.Errorf("got %d grid lines, want 0", n)
	}
}
