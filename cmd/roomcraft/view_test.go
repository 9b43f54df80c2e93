package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/roomcraft/internal/config"
	"github.com/taigrr/roomcraft/pkg/render"
	"github.com/taigrr/roomcraft/pkg/scene"
)

func testViewer(t *testing.T) (*viewer, *scene.Scene) {
	t.Helper()
	sc := scene.New()
	sc.AddItem(scene.NewItem(scene.KindDiningTable, -50, -40))
	sc.AddItem(scene.NewItem(scene.KindChair, 60, 20))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newViewer(sc, config.Default(), 40, 12, logger), sc
}

func key(code rune, text string) uv.KeyPressEvent {
	return uv.KeyPressEvent{Code: code, Text: text}
}

func TestViewerDrawCoalesces(t *testing.T) {
	v, _ := testViewer(t)
	scr := uv.NewScreenBuffer(40, 12)

	assert.True(t, v.draw(scr), "first frame is pending")
	assert.False(t, v.draw(scr), "nothing changed since")

	cell := scr.CellAt(0, 0)
	require.NotNil(t, cell)
	assert.Equal(t, "▀", cell.Content)

	v.requestRedraw()
	v.requestRedraw()
	assert.True(t, v.draw(scr))
	assert.False(t, v.draw(scr))
}

func TestViewerToggles(t *testing.T) {
	v, _ := testViewer(t)
	v.dirty = false

	assert.False(t, v.handle(key('x', "x")))
	assert.True(t, v.frame.Options.Wireframe)
	assert.True(t, v.dirty)

	v.handle(key('s', "s"))
	assert.False(t, v.frame.Options.Shadows)

	v.handle(key('c', "c"))
	assert.True(t, v.frame.Options.HideCeiling)
}

func TestViewerQuit(t *testing.T) {
	v, _ := testViewer(t)
	assert.True(t, v.handle(key(uv.KeyEscape, "")))
	assert.True(t, v.handle(key('q', "q")))
}

func TestViewerSelectNext(t *testing.T) {
	v, sc := testViewer(t)
	snap := sc.Snapshot()

	v.handle(key(uv.KeyTab, ""))
	assert.Equal(t, snap.Items[0].ID, sc.SelectedID())
	v.handle(key(uv.KeyTab, ""))
	assert.Equal(t, snap.Items[1].ID, sc.SelectedID())
	v.handle(key(uv.KeyTab, ""))
	assert.Equal(t, snap.Items[0].ID, sc.SelectedID(), "selection wraps")
}

func TestViewerMouseOrbit(t *testing.T) {
	v, _ := testViewer(t)
	cam := v.frame.Camera

	v.handle(uv.MouseMotionEvent{X: 5, Y: 5})
	assert.Equal(t, render.DefaultYaw, cam.Yaw, "motion without a press is ignored")

	v.handle(uv.MouseClickEvent{X: 10, Y: 5, Button: uv.MouseLeft})
	assert.Equal(t, render.Orbiting, v.input.State())
	v.handle(uv.MouseMotionEvent{X: 15, Y: 5, Button: uv.MouseLeft})
	assert.InDelta(t, render.DefaultYaw+10*render.OrbitSensitivity, cam.Yaw, 1e-9)

	v.handle(uv.MouseReleaseEvent{X: 15, Y: 5, Button: uv.MouseLeft})
	assert.Equal(t, render.Idle, v.input.State())
}

func TestViewerWheelZoom(t *testing.T) {
	v, _ := testViewer(t)
	v.handle(uv.MouseWheelEvent{Button: uv.MouseWheelUp})
	assert.InDelta(t, 1.1, v.frame.Camera.Zoom, 1e-9)
	v.handle(uv.MouseWheelEvent{Button: uv.MouseWheelDown})
	assert.InDelta(t, 0.99, v.frame.Camera.Zoom, 1e-9)
}

func TestViewerResetGlide(t *testing.T) {
	v, _ := testViewer(t)
	cam := v.frame.Camera
	cam.SetView(-40, 395, 2.5)

	v.handle(key('r', "r"))
	require.True(t, v.glide.Active())
	for i := 0; i < 600 && v.glide.Active(); i++ {
		v.tick()
	}
	assert.False(t, v.glide.Active(), "glide settles")
	assert.Equal(t, render.DefaultPitch, cam.Pitch)
	assert.Equal(t, render.DefaultYaw, cam.Yaw)
	assert.Equal(t, render.DefaultZoom, cam.Zoom)
}

func TestViewerReloadKeepsSelection(t *testing.T) {
	v, sc := testViewer(t)
	id := sc.SelectNext()

	snap := sc.Snapshot()
	snap.SelectedID = ""
	snap.Items[1].Position.X = 0
	v.reload(snap)
	assert.Equal(t, id, sc.SelectedID())

	snap.Items = snap.Items[1:]
	v.reload(snap)
	assert.Empty(t, sc.SelectedID(), "selection of a removed item is dropped")
}

func TestViewerEditSelected(t *testing.T) {
	v, sc := testViewer(t)
	table := sc.Snapshot().Items[0]

	v.handle(key(uv.KeyDelete, ""))
	assert.Equal(t, 2, sc.Len(), "nothing selected")

	v.handle(key(uv.KeyTab, ""))
	v.handle(key(']', "]"))
	it, err := sc.Item(table.ID)
	require.NoError(t, err)
	assert.InDelta(t, table.Size.Width*itemScaleStep, it.Size.Width, 1e-9)
	v.handle(key('[', "["))
	it, _ = sc.Item(table.ID)
	assert.InDelta(t, table.Size.Width, it.Size.Width, 1e-9)

	require.Equal(t, scene.Palette[0], it.Color)
	v.handle(key('p', "p"))
	it, _ = sc.Item(table.ID)
	assert.Equal(t, scene.Palette[1], it.Color)
	for range len(scene.Palette) - 1 {
		v.handle(key('p', "p"))
	}
	it, _ = sc.Item(table.ID)
	assert.Equal(t, scene.Palette[0], it.Color, "palette wraps")

	v.dirty = false
	v.handle(key(uv.KeyDelete, ""))
	assert.Equal(t, 1, sc.Len())
	assert.Empty(t, sc.SelectedID())
	assert.True(t, v.dirty)
}

func TestViewerSave(t *testing.T) {
	v, sc := testViewer(t)
	v.handle(key('w', "w"))

	v.path = filepath.Join(t.TempDir(), "room.yaml")
	v.handle(key(uv.KeyTab, ""))
	v.handle(key('w', "w"))

	snap, err := scene.Load(v.path)
	require.NoError(t, err)
	assert.Equal(t, sc.Snapshot(), snap)
}
