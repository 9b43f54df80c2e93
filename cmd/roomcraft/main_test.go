package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// execute runs the command tree with a settings file from dir so the
// user's own settings never leak into a test.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(cfgPath); err != nil {
		require.NoError(t, os.WriteFile(cfgPath, []byte("fps = 30\n"), 0o644))
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath, "--log-file", filepath.Join(dir, "roomcraft.log")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Dining Table")
	assert.Contains(t, out, "Wardrobe")
	assert.NotContains(t, out, "Custom")
}

func TestSceneWorkflow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")

	_, err := execute(t, dir, "new", path, "--width", "600")
	require.NoError(t, err)
	_, err = execute(t, dir, "new", path)
	assert.Error(t, err, "existing file needs --force")

	out, err := execute(t, dir, "add", path, "coffee table", "--x", "-50", "--z", "10", "--color", "#336699", "--select")
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee Table")

	_, err = execute(t, dir, "add", path, "piano")
	assert.ErrorIs(t, err, scene.ErrUnknownKind)

	snap, err := scene.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600.0, snap.Room.Width)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, scene.KindCoffeeTable, snap.Items[0].Kind)
	assert.Equal(t, scene.RGB(0x33, 0x66, 0x99), snap.Items[0].Color)
	assert.Equal(t, snap.Items[0].ID, snap.SelectedID)

	out, err = execute(t, dir, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "600×400×250")
	assert.Contains(t, out, "Extent:     (-300, 0, -200) to (300, 250, 200)")
	assert.Contains(t, out, "* "+snap.Items[0].ID[:8]+" Coffee Table")

	pngPath := filepath.Join(dir, "room.png")
	_, err = execute(t, dir, "render", path, "-o", pngPath, "--width", "200", "--height", "150", "--wireframe")
	require.NoError(t, err)
	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	_, err = execute(t, dir, "export", path)
	require.NoError(t, err)
	out, err = execute(t, dir, "info", filepath.Join(dir, "room.glb"))
	require.NoError(t, err)
	assert.Contains(t, out, "Meshes:     5")
	assert.Contains(t, out, "Coffee Table")
}

func TestRenderRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	_, err := execute(t, dir, "new", path)
	require.NoError(t, err)

	_, err = execute(t, dir, "render", path, "--bg", "nope")
	assert.Error(t, err)
	_, err = execute(t, dir, "render", path, "--width", "0")
	assert.Error(t, err)
}

func TestEditCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	_, err := execute(t, dir, "new", path)
	require.NoError(t, err)
	_, err = execute(t, dir, "add", path, "sofa", "--x", "-200", "--z", "-150", "--name", "Couch", "--select")
	require.NoError(t, err)

	out, err := execute(t, dir, "place", path, "dining table", "250", "200", "120", "80", "--color", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Dining Table")

	_, err = execute(t, dir, "move", path, "couch", "--dx", "10")
	require.NoError(t, err)
	_, err = execute(t, dir, "scale", path, "Couch", "2")
	require.NoError(t, err)
	_, err = execute(t, dir, "scale", path, "Couch", "0")
	assert.Error(t, err)
	_, err = execute(t, dir, "color", path, "couch", "#112233")
	require.NoError(t, err)
	_, err = execute(t, dir, "color", path, "couch", "99")
	assert.Error(t, err)

	_, err = execute(t, dir, "room", path, "--width", "700", "--walls", "#ffffff80", "--shape", "L")
	require.NoError(t, err)
	_, err = execute(t, dir, "room", path, "--height", "-1")
	assert.ErrorIs(t, err, scene.ErrInvalidRoom)
	_, err = execute(t, dir, "light", path, "--intensity", "2", "--contrast", "0.7")
	require.NoError(t, err)

	snap, err := scene.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 700.0, snap.Room.Width)
	assert.Equal(t, 400.0, snap.Room.Length)
	assert.Equal(t, 250.0, snap.Room.Height)
	assert.Equal(t, scene.Color{R: 255, G: 255, B: 255, A: 0x80}, snap.Room.Walls)
	assert.Equal(t, "L", snap.Room.Shape)
	assert.Equal(t, 1.0, snap.Lighting.Intensity)
	assert.Equal(t, 0.5, snap.Lighting.Shadow)
	assert.Equal(t, 0.7, snap.Lighting.Contrast)

	require.Len(t, snap.Items, 2)
	couch, table := snap.Items[0], snap.Items[1]
	assert.Equal(t, -190.0, couch.Position.X)
	assert.Equal(t, scene.Dimensions{Width: 360, Height: 80, Depth: 160}, couch.Size)
	assert.Equal(t, scene.RGB(0x11, 0x22, 0x33), couch.Color)
	assert.Equal(t, scene.KindDiningTable, table.Kind)
	assert.Equal(t, scene.Dimensions{Width: 120, Height: 80, Depth: 60}, table.Size)
	assert.Equal(t, scene.Palette[4], table.Color)

	out, err = execute(t, dir, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Extent:     (-350, 0, -200) to (350, 250, 200)")

	_, err = execute(t, dir, "remove", path, "couch")
	require.NoError(t, err)
	_, err = execute(t, dir, "rm", path, table.ID[:6])
	require.NoError(t, err)
	_, err = execute(t, dir, "remove", path, "couch")
	assert.ErrorIs(t, err, scene.ErrItemNotFound)

	snap, err = scene.Load(path)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.SelectedID)
}
