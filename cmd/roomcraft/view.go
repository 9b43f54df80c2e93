package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"slices"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/roomcraft/internal/config"
	"github.com/taigrr/roomcraft/pkg/render"
	"github.com/taigrr/roomcraft/pkg/scene"
)

// Button-event mouse tracking with SGR extended coordinates.
const (
	mouseOn  = "\x1b[?1002h\x1b[?1006h"
	mouseOff = "\x1b[?1002l\x1b[?1006l"
)

const (
	// keyOrbitStep is the pointer distance one arrow key press orbits by.
	keyOrbitStep = 10.0

	// itemScaleStep is the factor ] grows the selected item by.
	itemScaleStep = 1.1
)

func newViewCmd(a *app) *cobra.Command {
	var (
		ov      overrides
		cam     cameraFlags
		noWatch bool
	)
	cmd := &cobra.Command{
		Use:   "view <scene.yaml>",
		Short: "View a scene in the terminal",
		Long: `View a scene in the terminal. The scene file is reloaded when it changes.

Controls:
  Mouse drag  - Orbit the camera
  Scroll      - Zoom in/out
  +/-         - Zoom in/out
  Arrows      - Orbit the camera
  Tab         - Select next item
  Del         - Remove selected item
  [ ]         - Shrink/grow selected item
  P           - Cycle selected item color
  W           - Write the scene file
  R           - Reset view
  X           - Toggle wireframe (x-ray)
  S           - Toggle shadows
  C           - Toggle ceiling
  ?           - Toggle help panel
  Esc, Q      - Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ov.apply(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}
			return runView(cmd.Context(), a.logger, cfg, cam, args[0], !noWatch)
		},
	}
	ov.registerTerminal(cmd.Flags())
	ov.registerLook(cmd.Flags())
	cam.register(cmd.Flags())
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the scene file on changes")
	return cmd
}

// viewer is the state of the interactive view. It is only touched from the
// loop goroutine in runView.
type viewer struct {
	scene     *scene.Scene
	frame     *render.Frame
	input     *render.Interaction
	presenter *render.TerminalPresenter
	glide     *viewGlide
	bg        scene.Color
	logger    *slog.Logger

	// path is where W writes the scene. Empty disables saving.
	path string

	// dirty is the pending redraw. Requests between frames coalesce into one.
	dirty bool
}

func newViewer(sc *scene.Scene, cfg config.Config, cols, rows int, logger *slog.Logger) *viewer {
	v := &viewer{
		scene:     sc,
		presenter: render.NewTerminalPresenter(cols, rows, cfg.Supersample),
		glide:     newViewGlide(cfg.FPS),
		bg:        cfg.BackgroundColor(),
		logger:    logger,
		dirty:     true,
	}
	v.presenter.SetLogicalWidth(cfg.Width)
	v.frame = render.NewFrame(sc, v.requestRedraw)
	v.frame.Options = cfg.RenderOptions()
	v.input = render.NewInteraction(v.frame)
	sc.Subscribe(func(scene.Change) { v.requestRedraw() })
	return v
}

func (v *viewer) requestRedraw() {
	v.dirty = true
}

// pointer maps a cell position to half-block pixels, so dragging across
// the terminal orbits about as far as across a small window.
func pointer(m uv.Mouse) image.Point {
	return image.Pt(m.X*2, m.Y*4)
}

// handle applies one terminal event and reports whether the viewer should
// quit.
func (v *viewer) handle(ev uv.Event) (quit bool) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.presenter.Resize(ev.Width, ev.Height)
		v.requestRedraw()

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("esc", "ctrl+c", "q"):
			return true
		case ev.MatchString("r"):
			v.glide.Start(v.frame.Camera)
		case ev.MatchString("x"):
			v.frame.Options.Wireframe = !v.frame.Options.Wireframe
			v.requestRedraw()
		case ev.MatchString("s"):
			v.frame.Options.Shadows = !v.frame.Options.Shadows
			v.requestRedraw()
		case ev.MatchString("c"):
			v.frame.Options.HideCeiling = !v.frame.Options.HideCeiling
			v.requestRedraw()
		case ev.MatchString("tab"):
			id := v.scene.SelectNext()
			v.logger.Debug("selected", "id", id)
		case ev.MatchString("delete", "backspace"):
			v.editSelected("remove", v.scene.RemoveItem)
		case ev.Text == "[":
			v.editSelected("shrink", func(id string) error { return v.scene.ScaleItem(id, 1/itemScaleStep) })
		case ev.Text == "]":
			v.editSelected("grow", func(id string) error { return v.scene.ScaleItem(id, itemScaleStep) })
		case ev.MatchString("p"):
			v.editSelected("recolor", v.cyclePalette)
		case ev.MatchString("w"):
			v.save()
		case ev.MatchString("?", "shift+/"):
			v.frame.ShowHelp = !v.frame.ShowHelp
			v.requestRedraw()
		case ev.Text == "+" || ev.MatchString("="):
			v.glide.Cancel()
			v.frame.OnZoom(render.ZoomIn)
		case ev.MatchString("-", "_"):
			v.glide.Cancel()
			v.frame.OnZoom(render.ZoomOut)
		case ev.MatchString("left"):
			v.glide.Cancel()
			v.frame.OnOrbitDrag(-keyOrbitStep, 0)
		case ev.MatchString("right"):
			v.glide.Cancel()
			v.frame.OnOrbitDrag(keyOrbitStep, 0)
		case ev.MatchString("up"):
			v.glide.Cancel()
			v.frame.OnOrbitDrag(0, -keyOrbitStep)
		case ev.MatchString("down"):
			v.glide.Cancel()
			v.frame.OnOrbitDrag(0, keyOrbitStep)
		}

	case uv.MouseClickEvent:
		if ev.Button == uv.MouseLeft {
			v.glide.Cancel()
			v.input.Press(pointer(uv.Mouse(ev)))
		}

	case uv.MouseMotionEvent:
		v.input.Move(pointer(uv.Mouse(ev)))

	case uv.MouseReleaseEvent:
		v.input.Release(pointer(uv.Mouse(ev)))

	case uv.MouseWheelEvent:
		v.glide.Cancel()
		switch ev.Button {
		case uv.MouseWheelUp:
			v.input.Wheel(-1)
		case uv.MouseWheelDown:
			v.input.Wheel(1)
		}
	}
	return false
}

// editSelected applies fn to the selected item, if any.
func (v *viewer) editSelected(op string, fn func(id string) error) {
	id := v.scene.SelectedID()
	if id == "" {
		return
	}
	if err := fn(id); err != nil {
		v.logger.Warn(op+" item", "id", id, "err", err)
		return
	}
	v.logger.Debug(op+" item", "id", id)
}

// cyclePalette gives the item the palette color after its current one.
func (v *viewer) cyclePalette(id string) error {
	it, err := v.scene.Item(id)
	if err != nil {
		return err
	}
	next := 0
	if i := slices.Index(scene.Palette, it.Color); i >= 0 {
		next = (i + 1) % len(scene.Palette)
	}
	it.Color = scene.Palette[next]
	return v.scene.UpdateItem(it)
}

// save writes the scene back to its file. The watcher then reloads the
// same content, which keeps the selection.
func (v *viewer) save() {
	if v.path == "" {
		return
	}
	if err := scene.Save(v.path, v.scene.Snapshot()); err != nil {
		v.logger.Error("save scene", "path", v.path, "err", err)
		return
	}
	v.logger.Info("scene saved", "path", v.path, "items", v.scene.Len())
}

// reload replaces the scene with a snapshot read from disk, keeping the
// current selection when the item still exists.
func (v *viewer) reload(snap scene.Snapshot) {
	if id := v.scene.SelectedID(); id != "" {
		if _, ok := snap.Item(id); ok {
			snap.SelectedID = id
		}
	}
	v.scene.Load(snap)
	v.logger.Info("scene reloaded", "items", len(snap.Items))
}

// tick advances animations by one frame.
func (v *viewer) tick() {
	if v.glide.Step(v.frame.Camera) {
		v.requestRedraw()
	}
}

// draw renders a frame onto scr if one is pending and reports whether it
// did.
func (v *viewer) draw(scr uv.Screen) bool {
	if !v.dirty {
		return false
	}
	v.dirty = false
	v.presenter.Clear(v.bg)
	v.frame.Draw(v.presenter, v.presenter.Size())
	v.presenter.Draw(scr, scr.Bounds())
	return true
}

func runView(ctx context.Context, logger *slog.Logger, cfg config.Config, cam cameraFlags, path string, watch bool) error {
	snap, err := scene.Load(path)
	if err != nil {
		return err
	}
	sc := scene.New()
	sc.Load(snap)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var updates <-chan scene.Snapshot
	if watch {
		w, err := scene.NewWatcher(path, logger)
		if err != nil {
			return err
		}
		go w.Run(ctx)
		updates = w.Updates()
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	fmt.Fprint(os.Stdout, mouseOn)

	defer func() {
		fmt.Fprint(os.Stdout, mouseOff)
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown terminal", "err", err)
		}
	}()

	v := newViewer(sc, cfg, width, height, logger)
	v.path = path
	cam.apply(v.frame.Camera)
	logger.Info("viewing", "path", path, "items", sc.Len(), "cols", width, "rows", height)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-term.Events():
			if !ok {
				return nil
			}
			if size, isSize := ev.(uv.WindowSizeEvent); isSize {
				term.Erase()
				term.Resize(size.Width, size.Height)
			}
			if v.handle(ev) {
				return nil
			}

		case snap, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			v.reload(snap)

		case <-ticker.C:
			v.tick()
			if v.draw(term) {
				if err := term.Display(); err != nil {
					return fmt.Errorf("display: %w", err)
				}
			}
		}
	}
}
