// roomcraft - furniture room planner with a pseudo-3D view.
//
// Scenes are YAML files describing a room and the furniture in it. They can
// be viewed interactively in the terminal, rendered to PNG or exported to
// glTF.
//
// Controls (view):
//
//	Mouse drag  - Orbit the camera
//	Scroll      - Zoom in/out
//	+/-         - Zoom in/out
//	Arrows      - Orbit the camera
//	Tab         - Select next item
//	R           - Reset view
//	X           - Toggle wireframe (x-ray)
//	S           - Toggle shadows
//	C           - Toggle ceiling
//	?           - Toggle help panel
//	Esc, Q      - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/roomcraft/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand: the loaded settings and the
// logger, both set up before a command runs.
type app struct {
	configPath string
	verbose    bool
	logFile    string

	cfg     config.Config
	logger  *slog.Logger
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "roomcraft",
		Short: "Plan furniture layouts in a pseudo-3D room",
		Long: `roomcraft - furniture room planner

Scenes are YAML files holding a room, its lighting and the furniture in it.
View them in the terminal, render a frame to PNG or export the scene as a
glTF binary.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/roomcraft/config.toml)")
	pf.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	pf.StringVar(&a.logFile, "log-file", "", "Append logs to this file")

	root.AddCommand(
		newViewCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
		newInfoCmd(a),
		newCatalogCmd(a),
		newNewCmd(a),
		newAddCmd(a),
		newPlaceCmd(a),
		newRemoveCmd(a),
		newMoveCmd(a),
		newScaleCmd(a),
		newColorCmd(a),
		newRoomCmd(a),
		newLightCmd(a),
	)
	return root
}

// setup loads the settings and builds the logger. The interactive viewer
// owns the terminal, so it logs nowhere unless --log-file is given.
func (a *app) setup(cmd *cobra.Command) error {
	var out io.Writer = os.Stderr
	switch {
	case a.logFile != "":
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out, a.logSink = f, f
	case cmd.Name() == "view":
		out = io.Discard
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	path, optional := a.configPath, false
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			a.logger.Debug("no config dir", "err", err)
			a.cfg = config.Default()
			return nil
		}
		path, optional = p, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "path", path, "fps", cfg.FPS, "supersample", cfg.Supersample)
	return nil
}

func (a *app) teardown() error {
	if a.logSink == nil {
		return nil
	}
	err := a.logSink.Close()
	a.logSink = nil
	return err
}
