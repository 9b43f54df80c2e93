package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/roomcraft/pkg/scene"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		width, length, height float64
		force                 bool
	)
	cmd := &cobra.Command{
		Use:   "new <scene.yaml>",
		Short: "Create an empty room scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(args[0]); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("stat scene: %w", err)
				}
			}
			sc := scene.New()
			if err := sc.SetRoomDimensions(width, length, height); err != nil {
				return err
			}
			if err := scene.Save(args[0], sc.Snapshot()); err != nil {
				return err
			}
			a.logger.Info("created scene", "path", args[0], "width", width, "length", length, "height", height)
			return nil
		},
	}
	cmd.Flags().Float64Var(&width, "width", scene.DefaultRoomWidth, "Room width (x)")
	cmd.Flags().Float64Var(&length, "length", scene.DefaultRoomLength, "Room length (z)")
	cmd.Flags().Float64Var(&height, "height", scene.DefaultRoomHeight, "Room height (y)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var (
		x, z     float64
		name     string
		color    string
		selectIt bool
	)
	cmd := &cobra.Command{
		Use:   "add <scene.yaml> <kind>",
		Short: "Add a catalog item to a scene file",
		Long:  "Add a furniture item with its catalog dimensions, standing on the floor at (x, z). Run 'roomcraft catalog' for the kinds.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := scene.ParseKind(args[1])
			if err != nil {
				return err
			}
			snap, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			sc := scene.New()
			sc.Load(snap)
			it := scene.NewItem(kind, x, z)
			if name != "" {
				it.Name = name
			}
			if color != "" {
				if it.Color, err = scene.ParseColor(color); err != nil {
					return err
				}
			}
			it = sc.AddItem(it)
			if selectIt {
				if err := sc.Select(it.ID); err != nil {
					return err
				}
			}

			if err := scene.Save(args[0], sc.Snapshot()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
			a.logger.Debug("added item", "path", args[0], "id", it.ID, "kind", kind)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "Position along the room width")
	cmd.Flags().Float64Var(&z, "z", 0, "Position along the room length")
	cmd.Flags().StringVar(&name, "name", "", "Item name (default: kind name)")
	cmd.Flags().StringVar(&color, "color", "", "Item color (#rrggbb)")
	cmd.Flags().BoolVar(&selectIt, "select", false, "Select the new item")
	return cmd
}

// editScene loads the scene at path, applies fn and writes the result back.
func editScene(path string, fn func(*scene.Scene) error) error {
	snap, err := scene.Load(path)
	if err != nil {
		return err
	}
	sc := scene.New()
	sc.Load(snap)
	if err := fn(sc); err != nil {
		return err
	}
	return scene.Save(path, sc.Snapshot())
}

// resolveItem finds an item by exact ID, unique ID prefix or unique name.
func resolveItem(sc *scene.Scene, ref string) (scene.Item, error) {
	if it, err := sc.Item(ref); err == nil {
		return it, nil
	}
	items := sc.Snapshot().Items
	var matches []scene.Item
	for _, it := range items {
		if strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it)
		}
	}
	if len(matches) == 0 {
		for _, it := range items {
			if strings.EqualFold(it.Name, ref) {
				matches = append(matches, it)
			}
		}
	}
	switch len(matches) {
	case 0:
		return scene.Item{}, fmt.Errorf("%w: %s", scene.ErrItemNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return scene.Item{}, fmt.Errorf("%q matches %d items, use the ID", ref, len(matches))
	}
}

// parseItemColor accepts a hex color or an index into scene.Palette.
func parseItemColor(s string) (scene.Color, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i >= len(scene.Palette) {
			return scene.Color{}, fmt.Errorf("palette index %d out of range [0, %d)", i, len(scene.Palette))
		}
		return scene.Palette[i], nil
	}
	return scene.ParseColor(s)
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <scene.yaml> <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from a scene file",
		Long:    "Remove an item given by ID, ID prefix or name. Removing the selected item clears the selection.",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return editScene(args[0], func(sc *scene.Scene) error {
				it, err := resolveItem(sc, args[1])
				if err != nil {
					return err
				}
				a.logger.Debug("removing item", "path", args[0], "id", it.ID)
				return sc.RemoveItem(it.ID)
			})
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	var dx, dy, dz float64
	cmd := &cobra.Command{
		Use:   "move <scene.yaml> <item>",
		Short: "Offset an item's position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editScene(args[0], func(sc *scene.Scene) error {
				it, err := resolveItem(sc, args[1])
				if err != nil {
					return err
				}
				if err := sc.MoveItem(it.ID, dx, dy, dz); err != nil {
					return err
				}
				it, _ = sc.Item(it.ID)
				fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
				a.logger.Debug("moved item", "path", args[0], "id", it.ID, "dx", dx, "dy", dy, "dz", dz)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&dx, "dx", 0, "Offset along the room width")
	cmd.Flags().Float64Var(&dy, "dy", 0, "Offset upwards")
	cmd.Flags().Float64Var(&dz, "dz", 0, "Offset along the room length")
	return cmd
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <scene.yaml> <item> <factor>",
		Short: "Scale an item's dimensions",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, err := strconv.ParseFloat(args[2], 64)
			if err != nil || factor <= 0 {
				return fmt.Errorf("invalid scale factor %q", args[2])
			}
			return editScene(args[0], func(sc *scene.Scene) error {
				it, err := resolveItem(sc, args[1])
				if err != nil {
					return err
				}
				if err := sc.ScaleItem(it.ID, factor); err != nil {
					return err
				}
				it, _ = sc.Item(it.ID)
				fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
				a.logger.Debug("scaled item", "path", args[0], "id", it.ID, "factor", factor)
				return nil
			})
		},
	}
}

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color <scene.yaml> <item> <#rrggbb|palette index>",
		Short: "Recolor an item",
		Long:  "Recolor an item with a hex color or an index into the default palette (0-7).",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseItemColor(args[2])
			if err != nil {
				return err
			}
			return editScene(args[0], func(sc *scene.Scene) error {
				it, err := resolveItem(sc, args[1])
				if err != nil {
					return err
				}
				it.Color = c
				if err := sc.UpdateItem(it); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
				a.logger.Debug("recolored item", "path", args[0], "id", it.ID, "color", c)
				return nil
			})
		},
	}
}

func newPlaceCmd(a *app) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "place <scene.yaml> <kind> <plan-x> <plan-y> <width> <height>",
		Short: "Add an item from a top-down plan footprint",
		Long: "Add an item drawn on a top-down plan whose origin is the room's back-left corner. " +
			"The depth is derived from the footprint by the kind's plan rule.",
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := scene.ParseKind(args[1])
			if err != nil {
				return err
			}
			var nums [4]float64
			for i, s := range args[2:] {
				if nums[i], err = strconv.ParseFloat(s, 64); err != nil {
					return fmt.Errorf("invalid number %q", s)
				}
			}
			c := scene.DefaultItemColor
			if color != "" {
				if c, err = parseItemColor(color); err != nil {
					return err
				}
			}
			return editScene(args[0], func(sc *scene.Scene) error {
				it := sc.AddItem(scene.FromPlan(kind, nums[0], nums[1], nums[2], nums[3], c))
				fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
				a.logger.Debug("placed item", "path", args[0], "id", it.ID, "kind", kind)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "Item color (#rrggbb or palette index)")
	return cmd
}

func newRoomCmd(a *app) *cobra.Command {
	var (
		width, length, height float64
		floor, walls, ceiling string
		shape                 string
	)
	cmd := &cobra.Command{
		Use:   "room <scene.yaml>",
		Short: "Change the room size, colors or shape",
		Long:  "Change the room of a scene file. Only the flags given are applied.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			return editScene(args[0], func(sc *scene.Scene) error {
				r := sc.Room()
				if flags.Changed("width") || flags.Changed("length") || flags.Changed("height") {
					if flags.Changed("width") {
						r.Width = width
					}
					if flags.Changed("length") {
						r.Length = length
					}
					if flags.Changed("height") {
						r.Height = height
					}
					if err := sc.SetRoomDimensions(r.Width, r.Length, r.Height); err != nil {
						return err
					}
				}
				if flags.Changed("floor") || flags.Changed("walls") || flags.Changed("ceiling") {
					for _, f := range []struct {
						name string
						val  string
						dst  *scene.Color
					}{{"floor", floor, &r.Floor}, {"walls", walls, &r.Walls}, {"ceiling", ceiling, &r.Ceiling}} {
						if !flags.Changed(f.name) {
							continue
						}
						c, err := scene.ParseColor(f.val)
						if err != nil {
							return fmt.Errorf("--%s: %w", f.name, err)
						}
						*f.dst = c
					}
					sc.SetRoomColors(r.Floor, r.Walls, r.Ceiling)
				}
				if flags.Changed("shape") {
					sc.SetRoomShape(shape)
				}
				r = sc.Room()
				a.logger.Debug("updated room", "path", args[0], "width", r.Width, "length", r.Length, "height", r.Height)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&width, "width", scene.DefaultRoomWidth, "Room width (x)")
	cmd.Flags().Float64Var(&length, "length", scene.DefaultRoomLength, "Room length (z)")
	cmd.Flags().Float64Var(&height, "height", scene.DefaultRoomHeight, "Room height (y)")
	cmd.Flags().StringVar(&floor, "floor", "", "Floor color (#rrggbb)")
	cmd.Flags().StringVar(&walls, "walls", "", "Wall color (#rrggbb or #rrggbbaa)")
	cmd.Flags().StringVar(&ceiling, "ceiling", "", "Ceiling color (#rrggbb)")
	cmd.Flags().StringVar(&shape, "shape", "", "Room shape label")
	return cmd
}

func newLightCmd(a *app) *cobra.Command {
	var (
		intensity, shadow, contrast float64
		ambient                     string
	)
	cmd := &cobra.Command{
		Use:   "light <scene.yaml>",
		Short: "Change the scene lighting",
		Long:  "Change the lighting of a scene file. Only the flags given are applied; values are clamped to their ranges.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			return editScene(args[0], func(sc *scene.Scene) error {
				l := sc.Lighting()
				if flags.Changed("intensity") {
					l.Intensity = intensity
				}
				if flags.Changed("shadow") {
					l.Shadow = shadow
				}
				if flags.Changed("contrast") {
					l.Contrast = contrast
				}
				if flags.Changed("ambient") {
					c, err := scene.ParseColor(ambient)
					if err != nil {
						return fmt.Errorf("--ambient: %w", err)
					}
					l.Ambient = c
				}
				sc.SetLighting(l)
				l = sc.Lighting()
				a.logger.Debug("updated lighting", "path", args[0], "intensity", l.Intensity, "shadow", l.Shadow, "contrast", l.Contrast)
				return nil
			})
		},
	}
	defaults := scene.DefaultLighting()
	cmd.Flags().Float64Var(&intensity, "intensity", defaults.Intensity, "Light intensity [0, 1]")
	cmd.Flags().Float64Var(&shadow, "shadow", defaults.Shadow, "Shadow strength [0, 1]")
	cmd.Flags().Float64Var(&contrast, "contrast", defaults.Contrast, "Contrast [0.5, 1.5]")
	cmd.Flags().StringVar(&ambient, "ambient", "", "Ambient light color (#rrggbb)")
	return cmd
}
