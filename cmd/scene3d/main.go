package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/scene3d/internal/config"
	"github.com/san-kum/scene3d/internal/export"
	"github.com/san-kum/scene3d/internal/gui"
	"github.com/san-kum/scene3d/internal/plot"
	"github.com/san-kum/scene3d/internal/scene"
	"github.com/san-kum/scene3d/internal/shape"
	"github.com/san-kum/scene3d/internal/tui"
	"github.com/san-kum/scene3d/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	angle      float64
	scale      float64
	width      int
	height     int
	theme      string
	moves      []string
	debug      bool
	// gui
	backend string
	// export
	format string
	output string
	pxW    int
	pxH    int
	// render
	plain bool
)

const debugLog = "scene3d-debug.log"

func main() {
	rootCmd := &cobra.Command{
		Use:   "scene3d",
		Short: "interactive 3d primitive viewer",
		RunE:  runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scene file (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset scene")
	pf.Float64Var(&angle, "angle", 30, "view angle in degrees (elevation and azimuth)")
	pf.Float64Var(&scale, "scale", 3, "prism scale")
	pf.IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
	pf.IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.StringArrayVar(&moves, "move", nil, "move an object before drawing: idx:dx,dy,dz (repeatable)")
	pf.BoolVar(&debug, "debug", false, "write debug log to "+debugLog)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal viewer with angle and scale sliders",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed viewer with mouse sliders",
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", gui.BackendRaylib, "window backend ("+gui.BackendRaylib+" or "+gui.BackendEbiten+")")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print one frame to stdout",
		RunE:  runRender,
	}
	renderCmd.Flags().BoolVar(&plain, "plain", false, "no colors")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write one frame as svg or png",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default scene.<format>)")
	exportCmd.Flags().StringVar(&format, "format", "", "svg or png (default from output extension)")
	exportCmd.Flags().IntVar(&pxW, "px-width", 800, "image width in pixels")
	exportCmd.Flags().IntVar(&pxH, "px-height", 640, "image height in pixels")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "list objects, vertices and painter order statistics",
		RunE:  runInspect,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available preset scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved scene to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scene.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, renderCmd, exportCmd, inspectCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies preset, then config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("angle") {
		cfg.View.Angle = angle
	}
	if flags.Changed("scale") {
		cfg.View.Scale = scale
	}
	if flags.Changed("width") || cfg.Canvas.Width <= 0 {
		cfg.Canvas.Width = width
	}
	if flags.Changed("height") || cfg.Canvas.Height <= 0 {
		cfg.Canvas.Height = height
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = theme
	}
	return cfg, nil
}

// loadScene builds the scene and applies every --move in order.
func loadScene(cmd *cobra.Command) (*config.Config, *scene.Scene, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	sc, err := cfg.Scene()
	if err != nil {
		return nil, nil, err
	}
	for _, m := range moves {
		idx, delta, err := parseMove(m)
		if err != nil {
			return nil, nil, err
		}
		if err := sc.MoveObject(idx, delta); err != nil {
			return nil, nil, err
		}
	}
	return cfg, sc, nil
}

func setupLogging(toFile bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if toFile {
		f, err := tea.LogToFile(debugLog, "scene3d")
		if err != nil {
			return nil, err
		}
		return func() { f.Close() }, nil
	}
	log.SetOutput(os.Stderr)
	log.SetPrefix("scene3d ")
	return func() {}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, sc, err := loadScene(cmd)
	if err != nil {
		return err
	}
	return tui.Run(sc, tui.Options{
		Angle:  cfg.View.Angle,
		Scale:  cfg.View.Scale,
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
		Theme:  cfg.Theme,
		Fixed:  cmd.Flags().Changed("width") || cmd.Flags().Changed("height"),
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, sc, err := loadScene(cmd)
	if err != nil {
		return err
	}
	return gui.Run(sc, gui.Options{
		Angle:      cfg.View.Angle,
		Scale:      cfg.View.Scale,
		Background: viz.RGBA(viz.GetTheme(cfg.Theme).Background),
		Backend:    backend,
	})
}

func drawnAxes(cfg *config.Config, sc *scene.Scene) *plot.Axes {
	ax := plot.NewAxes()
	sc.Render(ax, cfg.View.Angle, cfg.View.Scale)
	return ax
}

func runRender(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, sc, err := loadScene(cmd)
	if err != nil {
		return err
	}
	c := viz.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	list := drawnAxes(cfg, sc).Draw(c)
	log.Printf("render: %d primitives", len(list))
	if plain {
		fmt.Print(c.String())
	} else {
		fmt.Print(c.Render())
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, sc, err := loadScene(cmd)
	if err != nil {
		return err
	}
	f, path, err := exportTarget(format, output)
	if err != nil {
		return err
	}

	ax := drawnAxes(cfg, sc)
	bg := viz.RGBA(viz.GetTheme(cfg.Theme).Background)
	var buf bytes.Buffer
	var list plot.DrawList
	if f == "svg" {
		list, err = export.SVG(&buf, ax, pxW, pxH, bg)
	} else {
		list, err = export.PNG(&buf, ax, pxW, pxH, bg)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d primitives)\n", path, len(list))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, sc, err := loadScene(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("view: angle=%.1f scale=%.2f\n\n", cfg.View.Angle, cfg.View.Scale)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tOBJECT\tMOVABLE")
	for i, obj := range sc.Objects() {
		_, movable := obj.(shape.Movable)
		fmt.Fprintf(w, "%d\t%v\t%v\n", i, obj, movable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for i, obj := range sc.Objects() {
		var verts []shape.Vec3
		switch o := obj.(type) {
		case *shape.Prism:
			v := o.Vertices(cfg.View.Scale)
			verts = v[:]
		case *shape.Cuboid:
			v := o.Vertices()
			verts = v[:]
		default:
			continue
		}
		fmt.Printf("\nvertices of %d:\n", i)
		for _, v := range verts {
			fmt.Printf("  (%7.3f, %7.3f, %7.3f)\n", v[0], v[1], v[2])
		}
	}

	list := drawnAxes(cfg, sc).Project(cfg.Canvas.Width*2, cfg.Canvas.Height*4)
	fills, strokes := list.Count()
	fmt.Printf("\npainter order: %d primitives (%d fills, %d strokes)\n", len(list), fills, strokes)
	if len(list) < 2 {
		return nil
	}
	depths := list.Depths()
	fmt.Printf("depth range: %.3f .. %.3f\n\n", depths[0], depths[len(depths)-1])
	fmt.Println(asciigraph.Plot(depths,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("view depth in painting order (far to near)"),
	))
	return nil
}
