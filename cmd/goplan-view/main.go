package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplan/internal/app"
	"github.com/philipparndt/goplan/internal/config"
	"github.com/philipparndt/goplan/internal/interaction"
	"github.com/philipparndt/goplan/internal/logging"
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/watcher"
	"github.com/philipparndt/goplan/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const exchangeFile = "measurements.json"

var (
	configPath string
	layersPath string
)

var rootCmd = &cobra.Command{
	Use:     "goplan-view [file]",
	Short:   "Interactive 3D viewer for DXF floor plans",
	Args:    cobra.ExactArgs(1),
	Version: version.GetFullVersion(),
	Run:     run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (YAML)")
	rootCmd.Flags().StringVar(&layersPath, "layers", "", "layer style file (YAML)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Viewer holds the window state around the scene controller
type Viewer struct {
	state    *app.SceneState
	camera   *interaction.Camera
	renderer *measurementRenderer
	logger   *zap.Logger
	input    inputState
	reloads  chan string
	planFile string
	status   string
	statusAt time.Time

	layerNames []string
	layerIndex int
}

func run(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if layersPath != "" {
		cfg.Plan.Layers = layersPath
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screenWidth := int32(1400)
	screenHeight := int32(900)

	v := &Viewer{
		camera:   interaction.NewCamera(geometry.Vector3{}, 20, float64(screenWidth), float64(screenHeight)),
		renderer: newMeasurementRenderer(),
		logger:   logger,
		reloads:  make(chan string, 4),
	}

	state, err := app.Open(context.Background(), cfg, logger,
		app.WithRenderer(v.renderer),
		app.WithScreenCaster(v.camera),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer state.Close()
	v.state = state

	if err := state.LoadPlan(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing plan file: %v\n", err)
		os.Exit(1)
	}
	v.frame()
	v.refreshLayers()

	w, err := watcher.New(500*time.Millisecond, logger.Named("watch"))
	if err != nil {
		logger.Warn("auto-reload disabled", zap.Error(err))
	} else {
		defer w.Close()
		v.watch(w, filename, cfg.Plan.Layers)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(screenWidth, screenHeight, "goplan - "+filepath.Base(filename))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		v.drainReloads()
		v.camera.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		v.handleInput()
		state.Dispatcher.Frame(interaction.DesktopTick{Now: time.Now()})

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(v.camera3D())
		v.drawScene()
		v.renderer.draw()
		v.drawIndicator()
		rl.EndMode3D()

		v.renderer.drawLabels(v.camera)
		v.drawUI()

		rl.EndDrawing()
	}
}

// frame fits the orbit distance to the plan
func (v *Viewer) frame() {
	var extent float64
	for _, p := range v.state.Scene().Snap.Points() {
		extent = max(extent, p.PlanarDistance(geometry.Vector3{}))
	}
	v.camera.Distance = max(extent, 1) * 2.4
	v.camera.UpdatePosition()
}

func (v *Viewer) refreshLayers() {
	v.layerNames = v.state.Drawing().SortedLayers()
	if v.layerIndex >= len(v.layerNames) {
		v.layerIndex = 0
	}
}

// watch reloads the plan and the layer file on change. Callbacks arrive on
// timer goroutines and are handed to the render loop.
func (v *Viewer) watch(w *watcher.Watcher, planPath, layerPath string) {
	notify := func(path string) {
		select {
		case v.reloads <- path:
		default:
		}
	}
	v.planFile, _ = filepath.Abs(planPath)
	files := []string{planPath}
	if layerPath != "" {
		files = append(files, layerPath)
	}
	if err := w.Watch(files, notify); err != nil {
		v.logger.Warn("auto-reload disabled", zap.Error(err))
	}
}

func (v *Viewer) drainReloads() {
	for {
		select {
		case path := <-v.reloads:
			var err error
			if path == v.planFile {
				err = v.state.Reload()
			} else {
				err = v.state.ReloadLayers()
			}
			if err != nil {
				v.notify("Reload failed: %v", err)
				continue
			}
			v.refreshLayers()
			v.notify("Reloaded %s", filepath.Base(path))
		default:
			return
		}
	}
}

func (v *Viewer) notify(format string, args ...any) {
	v.status = fmt.Sprintf(format, args...)
	v.statusAt = time.Now()
}
