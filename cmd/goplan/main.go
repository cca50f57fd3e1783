package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/goplan/internal/app"
	"github.com/philipparndt/goplan/internal/config"
	"github.com/philipparndt/goplan/internal/logging"
	"github.com/philipparndt/goplan/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath    string
	layersPath    string
	wallHeight    float64
	wallThickness float64
	storageKind   string
	storagePath   string
	logLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "goplan",
	Short: "Turn 2D CAD floor plans into 3D models and measure them",
	Long: `goplan reads LINE and LWPOLYLINE entities from a DXF (or JSON) floor plan,
extrudes walls and beams into 3D according to per-layer styles, and keeps a
log of distance measurements snapped to wall corners and line end points.`,
	Version: version.GetFullVersion(),
	// Commands report their own errors once through main
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (YAML)")
	flags.StringVar(&layersPath, "layers", "", "layer style file (YAML, or JSON with a .json extension)")
	flags.Float64Var(&wallHeight, "height", 0, "wall height (default from config, 3.0)")
	flags.Float64Var(&wallThickness, "thickness", 0, "wall thickness (default from config, 0.20)")
	flags.StringVar(&storageKind, "storage", "", "measurement storage: file, sqlite, redis or memory")
	flags.StringVar(&storagePath, "storage-path", "", "storage directory or database file")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("layers") {
		cfg.Plan.Layers = layersPath
	}
	if flags.Changed("height") {
		cfg.Plan.WallHeight = wallHeight
	}
	if flags.Changed("thickness") {
		cfg.Plan.WallThickness = wallThickness
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = storageKind
	}
	if flags.Changed("storage-path") {
		cfg.Storage.Path = storagePath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is an opened controller together with the settings it was opened with
type session struct {
	*app.SceneState
	cfg    *config.Config
	logger *zap.Logger
}

// openState loads configuration and opens the controller with its stored log.
// The caller closes the session.
func openState(cmd *cobra.Command, opts ...app.Option) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	state, err := app.Open(context.Background(), cfg, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &session{SceneState: state, cfg: cfg, logger: logger}, nil
}

// openPlan opens the controller and loads a plan file
func openPlan(cmd *cobra.Command, filename string, opts ...app.Option) (*session, error) {
	s, err := openState(cmd, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.LoadPlan(filename); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	return s, nil
}
