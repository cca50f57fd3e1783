package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/philipparndt/goplan/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Rebuild a plan whenever it or its layer file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "delay before rebuilding after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	state, err := openPlan(cmd, filename)
	if err != nil {
		return err
	}
	defer state.Close()
	logger := state.logger

	printScene(filename, state.SceneState)

	w, err := watcher.New(watchDebounce, logger.Named("watch"))
	if err != nil {
		return err
	}
	defer w.Close()

	// Callbacks fire on timer goroutines; the scene is only touched here
	changes := make(chan string, 4)
	notify := func(path string) {
		select {
		case changes <- path:
		default:
		}
	}

	planPath, _ := filepath.Abs(filename)
	files := []string{filename}
	if layers := state.cfg.Plan.Layers; layers != "" {
		files = append(files, layers)
	}
	if err := w.Watch(files, notify); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go w.Run(ctx)

	fmt.Printf("\nWatching %s for changes (Ctrl+C to stop)\n", filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			var err error
			if path == planPath {
				err = state.Reload()
			} else {
				err = state.ReloadLayers()
			}
			if err != nil {
				logger.Warn("rebuild failed, keeping previous scene", zap.String("path", path), zap.Error(err))
				continue
			}
			fmt.Printf("\n[%s] %s changed\n\n", time.Now().Format("15:04:05"), filepath.Base(path))
			printScene(filename, state.SceneState)
		}
	}
}
