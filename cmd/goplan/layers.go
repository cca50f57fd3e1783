package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goplan/internal/layer"
	"github.com/philipparndt/goplan/pkg/cad"
	"github.com/spf13/cobra"
)

var writeLayers string

var layersCmd = &cobra.Command{
	Use:   "layers [file]",
	Short: "List the layers of a plan with their default styles",
	Long: `List every layer that carries LINE or LWPOLYLINE entities, how many entities
it has, and the style guessed from its name. Use --write to save the guesses as
a layer style file that can be edited and passed back with --layers.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)
	layersCmd.Flags().StringVarP(&writeLayers, "write", "w", "", "write the layer styles to a file (.json for the UI format, YAML otherwise)")
}

func runLayers(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	drawing, err := cad.Parse(filename)
	if err != nil {
		return fmt.Errorf("failed to parse plan file: %w", err)
	}

	styles := layer.Seed(drawing.Layers())
	if path := cfg.Plan.Layers; path != "" {
		overrides, err := layer.LoadFile(path)
		if err != nil {
			return err
		}
		for name, style := range overrides {
			styles[name] = style
		}
	}

	counts := drawing.LayerCounts()

	fmt.Println("Plan Layers")
	fmt.Println("===========")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Entities: %d\n\n", len(drawing.Entities))

	fmt.Printf("  %-24s %8s  %-6s %9s  %-8s %s\n", "Layer", "Entities", "Kind", "Elevation", "Color", "Glass")
	for _, name := range drawing.SortedLayers() {
		style := styles[name]
		glass := ""
		if style.Glass {
			glass = "yes"
		}
		fmt.Printf("  %-24s %8d  %-6s %9.2f  %-8s %s\n",
			name, counts[name], style.Kind, style.Elevation, layer.FormatColor(style.Color), glass)
	}

	if writeLayers == "" {
		return nil
	}

	data, err := styles.MarshalFile(writeLayers)
	if err != nil {
		return fmt.Errorf("failed to encode layer styles: %w", err)
	}
	if err := os.WriteFile(writeLayers, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", writeLayers, err)
	}
	fmt.Printf("\nLayer styles written to %s\n", writeLayers)
	return nil
}
