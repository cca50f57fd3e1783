package main

import (
	"fmt"
	"sort"

	"github.com/philipparndt/goplan/internal/app"
	"github.com/philipparndt/goplan/internal/scene"
	"github.com/spf13/cobra"
)

var listPrimitives bool

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Build the 3D model of a plan and show what was generated",
	Long: `Build walls, beams and reference lines from a plan using the layer styles and
report the primitives, materials and snap points that were produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&listPrimitives, "primitives", "p", false, "list every primitive")
}

func runBuild(cmd *cobra.Command, args []string) error {
	filename := args[0]

	state, err := openPlan(cmd, filename)
	if err != nil {
		return err
	}
	defer state.Close()

	printScene(filename, state.SceneState)
	return nil
}

func printScene(filename string, state *app.SceneState) {
	s := state.Scene()
	settings := state.Settings()

	fmt.Println("Plan Model")
	fmt.Println("==========")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Center: (%.3f, %.3f)\n", s.Context.CenterX, s.Context.CenterY)
	fmt.Printf("Wall: height %.2f, thickness %.2f\n\n", settings.WallHeight, settings.WallThickness)

	fmt.Println("Primitives:")
	fmt.Printf("  Boxes: %d\n", s.Group.Count(scene.BoxPrimitive))
	fmt.Printf("  Lines: %d\n", s.Group.Count(scene.LinePrimitive))
	fmt.Printf("  Materials: %d\n", s.Group.Materials())
	fmt.Printf("  Snap points: %d\n\n", s.Snap.Len())

	perLayer := make(map[string]int)
	for _, p := range s.Group.Primitives {
		perLayer[p.Layer]++
	}
	names := make([]string, 0, len(perLayer))
	for name := range perLayer {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("By Layer:")
	for _, name := range names {
		fmt.Printf("  %-24s %-5s %d\n", name, state.Styles()[name].Kind, perLayer[name])
	}

	if !listPrimitives {
		return
	}

	fmt.Println("\nPrimitives:")
	for i, p := range s.Group.Primitives {
		switch p.Kind {
		case scene.BoxPrimitive:
			size := p.Size()
			fmt.Printf("  %4d box  %-16s center %s size %.2f x %.2f x %.2f\n",
				i, p.Layer, formatPoint(p.Box.Center), size.X, size.Y, size.Z)
		case scene.LinePrimitive:
			fmt.Printf("  %4d line %-16s %s -> %s\n", i, p.Layer, formatPoint(p.Start), formatPoint(p.End))
		}
	}
}
