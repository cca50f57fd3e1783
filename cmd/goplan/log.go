package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored measurements",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var undoCount int

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the most recent measurement from the stored log",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(undoCmd)

	undoCmd.Flags().IntVarP(&undoCount, "count", "n", 1, "number of measurements to remove")
}

func runList(cmd *cobra.Command, args []string) error {
	state, err := openState(cmd)
	if err != nil {
		return err
	}
	defer state.Close()

	log := state.Engine.Log()
	if len(log) == 0 {
		fmt.Println("No measurements stored.")
		return nil
	}

	var total float64
	for i, m := range log {
		fmt.Printf("%3d. %s -> %s  %s\n", i+1, formatPoint(m.Start), formatPoint(m.End), m.Label().Text)
		total += m.Distance
	}
	fmt.Printf("\n%d measurement(s), total %.2fm\n", len(log), total)
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	state, err := openState(cmd)
	if err != nil {
		return err
	}
	defer state.Close()

	removed := 0
	for i := 0; i < undoCount; i++ {
		m, ok := state.Engine.Undo()
		if !ok {
			break
		}
		removed++
		fmt.Printf("Removed %s -> %s  %s\n", formatPoint(m.Start), formatPoint(m.End), m.Label().Text)
	}

	if removed == 0 {
		fmt.Println("Nothing to undo.")
		return nil
	}
	fmt.Printf("%d measurement(s) left\n", state.Engine.Len())
	return nil
}
