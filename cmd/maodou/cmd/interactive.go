package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the terminal counter.

Controls:
  ctrl+s  Count
  ctrl+o  Open a .txt file
  ctrl+e  Fill in the example text
  ctrl+l  Clear
  ctrl+y  Copy the detail report
  f1      Help
  esc     Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
