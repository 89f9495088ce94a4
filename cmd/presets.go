package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in sort presets",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, name := range preset.Names() {
			p, _ := preset.Lookup(name)
			marker := " "
			if name == preset.DefaultName {
				marker = "*"
			}
			fmt.Printf("  %s %-10s %-22s %s\n", marker, name, p.Mode.String()+", "+p.Direction.String(), p.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
