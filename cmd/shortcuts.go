package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts [character]",
	Short: "Show the stroke sequences a character can be matched against",
	Args:  cobra.ExactArgs(1),
	Run:   showShortcuts,
}

func init() {
	rootCmd.AddCommand(shortcutsCmd)
}

func showShortcuts(cmd *cobra.Command, args []string) {
	m, err := loadLibrary().Matcher(args[0])
	if err != nil {
		log.Fatal("Failed to build matcher:", err)
	}
	for _, c := range m.Candidates() {
		kind := "stroke"
		if len(c.Indices) > 1 {
			kind = "shortcut"
		}
		fmt.Printf("%-8s %v\t%d point(s)\n", kind, c.Indices, len(c.Median))
	}
}
