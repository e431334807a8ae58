package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all characters in the dataset",
	Run:   listCharacters,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listCharacters(cmd *cobra.Command, args []string) {
	lib := loadLibrary()
	chars := lib.Characters()
	if len(chars) == 0 {
		fmt.Println("No characters loaded")
		return
	}
	fmt.Printf("Loaded %d character(s):\n", len(chars))
	for _, c := range chars {
		record, err := lib.Lookup(c)
		if err != nil {
			log.Fatal("Failed to look up character:", err)
		}
		fmt.Printf("  %s\t%d stroke(s)\n", c, len(record.Medians))
	}
}
