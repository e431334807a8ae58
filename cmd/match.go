package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"github.com/spf13/cobra"

	"github.com/skishore/inkstone/internal/models"
)

var (
	strokeJSON string
	missing    []int
)

var matchCmd = &cobra.Command{
	Use:   "match [character]",
	Short: "Match one input stroke against a character",
	Args:  cobra.ExactArgs(1),
	Run:   matchStroke,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringVar(&strokeJSON, "stroke", "", `input stroke as JSON points, e.g. '[[0.1,0.5],[0.9,0.5]]'`)
	matchCmd.Flags().IntSliceVar(&missing, "missing", nil, "strokes not yet drawn (defaults to all)")
	_ = matchCmd.MarkFlagRequired("stroke")
}

func matchStroke(cmd *cobra.Command, args []string) {
	lib := loadLibrary()
	record, err := lib.Lookup(args[0])
	if err != nil {
		log.Fatal("Failed to find character:", err)
	}
	m, err := lib.Matcher(record.Character)
	if err != nil {
		log.Fatal("Failed to build matcher:", err)
	}

	var input models.Polyline
	if err := json.Unmarshal([]byte(strokeJSON), &input); err != nil {
		log.Fatal("Failed to parse stroke:", err)
	}
	if missing == nil {
		for i := range record.Medians {
			missing = append(missing, i)
		}
	}
	missing = slices.Clone(missing)
	slices.Sort(missing)
	missing = slices.Compact(missing)

	result, err := m.Match(input, missing)
	if err != nil {
		log.Fatal("Failed to match stroke:", err)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("Failed to marshal result:", err)
	}
	fmt.Println(string(data))
}
