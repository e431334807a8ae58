package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/skishore/inkstone/internal/models"
	"github.com/skishore/inkstone/internal/teach"
)

var replayCmd = &cobra.Command{
	Use:   "replay [character] [strokes.json]",
	Short: "Replay recorded strokes through a teaching session",
	Args:  cobra.ExactArgs(2),
	Run:   replayStrokes,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func replayStrokes(cmd *cobra.Command, args []string) {
	lib := loadLibrary()
	record, err := lib.Lookup(args[0])
	if err != nil {
		log.Fatal("Failed to find character:", err)
	}
	m, err := lib.Matcher(record.Character)
	if err != nil {
		log.Fatal("Failed to build matcher:", err)
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		log.Fatal("Failed to read strokes:", err)
	}
	var strokes []models.Polyline
	if err := json.Unmarshal(data, &strokes); err != nil {
		log.Fatal("Failed to parse strokes:", err)
	}

	session := teach.NewSession(m, len(record.Medians),
		teach.WithMaxAttempts(settings.MaxAttempts),
		teach.WithMaxMistakes(settings.MaxMistakes),
		teach.WithMessages(settings.Messages.AsMap()))

	for i, s := range strokes {
		fb, err := session.OnStroke(s)
		if err != nil {
			log.Fatalf("Stroke %d: %v", i, err)
		}
		line, err := json.Marshal(fb)
		if err != nil {
			log.Fatal("Failed to marshal feedback:", err)
		}
		fmt.Println(string(line))
		if session.Done() {
			break
		}
	}

	if !session.Done() {
		fmt.Printf("Incomplete: strokes %v still missing\n", session.Missing())
		return
	}
	grade := session.Grade()
	fmt.Printf("Grade: %s (%d mistake(s))\n", grade, session.Mistakes())
	if grade == teach.GradePoor {
		fmt.Println(settings.Messages.Again)
	}
}
