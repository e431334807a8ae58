package cmd

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skishore/inkstone/internal/characters"
	"github.com/skishore/inkstone/internal/config"
	"github.com/skishore/inkstone/internal/logger"
)

var (
	dataPath string
	verbose  bool

	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "inkstone",
	Short: "Match handwritten strokes against Chinese character data",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		s, err := config.LoadSettings()
		if err != nil {
			log.Fatal("Failed to load settings:", err)
		}
		if dataPath != "" {
			s.DataPath = dataPath
		}
		level := logger.ParseLevel(s.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}
		logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		settings = s
	},
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "character dataset (defaults to data_path in settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log matcher decisions to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadLibrary() *characters.Library {
	records, err := characters.Load(settings.DataPath)
	if err != nil {
		log.Fatal("Failed to load characters:", err)
	}
	return characters.NewLibrary(records, settings.TTL())
}
