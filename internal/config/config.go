package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skishore/inkstone/internal/logger"
)

type Messages struct {
	ShouldHook     string `yaml:"should_hook"`
	StrokeBackward string `yaml:"stroke_backward"`
	Again          string `yaml:"again"`
}

// AsMap keys each message by its warning name.
func (m Messages) AsMap() map[string]string {
	return map[string]string{
		"should_hook":     m.ShouldHook,
		"stroke_backward": m.StrokeBackward,
		"again":           m.Again,
	}
}

type Settings struct {
	DataPath    string   `yaml:"data_path"`
	LogLevel    string   `yaml:"log_level"`
	MaxAttempts int      `yaml:"max_attempts"`
	MaxMistakes int      `yaml:"max_mistakes"`
	CacheTTL    string   `yaml:"cache_ttl"`
	Messages    Messages `yaml:"messages"`
}

// TTL parses CacheTTL. Settings returned by LoadSettings always parse.
func (s *Settings) TTL() time.Duration {
	d, err := time.ParseDuration(s.CacheTTL)
	if err != nil {
		return 0
	}
	return d
}

func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "inkstone")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

func GetSettingsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.yaml"), nil
}

func Defaults(configDir string) *Settings {
	return &Settings{
		DataPath:    filepath.Join(configDir, "graphics.txt"),
		LogLevel:    "warn",
		MaxAttempts: 3,
		MaxMistakes: 4,
		CacheTTL:    "10m",
		Messages: Messages{
			ShouldHook:     "Should hook.",
			StrokeBackward: "Stroke backward.",
			Again:          "Again!",
		},
	}
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads settings from path, creating the file with defaults
// if it does not exist. Malformed or out-of-range values fall back to their
// defaults with a warning rather than failing.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	log := logger.Logger()
	defaultSettings := Defaults(filepath.Dir(settingsPath))

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("creating default settings file", "path", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Warn("failed to create default settings file", "err", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := yaml.Unmarshal(data, &rawSettings); err != nil {
		log.Warn("invalid settings file, using defaults", "err", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Warn("unrecognised setting key in settings file", "key", key)
		}
	}

	settings := Defaults(filepath.Dir(settingsPath))
	if err := yaml.Unmarshal(data, settings); err != nil {
		log.Warn("invalid settings file, using defaults", "err", err)
		return defaultSettings, nil
	}

	validate(settings, defaultSettings)
	return settings, nil
}

func validate(settings, defaults *Settings) {
	log := logger.Logger()
	if settings.MaxAttempts < 1 {
		log.Warn("invalid max_attempts, must be at least 1, using default",
			"value", settings.MaxAttempts, "default", defaults.MaxAttempts)
		settings.MaxAttempts = defaults.MaxAttempts
	}
	if settings.MaxMistakes < 1 {
		log.Warn("invalid max_mistakes, must be at least 1, using default",
			"value", settings.MaxMistakes, "default", defaults.MaxMistakes)
		settings.MaxMistakes = defaults.MaxMistakes
	}
	if d, err := time.ParseDuration(settings.CacheTTL); err != nil || d < 0 {
		log.Warn("invalid cache_ttl, using default",
			"value", settings.CacheTTL, "default", defaults.CacheTTL)
		settings.CacheTTL = defaults.CacheTTL
	}
	switch strings.ToLower(settings.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		log.Warn("invalid log_level, using default",
			"value", settings.LogLevel, "default", defaults.LogLevel)
		settings.LogLevel = defaults.LogLevel
	}
	if settings.DataPath == "" {
		settings.DataPath = defaults.DataPath
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if yamlTag := field.Tag.Get("yaml"); yamlTag != "" {
			// Handle yaml tags like "field,omitempty"
			tagName := strings.Split(yamlTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
