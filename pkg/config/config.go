package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the user-tunable behavior switches.
type Settings struct {
	// AutoDetectLanguage controls whether results carry a suggested
	// syntax language and whether switch-language actions are offered.
	AutoDetectLanguage bool `mapstructure:"auto_detect_language" yaml:"auto_detect_language"`

	// ShowIntelligentSuggestions enables the interactive suggestion
	// menu on detection.
	ShowIntelligentSuggestions bool `mapstructure:"show_intelligent_suggestions" yaml:"show_intelligent_suggestions"`

	// CopyResults writes transformed text back to the clipboard.
	CopyResults bool `mapstructure:"copy_results" yaml:"copy_results"`

	// DebounceMs is how long the clipboard watcher waits after a
	// change before classifying, in milliseconds.
	DebounceMs int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// Debounce returns the watch debounce as a duration, falling back to
// the default when unset or nonsense.
func (s *Settings) Debounce() time.Duration {
	ms := s.DebounceMs
	if ms <= 0 {
		ms = DefaultDebounceMs
	}
	return time.Duration(ms) * time.Millisecond
}

func GetConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(LocalConfigDir, LocalConfigFile)
	}
	return filepath.Join(base, LocalConfigDir, LocalConfigFile)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("textlens")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TEXTLENS")
	v.AutomaticEnv()
	v.SetDefault("auto_detect_language", true)
	v.SetDefault("show_intelligent_suggestions", true)
	v.SetDefault("copy_results", false)
	v.SetDefault("debounce_ms", DefaultDebounceMs)
	return v
}

// LoadSettings reads the settings file with TEXTLENS_* environment
// overrides applied on top. A missing file yields the defaults.
func LoadSettings() (*Settings, error) {
	return loadSettingsFrom(filepath.Dir(GetConfigPath()))
}

func loadSettingsFrom(dir string) (*Settings, error) {
	v := newViper()
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes the settings to the config path, creating the
// directory when needed.
func (s *Settings) SaveSettings() error {
	return s.saveSettingsTo(GetConfigPath())
}

func (s *Settings) saveSettingsTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	v.Set("auto_detect_language", s.AutoDetectLanguage)
	v.Set("show_intelligent_suggestions", s.ShowIntelligentSuggestions)
	v.Set("copy_results", s.CopyResults)
	v.Set("debounce_ms", s.DebounceMs)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
