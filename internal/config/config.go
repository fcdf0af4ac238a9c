// Package config loads the application configuration. Settings come from a
// config.toml next to the executable, with environment variables on top
// (HYAB_* and ANTHROPIC_API_KEY), so the tool keeps working with no config
// file at all.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	Server     ServerConfig     `toml:"server"`
	Data       DataConfig       `toml:"data"`
	FX         FXConfig         `toml:"fx"`
	Analysis   AnalysisConfig   `toml:"analysis"`
	Commentary CommentaryConfig `toml:"commentary"`
}

type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// FXConfig holds the default exchange rates to SEK. Request payloads may
// override them per run.
type FXConfig struct {
	EUR float64 `toml:"eur"`
	USD float64 `toml:"usd"`
	GBP float64 `toml:"gbp"`
}

// Rates expands the configured rates into the currency map the order-book
// processor expects. SEK is always 1.
func (f FXConfig) Rates() map[string]float64 {
	return map[string]float64{
		"SEK": 1.0,
		"EUR": f.EUR,
		"USD": f.USD,
		"GBP": f.GBP,
	}
}

// AnalysisConfig tunes the intelligence run.
type AnalysisConfig struct {
	MaterialityFloor     float64 `toml:"materiality_floor"`
	TrajectoryWindow     int     `toml:"trajectory_window"`
	DecompositionPeriods int     `toml:"decomposition_periods"`
	ComparisonOffset     int     `toml:"comparison_offset"`
}

// CommentaryConfig configures the optional AI commentary. The API key is
// never read from the TOML file, only from the environment.
type CommentaryConfig struct {
	Model          string `toml:"model"`
	MaxTokens      int    `toml:"max_tokens"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		FX: FXConfig{
			EUR: 11.30,
			USD: 10.50,
			GBP: 13.20,
		},
		Analysis: AnalysisConfig{
			MaterialityFloor:     50000,
			TrajectoryWindow:     6,
			DecompositionPeriods: 12,
			ComparisonOffset:     13,
		},
		Commentary: CommentaryConfig{
			Model:          "claude-sonnet-4-20250514",
			MaxTokens:      4000,
			TimeoutSeconds: 90,
		},
	}
}

// GetExeDir returns the directory holding the executable. config.toml and
// the data directory live beside the binary.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable directory and applies
// environment overrides. On first run the defaults are written out so there
// is a file to edit.
func LoadConfig() (*AppConfig, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return loadFrom(exeDir)
}

func loadFrom(dir string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// First run. A read-only install directory is not an error.
		_ = saveTo(dir, config)
	default:
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("HYAB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("HYAB_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("HYAB_COMMENTARY_MODEL"); v != "" {
		config.Commentary.Model = v
	}
}

// APIKey returns the Anthropic API key from the environment, empty when the
// commentary feature should stay off.
func APIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

// SaveConfig writes the configuration back to config.toml beside the
// executable.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return saveTo(exeDir, config)
}

func saveTo(dir string, config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.toml"), data, 0644)
}

// EnsureDataDir creates the data directory and its subdirectories next to
// the executable and returns the resolved path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
