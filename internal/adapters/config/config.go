package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI configuration from config.toml.
type Config struct {
	LogLevel  string  `toml:"log_level"`
	LogFormat string  `toml:"log_format"`
	NoColor   bool    `toml:"no_color"`
	Printer   Printer `toml:"printer"`
	Threads   Threads `toml:"threads"`
}

// Printer configures value rendering.
type Printer struct {
	Digits int `toml:"digits"`
}

// Threads configures the worker demo bundles.
type Threads struct {
	RecordID   int       `toml:"record_id"`
	RecordName string    `toml:"record_name"`
	Series     []float64 `toml:"series"`
	DoubleTake int       `toml:"double_take"`
	PowerTake  int       `toml:"power_take"`
	ListTake   int       `toml:"list_take"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Printer:   Printer{Digits: -1},
		Threads: Threads{
			RecordID:   1,
			RecordName: "Mehul",
			Series:     []float64{1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9},
			DoubleTake: 3,
			PowerTake:  4,
			ListTake:   3,
		},
	}
}

// Load reads path over the defaults. An empty path selects the default
// location, where a missing file is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, errors.New("config path is a directory")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "showcase", "config.toml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "showcase", "config.toml"), nil
}
