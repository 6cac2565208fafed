// config.go loads the optional YAML configuration file. The solver and
// options can be overridden with -solver and -options, and -v forces debug
// logging; the table directory is taken from the file only.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the persistent settings of the command-line shell.
type config struct {
	// TableDir is where generated table files are stored and looked up.
	TableDir string `yaml:"table_dir"`

	// Solver and Options are the defaults for solve and gendata.
	Solver  string `yaml:"solver"`
	Options string `yaml:"options"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		TableDir: "tables",
		Solver:   "h48",
		Options:  "0;4;20",
		LogLevel: "info",
	}
}

// loadConfig reads the configuration from path, or from goh48/config.yaml
// under os.UserConfigDir when path is empty. A missing default file is not
// an error; a missing explicit path or a malformed file is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "goh48", "config.yaml")
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
