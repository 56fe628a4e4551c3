package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	arberrors "github.com/matzehuels/arbor/pkg/errors"
)

// Config holds user defaults for the CLI, loaded from an optional TOML file.
// Flags override file values; file values override the built-in defaults.
type Config struct {
	// Indent is the number of spaces per tree level in print output.
	Indent int `toml:"indent"`
	// Color enables styled terminal output.
	Color bool `toml:"color"`
	// Format is the default render format: dot, svg, or png.
	Format string `toml:"format"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{Indent: 2, Color: true, Format: "svg"}
}

// defaultConfigPath returns the conventional config location,
// e.g. ~/.config/arbor/config.toml. Empty if the user config dir is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "arbor", "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error and yields the defaults;
// a file that exists but does not parse is reported, since silently
// ignoring it would hide typos.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, arberrors.New(arberrors.ErrCodeFileNotFound, "config file %s does not exist", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, arberrors.Wrap(arberrors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if cfg.Indent < 1 {
		return cfg, arberrors.New(arberrors.ErrCodeInvalidInput, "config %s: indent must be at least 1", path)
	}
	return cfg, nil
}
