package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	AppName   = "makegen"
	envPrefix = "MAKEGEN"
	fileName  = "config.toml"
)

// Setting keys. Each is also readable from MAKEGEN_<KEY>.
const (
	KeyLogLevel = "log_level"
	KeyNoColor  = "no_color"
	KeyQuiet    = "quiet"
)

// Settings are the resolved ambient options of a run.
type Settings struct {
	LogLevel   string
	NoColor    bool
	Quiet      bool
	ConfigFile string // file that was read, empty if none
}

// Dir returns the makegen config directory ($XDG_CONFIG_HOME/makegen).
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultFile returns the path of the optional default config file.
func DefaultFile() string {
	return filepath.Join(Dir(), fileName)
}

// New returns a viper instance with defaults and environment binding.
// Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyQuiet, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and resolves Settings.
// An empty path means DefaultFile, which may be absent. An explicit path must exist.
// The format follows the file extension (toml, yaml, json).
func Load(v *viper.Viper, path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile()
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "reading config %s", path)
		}
	} else if explicit {
		return Settings{}, errors.Wrapf(err, "reading config %s", path)
	}

	s := Settings{
		LogLevel:   v.GetString(KeyLogLevel),
		NoColor:    v.GetBool(KeyNoColor),
		Quiet:      v.GetBool(KeyQuiet),
		ConfigFile: v.ConfigFileUsed(),
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, errors.Newf("invalid log level %q: use debug, info, warn or error", s.LogLevel)
	}
	return s, nil
}
