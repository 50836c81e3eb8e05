// Package config provides the configuration loader for semi.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file read when SEMI_CONFIG is unset.
	DefaultFilename = "semi.yaml"
	// EnvPrefix prefixes every environment override, e.g. SEMI_ROTATE_TOLERANCE.
	EnvPrefix = "SEMI"
	// PathEnv names the environment variable holding the configuration path.
	PathEnv = "SEMI_CONFIG"
)

// Loader implements ports.ConfigLoader on top of viper.
type Loader struct {
	Path   string
	Logger ports.Logger
}

// NewLoader creates a Loader reading path. An empty path resolves SEMI_CONFIG,
// falling back to DefaultFilename.
func NewLoader(path string, log ports.Logger) *Loader {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		path = DefaultFilename
	}
	return &Loader{Path: path, Logger: log}
}

// Load reads defaults, the optional file and SEMI_ environment overrides.
func (l *Loader) Load() (domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetConfigFile(l.Path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(l.Path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", l.Path)
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		if l.Logger != nil {
			l.Logger.Info("no config file at " + l.Path + ", using defaults")
		}
	} else {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", l.Path)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", l.Path)
	}
	return f.toDomain()
}

// Render serializes cfg as YAML in the same layout Load accepts.
func Render(cfg domain.Config) ([]byte, error) {
	out, err := yaml.Marshal(FromDomain(cfg))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render config")
	}
	return out, nil
}
