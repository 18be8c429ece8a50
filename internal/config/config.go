package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/cordova-labs/cordovagen/internal/branding"
	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/logger"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the config file.
const (
	KeyRoot        = "root"
	KeyAndroidTool = "android_tool"
	KeyLogLevel    = "log_level"
)

// Keys lists every settable key in display order.
var Keys = []string{KeyRoot, KeyAndroidTool, KeyLogLevel}

var defaults = map[string]string{
	KeyRoot:        "",
	KeyAndroidTool: "android",
	KeyLogLevel:    "info",
}

// Config is the validated set of user settings.
type Config struct {
	// Root is the framework installation that templates are copied from.
	Root        string `mapstructure:"root" validate:"required"`
	AndroidTool string `mapstructure:"android_tool" validate:"required"`
	LogLevel    string `mapstructure:"log_level" validate:"loglevel"`
}

var validate = newValidator()

// newValidator registers "loglevel", which accepts exactly the names the
// logger understands.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := logger.ParseLevel(fl.Field().String())
		return ok
	})
	return v
}

const levelNames = "debug, info, warn (or warning), error"

// Dir returns the path to the config directory (~/.cordovagen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cordovagen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Store reads settings from one config file and the environment.
type Store struct {
	path string
	v    *viper.Viper
}

// Open returns a Store backed by the file at path. A missing file is not an
// error; every key then comes from the environment or its default.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, errs.New(errs.Environment, "read config", fmt.Errorf("%s: %w", path, err))
		}
	}
	return &Store{path: path, v: v}, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Override sets a value for this process only. Command-line flags use it.
func (s *Store) Override(key, value string) {
	if value != "" {
		s.v.Set(key, value)
	}
}

// Get returns a config value by key. Returns empty string if not set.
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Load decodes and validates the settings.
func (s *Store) Load() (*Config, error) {
	var c Config
	if err := s.v.Unmarshal(&c); err != nil {
		return nil, errs.New(errs.Environment, "load config", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, errs.New(errs.Environment, "load config", describe(err))
	}
	return &c, nil
}

// Set writes a key-value pair to the config file. Environment overrides are
// not persisted.
func (s *Store) Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return errs.Newf(errs.InputValidation, "set config", "unknown key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if key == KeyLogLevel {
		if err := validate.Var(value, "loglevel"); err != nil {
			return errs.Newf(errs.InputValidation, "set config", "%s must be one of %s", key, levelNames)
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errs.New(errs.Filesystem, "set config", fmt.Errorf("creating config directory: %w", err))
	}

	// A separate instance keeps defaults and env values out of the file.
	file := viper.New()
	file.SetConfigFile(s.path)
	file.SetConfigType(fileType)
	if _, err := os.Stat(s.path); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return errs.New(errs.Filesystem, "set config", fmt.Errorf("reading %s: %w", s.path, err))
		}
	}
	file.Set(key, value)
	if err := file.WriteConfigAs(s.path); err != nil {
		return errs.New(errs.Filesystem, "set config", fmt.Errorf("writing config file: %w", err))
	}

	s.v.Set(key, value)
	return nil
}

// describe turns validator errors into one readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe.StructField())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is not set (run '%s config set %s <value>' or set %s)",
				key, branding.CLIName(), key, branding.EnvVar(strings.ToUpper(key))))
		case "loglevel":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s, got %q", key, levelNames, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", key, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldKey(field string) string {
	switch field {
	case "Root":
		return KeyRoot
	case "AndroidTool":
		return KeyAndroidTool
	case "LogLevel":
		return KeyLogLevel
	}
	return field
}
