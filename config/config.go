package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/s0up4200/fffdata/fff"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. FFF_API_BASE_URL
const EnvPrefix = "FFF"

// Load loads the configuration from file, defaults and environment.
//
// When configPath is empty the standard locations are searched and a missing
// file is not an error. An explicit configPath must exist.
func Load(configPath string) (*Config, error) {
	return load(configPath, searchPaths())
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables already set are left untouched. A missing file is ignored unless
// required is set.
func LoadEnvFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading env file %s: %w", path, err)
}

func searchPaths() []string {
	// Check current directory first
	paths := []string{"."}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".fffdata"))
	}

	// Check /etc
	return append(paths, "/etc/fffdata/")
}

func load(configPath string, paths []string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range paths {
			v.AddConfigPath(p)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", fff.DefaultBaseURL)
	v.SetDefault("api.timeout", fff.DefaultTimeout)
	v.SetDefault("api.user_agent", fff.DefaultUserAgent)

	// Output defaults
	v.SetDefault("output.concurrency", 4)
	v.SetDefault("output.json", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
	v.SetDefault("logging.compress", true)
}

var (
	structValidator *validator.Validate
	validatorOnce   sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their config key
		structValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		})
	})
	return structValidator
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if err := getValidator().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return err
		}
		return fieldError(fieldErrs[0])
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter %q has an empty expression", name)
		}
	}

	return nil
}

// fieldError renders a validation failure using the config key, e.g.
// "logging.level must be one of: debug info warn error"
func fieldError(e validator.FieldError) error {
	// Namespace is "Config.api.base_url"
	key := e.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s is required", key)
	case "http_url":
		return fmt.Errorf("%s must be an http(s) URL: %v", key, e.Value())
	case "oneof":
		return fmt.Errorf("invalid %s: %v (must be one of: %s)", key, e.Value(), e.Param())
	case "min":
		return fmt.Errorf("%s must be at least %s, got %v", key, e.Param(), e.Value())
	case "max":
		return fmt.Errorf("%s must be at most %s, got %v", key, e.Param(), e.Value())
	default:
		return fmt.Errorf("%s is invalid: %v", key, e.Value())
	}
}
