// Package config loads restkit configuration structs from YAML files and
// environment variables, using viper with optional .env loading.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/orbitalabs/restkit/validation"
)

// Defaulter is implemented by config structs that can fill in zero values.
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by config structs with custom validation.
type Validator interface {
	Validate() error
}

// LoaderConfig controls where configuration is read from.
type LoaderConfig struct {
	// ConfigFile is an explicit path to a YAML config file. When empty,
	// standard locations are searched.
	ConfigFile string
	// EnvFile is an explicit path to a .env file. When empty, "./.env" is
	// used if it exists.
	EnvFile string
	// EnvPrefix namespaces environment variable overrides, e.g. prefix
	// "BILLING" maps BILLING_TIMEOUT to the "timeout" key.
	EnvPrefix string
}

// Load reads configuration into out, in order: .env file, YAML config file,
// environment overrides. It then applies defaults, runs custom validation,
// and finally struct-tag validation.
func Load(out any, opts LoaderConfig) error {
	if envFile := resolveEnvFile(opts.EnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
	}
	v.AutomaticEnv()

	if cfgFile := resolveConfigFile(opts.ConfigFile); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	if d, ok := out.(Defaulter); ok {
		d.ApplyDefaults()
	}
	if val, ok := out.(Validator); ok {
		if err := val.Validate(); err != nil {
			return err
		}
	}
	return validation.Validate(out)
}

// resolveConfigFile returns the explicit path, or the first existing
// standard location.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{"./config/config.yml", "./config.yml"} {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func resolveEnvFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fileExists("./.env") {
		return "./.env"
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
