package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/agoralabs-sh/vip030026-go/credential"
	"github.com/agoralabs-sh/vip030026-go/logging"
)

// Filename is the name of the configuration file inside Directory.
const Filename = "cli.yaml"

var global Config

// Directory returns the path to the configuration directory.
func Directory() string {
	return filepath.Join(xdg.ConfigHome, "vip030026")
}

// Global returns the global configuration structure.
func Global() *Config {
	return &global
}

// Load loads the global configuration structure from viper.
func Load(v *viper.Viper) error {
	return global.Load(v)
}

// Save saves the global configuration structure to viper.
func Save(v *viper.Viper) error {
	global.viper = v
	return global.Save()
}

// ResetDefaults resets the global configuration to defaults.
func ResetDefaults() {
	global = Default
}

// Config contains the CLI configuration.
type Config struct {
	viper *viper.Viper

	Defaults Defaults `mapstructure:"defaults"`
	Log      Log      `mapstructure:"log"`
}

// Defaults are the values used when a command flag is not given.
type Defaults struct {
	// Algorithm is the algorithm used by generate.
	Algorithm string `mapstructure:"algorithm"`
	// Output is the output format of generate, public and convert.
	Output string `mapstructure:"output"`
	// SignatureEncoding is the text encoding of signatures.
	SignatureEncoding string `mapstructure:"signature_encoding"`
}

// Validate performs config validation.
func (d *Defaults) Validate() error {
	if _, err := credential.ParseAlgorithmID(d.Algorithm); err != nil {
		return fmt.Errorf("bad algorithm: %w", err)
	}
	if !slices.Contains(OutputFormats, d.Output) {
		return fmt.Errorf("bad output format '%s' (expected one of %s)", d.Output, strings.Join(OutputFormats, ", "))
	}
	if !slices.Contains(SignatureEncodings, d.SignatureEncoding) {
		return fmt.Errorf("bad signature encoding '%s' (expected one of %s)", d.SignatureEncoding, strings.Join(SignatureEncodings, ", "))
	}
	return nil
}

// Log is the logging configuration.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate performs config validation.
func (l *Log) Validate() error {
	if _, err := l.ParseLevel(); err != nil {
		return err
	}
	if _, err := l.ParseFormat(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the configured log level.
func (l *Log) ParseLevel() (logging.Level, error) {
	var lvl logging.Level
	err := lvl.Set(l.Level)
	return lvl, err
}

// ParseFormat returns the configured log format.
func (l *Log) ParseFormat() (logging.Format, error) {
	var f logging.Format
	err := f.Set(l.Format)
	return f, err
}

// Load loads the configuration structure from viper.
func (cfg *Config) Load(v *viper.Viper) error {
	cfg.viper = v
	return v.Unmarshal(cfg)
}

// encode is needed because mapstructure cannot encode structs into maps recursively.
func encode(in interface{}) (interface{}, error) {
	const tagName = "mapstructure"

	v := reflect.ValueOf(in)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		result := make(map[string]interface{})
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				continue
			}

			key := field.Name
			if tagValue := field.Tag.Get(tagName); tagValue != "" {
				key = strings.Split(tagValue, ",")[0]
			}

			value, err := encode(v.Field(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("failed to encode field '%s': %w", field.Name, err)
			}
			result[key] = value
		}
		return result, nil
	default:
		return v.Interface(), nil
	}
}

// Save saves the configuration structure to viper.
func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	encCfg, err := encode(cfg)
	if err != nil {
		return err
	}
	rawCfg := encCfg.(map[string]interface{})

	// There is no other way to reset the config, so we use ReadConfig with an empty buffer.
	var buf bytes.Buffer
	_ = cfg.viper.ReadConfig(&buf)
	if err = cfg.viper.MergeConfigMap(rawCfg); err != nil {
		return err
	}

	return cfg.viper.WriteConfig()
}

// Validate performs config validation.
func (cfg *Config) Validate() error {
	if err := cfg.Defaults.Validate(); err != nil {
		return fmt.Errorf("failed to validate defaults configuration: %w", err)
	}
	if err := cfg.Log.Validate(); err != nil {
		return fmt.Errorf("failed to validate log configuration: %w", err)
	}
	return nil
}
