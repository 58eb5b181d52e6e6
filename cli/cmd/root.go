package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agoralabs-sh/vip030026-go/cli/config"
	"github.com/agoralabs-sh/vip030026-go/logging"
)

var (
	cfgFile   string
	logLevel  logging.Level
	logFormat logging.Format

	initLogging sync.Once

	logger = logging.GetLogger("cli")

	rootCmd = &cobra.Command{
		Use:   "vip030026",
		Short: "CLI for VIP-03-0026 credentials",
		Long: `CLI for generating, inspecting and converting VIP-03-0026 credentials,
and for signing and verifying messages with them.

A <credential> argument is a path to a JSON or YAML record file, "-" to read
from standard input, or the base64 string form of a credential.`,
		Version:      "0.1.0",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed",
			"err", err,
		)
		return err
	}
	return nil
}

func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
	} else {
		configDir := config.Directory()
		configPath := filepath.Join(configDir, config.Filename)

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Ensure the configuration file exists.
		_ = os.MkdirAll(configDir, 0o700)
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			if _, err := os.Create(configPath); err != nil {
				cobra.CheckErr(fmt.Errorf("failed to create configuration file: %w", err))
			}

			// Populate the initial configuration file with defaults.
			config.ResetDefaults()
			_ = config.Save(v)
		}
	}

	_ = v.ReadInConfig()

	// Missing keys keep their default values.
	config.ResetDefaults()
	err := config.Load(v)
	cobra.CheckErr(err)
	err = config.Global().Validate()
	cobra.CheckErr(err)

	initLogging.Do(setupLogging)
}

func setupLogging() {
	cfg := config.Global()
	flags := rootCmd.PersistentFlags()

	lvl := logLevel
	if !flags.Changed("log.level") {
		var err error
		lvl, err = cfg.Log.ParseLevel()
		cobra.CheckErr(err)
	}
	format := logFormat
	if !flags.Changed("log.format") {
		var err error
		format, err = cfg.Log.ParseFormat()
		cobra.CheckErr(err)
	}

	cobra.CheckErr(logging.Initialize(os.Stderr, format, lvl, nil))
	logger.Debug("logging initialized",
		"level", lvl,
		"format", format,
	)
}

func init() {
	cobra.OnInitialize(initConfig)

	logLevel = logging.LevelWarn
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file to use")
	rootCmd.PersistentFlags().Var(&logLevel, "log.level", "log level")
	rootCmd.PersistentFlags().Var(&logFormat, "log.format", "log format")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(publicCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(importCmd)
}
