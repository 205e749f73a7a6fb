package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initConfig reads .env, the config file and THEMELIST_* variables, in that order.
func initConfig() {
	configErr = nil

	// A missing .env is the normal case.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "themelist"))
		viper.AddConfigPath(".")
		viper.SetConfigName("themelist")
	}

	viper.SetEnvPrefix("THEMELIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	verbose = viper.GetBool("verbose")
	defer func() { verbose = viper.GetBool("verbose") }()

	if err := viper.ReadInConfig(); err == nil {
		verbosef("Using config file: %s\n", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
		verbosef("No config file found, using defaults and flags.\n")
	} else {
		// An explicit --config, or a config file that exists but is broken.
		configErr = fmt.Errorf("error reading config file: %w", err)
	}
}

// recordsFromConfig returns the `screens` list from the loaded config, if any.
func recordsFromConfig(v *viper.Viper) (Records, bool, error) {
	if !v.IsSet("screens") {
		return nil, false, nil
	}
	var records Records
	if err := v.UnmarshalKey("screens", &records); err != nil {
		return nil, false, fmt.Errorf("error decoding screens from config: %w", err)
	}
	return records, true, nil
}

// resolveRecords picks the record source: manifest, then config, then the
// built-in list.
func resolveRecords(v *viper.Viper, manifestPath string) (Records, error) {
	if manifestPath != "" {
		return loadManifest(manifestPath)
	}

	records, ok, err := recordsFromConfig(v)
	if err != nil {
		return nil, err
	}
	if ok {
		verbosef("Loaded %d screens from config.\n", len(records))
		return records, nil
	}

	verbosef("Using built-in screen list.\n")
	return defaultScreens(), nil
}
