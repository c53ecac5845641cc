package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Load loads configuration from file with the following priority:
// 1. Explicit path via configPath parameter
// 2. ./arena.yaml (current directory)
// 3. ./config/arena.yaml
// 4. ~/.arena/arena.yaml (user home)
// 5. /etc/arena/arena.yaml (system-wide)
// Falls back to defaults if no config file is found
func Load(configPath string, logger zerolog.Logger) (*Config, error) {
	return load(configPath, afero.NewOsFs(), logger)
}

func load(configPath string, fs afero.Fs, logger zerolog.Logger) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName("arena")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".arena"))
		}
		v.AddConfigPath("/etc/arena")
	}

	// Environment variables use ARENA_ prefix and underscore separators
	// Example: ARENA_NETWORK=testnet, ARENA_CONTRACTS_ARENA_TOKEN=0x01cf0e2f2f715450
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	configFileUsed := ""
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug().
				Str("searchPaths", "., ./config, ~/.arena, /etc/arena").
				Msg("No config file found in search paths, using defaults")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		configFileUsed = v.ConfigFileUsed()
		logger.Debug().Str("configFile", configFileUsed).Msg("Config file loaded")
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := applyFlowJSON(cfg, fs); err != nil {
		return nil, err
	}
	applyNetworkDefaults(cfg)

	logger.Info().
		Bool("configFileFound", configFileUsed != "").
		Str("configFile", configFileUsed).
		Str("network", cfg.Network).
		Interface("contracts", cfg.Contracts).
		Interface("templates", cfg.Templates).
		Interface("logging", cfg.Logging).
		Msg("Complete effective configuration")

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyFlowJSON fills addresses that are not set explicitly from flow.json
func applyFlowJSON(cfg *Config, fs afero.Fs) error {
	if cfg.Contracts.FlowJSON == "" {
		return nil
	}
	if cfg.Contracts.FungibleToken != "" && cfg.Contracts.ArenaToken != "" {
		return nil
	}

	resolved, err := AddressesFromFlowJSON(fs, []string{cfg.Contracts.FlowJSON}, cfg.Network)
	if err != nil {
		return fmt.Errorf("error resolving contracts from %s: %w", cfg.Contracts.FlowJSON, err)
	}
	if cfg.Contracts.FungibleToken == "" {
		cfg.Contracts.FungibleToken = resolved.FungibleToken
	}
	if cfg.Contracts.ArenaToken == "" {
		cfg.Contracts.ArenaToken = resolved.ArenaToken
	}
	return nil
}
