package config

import (
	"github.com/onflow/flow-go/fvm/systemcontracts"
	flowgo "github.com/onflow/flow-go/model/flow"
	"github.com/spf13/viper"
)

// DefaultConfig returns a Config for a local emulator. Contract addresses are left empty
// and filled in per network after loading.
func DefaultConfig() *Config {
	return &Config{
		Network: "emulator",
		Contracts: ContractsConfig{
			FungibleToken: "",
			ArenaToken:    "",
			FlowJSON:      "",
		},
		Templates: TemplatesConfig{
			Source:  TemplateSourceEmbedded,
			BaseDir: "cadence",
		},
		Logging: LoggingConfig{
			Level:           "info",
			TimestampFormat: "15:04:05",
			Color:           true,
			File: LogFileConfig{
				Enabled: false,
				Path:    "arena.log",
			},
		},
	}
}

// setDefaults registers every key with viper so environment overrides are picked up on unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("network", cfg.Network)
	v.SetDefault("contracts.fungible_token", cfg.Contracts.FungibleToken)
	v.SetDefault("contracts.arena_token", cfg.Contracts.ArenaToken)
	v.SetDefault("contracts.flow_json", cfg.Contracts.FlowJSON)
	v.SetDefault("templates.source", cfg.Templates.Source)
	v.SetDefault("templates.base_dir", cfg.Templates.BaseDir)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.timestamp_format", cfg.Logging.TimestampFormat)
	v.SetDefault("logging.color", cfg.Logging.Color)
	v.SetDefault("logging.file.enabled", cfg.Logging.File.Enabled)
	v.SetDefault("logging.file.path", cfg.Logging.File.Path)
}

var chains = map[string]flowgo.ChainID{
	"emulator": flowgo.Emulator,
	"testnet":  flowgo.Testnet,
	"mainnet":  flowgo.Mainnet,
}

// applyNetworkDefaults fills addresses that are still empty.
// FungibleToken is a system contract on every chain, ArenaToken only has a
// well known home on the emulator where it is deployed to the service account.
func applyNetworkDefaults(cfg *Config) {
	chainID, ok := chains[cfg.Network]
	if !ok {
		return
	}
	if cfg.Contracts.FungibleToken == "" {
		cfg.Contracts.FungibleToken = systemcontracts.SystemContractsForChain(chainID).FungibleToken.Address.Hex()
	}
	if cfg.Contracts.ArenaToken == "" && chainID == flowgo.Emulator {
		cfg.Contracts.ArenaToken = chainID.Chain().ServiceAddress().Hex()
	}
}
