package config

import (
	"fmt"
	"regexp"
	"strings"
)

// validate validates the configuration
func validate(cfg *Config) error {
	if err := validateNetwork(cfg.Network); err != nil {
		return err
	}

	if err := validateContracts(cfg.Network, cfg.Contracts); err != nil {
		return err
	}

	if err := validateTemplates(cfg.Templates); err != nil {
		return err
	}

	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}

	return nil
}

// validateNetwork validates the network mode
func validateNetwork(network string) error {
	if _, ok := chains[network]; !ok {
		return fmt.Errorf("invalid network '%s': must be one of: emulator, testnet, mainnet", network)
	}
	return nil
}

var addressPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{1,16}$`)

func validateContracts(network string, contracts ContractsConfig) error {
	checkAddress := func(address, name string) error {
		if address == "" {
			return fmt.Errorf("no %s address configured for network %s", name, network)
		}
		if !addressPattern.MatchString(address) {
			return fmt.Errorf("invalid %s address '%s': must be at most 16 hex characters", name, address)
		}
		return nil
	}

	if err := checkAddress(contracts.FungibleToken, "fungible_token"); err != nil {
		return err
	}
	if err := checkAddress(contracts.ArenaToken, "arena_token"); err != nil {
		return err
	}
	return nil
}

func validateTemplates(templates TemplatesConfig) error {
	switch templates.Source {
	case TemplateSourceEmbedded:
		return nil
	case TemplateSourceFilesystem:
		if templates.BaseDir == "" {
			return fmt.Errorf("templates.base_dir is required for the filesystem source")
		}
		return nil
	default:
		return fmt.Errorf("invalid template source '%s': must be one of: embedded, filesystem", templates.Source)
	}
}

// validateLogging validates log settings
func validateLogging(logging LoggingConfig) error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	if !validLevels[strings.ToLower(logging.Level)] {
		return fmt.Errorf("invalid log level '%s': must be one of: trace, debug, info, warn, error, fatal", logging.Level)
	}

	if logging.File.Enabled && logging.File.Path == "" {
		return fmt.Errorf("logging.file.path is required when file logging is enabled")
	}

	return nil
}
