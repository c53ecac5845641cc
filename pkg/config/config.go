package config

// Config represents the complete arenatoken configuration
type Config struct {
	Network   string          `mapstructure:"network"`
	Contracts ContractsConfig `mapstructure:"contracts"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ContractsConfig contains the deployed contract addresses
type ContractsConfig struct {
	FungibleToken string `mapstructure:"fungible_token"`
	ArenaToken    string `mapstructure:"arena_token"`
	FlowJSON      string `mapstructure:"flow_json"` // Resolve missing addresses from this flow.json for Network
}

// Template sources
const (
	TemplateSourceEmbedded   = "embedded"
	TemplateSourceFilesystem = "filesystem"
)

// TemplatesConfig selects where cadence templates are read from
type TemplatesConfig struct {
	Source  string `mapstructure:"source"`
	BaseDir string `mapstructure:"base_dir"` // Only used by the filesystem source
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level           string        `mapstructure:"level"`
	TimestampFormat string        `mapstructure:"timestamp_format"`
	Color           bool          `mapstructure:"color"`
	File            LogFileConfig `mapstructure:"file"`
}

// LogFileConfig contains file logging settings
type LogFileConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
