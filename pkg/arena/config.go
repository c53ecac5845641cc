package arena

import (
	"github.com/bjartek/arenatoken/pkg/config"
	"github.com/bjartek/arenatoken/pkg/templates"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// NewFromConfig creates a service using the addresses and template source of a loaded configuration
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) (*Service, error) {
	var loader *templates.Loader
	switch cfg.Templates.Source {
	case config.TemplateSourceEmbedded:
		loader = templates.NewEmbeddedLoader()
	case config.TemplateSourceFilesystem:
		loader = templates.NewOsLoader(cfg.Templates.BaseDir)
	default:
		return nil, errors.Newf("unknown template source %q", cfg.Templates.Source)
	}

	logger.Info().
		Str("network", cfg.Network).
		Str("fungibleToken", cfg.Contracts.FungibleToken).
		Str("arenaToken", cfg.Contracts.ArenaToken).
		Str("templates", cfg.Templates.Source).
		Msg("Created ArenaToken service")

	return New(cfg.Contracts.FungibleToken, cfg.Contracts.ArenaToken,
		WithLoader(loader),
		WithLogger(logger),
	), nil
}
