// Package arenatoken embeds the ArenaToken cadence templates.
package arenatoken

import "embed"

//go:embed cadence
var Cadence embed.FS
