package build

import (
	"github.com/crosshq/ndkbuild/internal/manifest"
	"github.com/crosshq/ndkbuild/internal/target"
)

// Resolves the final target set and API level for a run.
//
// Explicit CLI targets win outright; they are never merged with the
// manifest's defaults. Otherwise the manifest's target list applies, which
// already folds in the built-in default set. The platform level follows the
// same precedence: explicit flag, then manifest (itself defaulted).
func Resolve(cliTargets []target.ABI, cliPlatform int, cfg *manifest.Config) ([]target.ABI, int) {
	targets := cfg.Targets
	if len(cliTargets) > 0 {
		targets = target.Dedup(cliTargets)
	}

	platform := cfg.Platform
	if cliPlatform > 0 {
		platform = cliPlatform
	}

	return targets, platform
}
