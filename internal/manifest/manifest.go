package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/crosshq/ndkbuild/internal/target"
)

var ErrManifest = errors.New("invalid manifest")

// API level used when neither the CLI nor the manifest names one.
//
// 21 is the first level at which all four supported ABIs exist.
const DefaultPlatform = 21

// Mirrors the subset of Cargo.toml the tool reads.
type file struct {
	Package struct {
		Name     string `toml:"name"`
		Metadata struct {
			NDK struct {
				Targets  []string `toml:"targets"`
				Platform int      `toml:"platform"`
			} `toml:"ndk"`
		} `toml:"metadata"`
	} `toml:"package"`
}

// Project configuration resolved from a Cargo manifest.
//
// Targets and Platform already fold in the built-in defaults, so callers
// never see an empty target set or a zero platform level.
type Config struct {
	Name      string       // Package name from the manifest.
	Targets   []target.ABI // Default targets, from [package.metadata.ndk].
	Platform  int          // Default API level, from [package.metadata.ndk].
	TargetDir string       // Cargo's output root for build artifacts.
}

// Loads and resolves the Cargo manifest at the given path.
//
// A missing [package.metadata.ndk] table is not an error; the built-in
// defaults (all supported ABIs, platform 21) apply. A manifest that does not
// parse, or that names an unknown target, is.
func Load(path string) (*Config, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, path, err)
	}

	targets, err := resolveTargets(f.Package.Metadata.NDK.Targets)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, path, err)
	}

	platform := f.Package.Metadata.NDK.Platform
	if platform <= 0 {
		platform = DefaultPlatform
	}

	return &Config{
		Name:      f.Package.Name,
		Targets:   targets,
		Platform:  platform,
		TargetDir: targetDir(filepath.Dir(path)),
	}, nil
}

// Parses the manifest's target list, falling back to all supported ABIs
// when the manifest names none.
func resolveTargets(names []string) ([]target.ABI, error) {
	if len(names) == 0 {
		return target.All(), nil
	}

	parsed := make([]target.ABI, 0, len(names))
	for _, name := range names {
		abi, err := target.Parse(name)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, abi)
	}
	return target.Dedup(parsed), nil
}

// Returns cargo's artifact output root for a project.
//
// CARGO_TARGET_DIR overrides the conventional <root>/target directory;
// a relative override is resolved against the project root, as cargo does.
func targetDir(root string) string {
	if dir := os.Getenv("CARGO_TARGET_DIR"); dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(root, dir)
	}
	return filepath.Join(root, "target")
}
