package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/crosshq/ndkbuild/internal/build"
	"github.com/crosshq/ndkbuild/internal/cargo"
	"github.com/crosshq/ndkbuild/internal/manifest"
	"github.com/crosshq/ndkbuild/internal/ndk"
	"github.com/crosshq/ndkbuild/internal/paths"
	"github.com/crosshq/ndkbuild/internal/target"
)

// Runs the full pipeline: NDK discovery, target resolution, the per-target
// build loop, and artifact collection.
//
// Discovery and resolution happen once up front; their outputs are
// authoritative for the rest of the run. Collection only runs when an
// output directory was requested and every target built successfully.
func runBuild(ctx context.Context) error {
	if len(RootCmd.CargoArgs) == 0 {
		return &ExitError{
			Code:    ExitUsage,
			Message: "no cargo arguments given; run with e.g. 'build --release' (see --help)",
		}
	}

	cliTargets, err := parseTargets(RootCmd.Target)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg, err := manifest.Load(RootCmd.ManifestPath)
	if err != nil {
		return &ExitError{Code: ExitConfig, Message: err.Error()}
	}

	ndkPath, ok := ndk.NewLocator().Locate()
	if !ok {
		slog.Error("could not find any NDK")
		slog.Error("set ANDROID_NDK_HOME to your NDK installation's root directory, or install the NDK using Android Studio")
		return &ExitError{Code: ExitNoNDK}
	}
	slog.Info("using NDK", "path", ndkPath)

	targets, platform := build.Resolve(cliTargets, RootCmd.Platform, cfg)
	release := slices.Contains(RootCmd.CargoArgs, "--release")

	if RootCmd.Output != "" {
		if err := os.MkdirAll(RootCmd.Output, paths.DefaultDirMode); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	slog.Info("resolved build",
		"platform", platform,
		"targets", targetNames(targets),
		"release", release,
	)

	err = build.Run(ctx, build.Options{
		Root:     filepath.Dir(RootCmd.ManifestPath),
		NDK:      ndkPath,
		Targets:  targets,
		Platform: platform,
		Args:     RootCmd.CargoArgs,
	}, cargo.Build)

	var targetErr *build.TargetError
	if errors.As(err, &targetErr) {
		return &ExitError{Code: targetErr.Code, Message: targetErr.Error()}
	}
	if err != nil {
		return err
	}

	if RootCmd.Output == "" {
		return nil
	}

	return build.Collect(build.CollectOptions{
		Targets:   targets,
		TargetDir: cfg.TargetDir,
		Release:   release,
		Dest:      RootCmd.Output,
		NDK:       ndkPath,
	}, cargo.Strip)
}

// Parses the --target flag values into ABIs.
func parseTargets(names []string) ([]target.ABI, error) {
	parsed := make([]target.ABI, 0, len(names))
	for _, name := range names {
		abi, err := target.Parse(name)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, abi)
	}
	return parsed, nil
}

// Formats a target list for logging.
func targetNames(targets []target.ABI) string {
	names := make([]string, 0, len(targets))
	for _, abi := range targets {
		names = append(names, abi.String())
	}
	return strings.Join(names, ", ")
}
