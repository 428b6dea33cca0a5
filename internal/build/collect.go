package build

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crosshq/ndkbuild/internal/paths"
	"github.com/crosshq/ndkbuild/internal/target"
)

// File extension of Android shared libraries. Artifacts are ELF .so files
// regardless of the host OS.
const libSuffix = ".so"

// Decides how a collection step reacts to an error.
//
// The copy and strip steps are structurally similar but carry different
// contracts: a failed copy loses an artifact the user asked for, while a
// failed strip just delivers it unstripped. Keeping the decision as an
// explicit value keeps it visible and testable.
type policy int

const (
	fatalOnError policy = iota // Abort collection on error.
	bestEffort                 // Log the error at debug level and continue.
)

// Applies the policy to a step's error.
func (p policy) handle(desc string, err error) error {
	if err == nil {
		return nil
	}
	if p == bestEffort {
		slog.Debug("ignoring failure", "step", desc, "error", err)
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrCollect, desc, err)
}

// Controls an artifact collection pass.
type CollectOptions struct {
	Targets   []target.ABI // Targets whose outputs to collect.
	TargetDir string       // Build tool's artifact output root.
	Release   bool         // Whether to collect release or debug artifacts.
	Dest      string       // Destination root for the jniLibs-style tree.
	NDK       string       // NDK root, passed to the strip collaborator.
}

// Strips one copied artifact in place. Matches the signature of
// cargo.Strip; tests substitute a fake.
type StripFunc func(ndkRoot string, abi target.ABI, file string) error

// Copies built shared libraries into a per-ABI output tree.
//
// For each target, the destination subdirectory <dest>/<abi>/ is created
// even when no artifacts match, then every .so under the target's
// release/debug output directory is copied in and stripped. Copy failures
// abort the pass; strip failures are tolerated. A later file with the same
// name silently overwrites an earlier copy.
func Collect(opts CollectOptions, strip StripFunc) error {
	slog.Info("copying libraries", "dest", opts.Dest)

	for _, abi := range opts.Targets {
		if err := collectTarget(opts, abi, strip); err != nil {
			return err
		}
	}
	return nil
}

// Collects the artifacts of a single target.
func collectTarget(opts CollectOptions, abi target.ABI, strip StripFunc) error {
	destDir := filepath.Join(opts.Dest, abi.String())
	if err := os.MkdirAll(destDir, paths.DefaultDirMode); err != nil {
		return fatalOnError.handle("create "+destDir, err)
	}

	srcDir := filepath.Join(opts.TargetDir, abi.Triple(), profile(opts.Release))
	slog.Debug("scanning artifacts", "dir", srcDir)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fatalOnError.handle("read "+srcDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != libSuffix {
			continue
		}

		src := filepath.Join(srcDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		slog.Info(fmt.Sprintf("%s -> %s", src, dest))

		if err := fatalOnError.handle("copy "+src, copyFile(src, dest)); err != nil {
			return err
		}

		_ = bestEffort.handle("strip "+dest, strip(opts.NDK, abi, dest))
	}

	return nil
}

// Returns the per-profile output subdirectory name.
func profile(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}

// Copies a regular file, replacing any existing destination.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
