package cargo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/crosshq/ndkbuild/internal/ndk"
	"github.com/crosshq/ndkbuild/internal/target"
)

var ErrCargo = errors.New("cargo invocation failed")

// Runs cargo for one cross-compilation target and returns its exit code.
//
// The command is "cargo <args...> --target <triple>", run from the project
// root with stdio inherited, so cargo's own progress output reaches the
// terminal directly. The environment points cargo's C toolchain and linker
// at the NDK's clang wrappers for the requested API level.
//
// A non-zero exit code is not an error; the caller decides how to handle
// it. The error return covers failures to run cargo at all (not installed,
// not executable).
func Build(ctx context.Context, root, ndkRoot string, abi target.ABI, platform int, args []string) (int, error) {
	cmdArgs := append(append([]string{}, args...), "--target", abi.Triple())

	cmd := exec.CommandContext(ctx, "cargo", cmdArgs...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), buildEnv(ndkRoot, abi, platform)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slog.Debug("invoking cargo", "args", cmdArgs, "target", abi.Triple())

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCargo, err)
	}
	return 0, nil
}

// Returns the environment overrides wiring cargo to the NDK toolchain.
//
// Cargo and the cc crate read per-target variables keyed by the triple with
// dashes replaced by underscores: CC_<triple>, CXX_<triple>, AR_<triple>,
// and CARGO_TARGET_<TRIPLE>_LINKER.
func buildEnv(ndkRoot string, abi target.ABI, platform int) []string {
	tc := ndk.NewToolchain(ndkRoot)

	suffix := strings.ReplaceAll(abi.Triple(), "-", "_")
	clang := tc.Clang(abi, platform)

	return []string{
		"CC_" + suffix + "=" + clang,
		"CXX_" + suffix + "=" + tc.ClangXX(abi, platform),
		"AR_" + suffix + "=" + tc.Ar(),
		"CARGO_TARGET_" + strings.ToUpper(suffix) + "_LINKER=" + clang,
	}
}

// Strips a built library in place using the NDK's llvm-strip.
//
// Callers treat stripping as best-effort post-processing; the returned
// error exists so they can log it, not so they can fail on it.
func Strip(ndkRoot string, abi target.ABI, file string) error {
	tc := ndk.NewToolchain(ndkRoot)

	out, err := exec.Command(tc.Strip(), file).CombinedOutput()
	if err != nil {
		return fmt.Errorf("strip %s: %v: %s", file, err, strings.TrimSpace(string(out)))
	}
	return nil
}
