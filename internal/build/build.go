package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crosshq/ndkbuild/internal/target"
)

// Controls a multi-target build run.
type Options struct {
	Root     string       // Project root, where cargo runs.
	NDK      string       // NDK installation root.
	Targets  []target.ABI // Targets to build, in order. Never empty.
	Platform int          // Android API level to build against.
	Args     []string     // Arguments passed through to the build tool.
}

// Invokes the build tool once for one target and returns its exit code.
//
// Matches the signature of cargo.Build; tests substitute a fake.
type Invoker func(ctx context.Context, root, ndkRoot string, abi target.ABI, platform int, args []string) (int, error)

// Reports a per-target build that exited non-zero.
type TargetError struct {
	Target target.ABI // Target whose build failed.
	Code   int        // Exit code of the failing invocation.
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("build for %s failed with exit code %d", e.Target, e.Code)
}

// Builds every target in sequence, aborting on the first failure.
//
// Targets run strictly one at a time: a failure must abort the remaining
// targets rather than race them, and the underlying tool is heavyweight
// enough that parallelism belongs to it, not to this loop. The first
// non-zero exit code terminates the run as a [TargetError] carrying that
// code; remaining targets are never invoked.
func Run(ctx context.Context, opts Options, invoke Invoker) error {
	if len(opts.Targets) == 0 {
		return ErrNoTargets
	}

	for _, abi := range opts.Targets {
		slog.Info("building target", "target", abi.String(), "triple", abi.Triple())

		code, err := invoke(ctx, opts.Root, opts.NDK, abi, opts.Platform, opts.Args)
		if err != nil {
			return err
		}

		if code != 0 {
			slog.Info("if the build failed due to a missing rust target, install it with:")
			slog.Info(fmt.Sprintf("    rustup target add %s", abi.Triple()))
			return &TargetError{Target: abi, Code: code}
		}
	}

	return nil
}
