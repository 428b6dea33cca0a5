// Package build orchestrates per-target cargo invocations and collects
// the resulting shared libraries.
//
// A run resolves the target set and API level (explicit selection beats
// manifest defaults), then builds each target in sequence. The first
// non-zero exit code aborts the whole run; only when every target succeeds
// does artifact collection copy the built .so files into a per-ABI output
// tree and strip them best-effort.
//
// Example usage:
//
//	targets, platform := build.Resolve(cliTargets, cliPlatform, cfg)
//
//	err := build.Run(ctx, build.Options{
//	    Root:     ".",
//	    NDK:      ndkPath,
//	    Targets:  targets,
//	    Platform: platform,
//	    Args:     []string{"build", "--release"},
//	}, cargo.Build)
//	if err != nil {
//	    return err
//	}
//
//	err = build.Collect(build.CollectOptions{
//	    Targets:   targets,
//	    TargetDir: cfg.TargetDir,
//	    Release:   true,
//	    Dest:      "app/src/main/jniLibs",
//	    NDK:       ndkPath,
//	}, cargo.Strip)
package build
