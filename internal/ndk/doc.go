// Package ndk discovers Android NDK installations and resolves paths to
// their toolchain binaries.
//
// Discovery runs a fixed list of strategies in priority order: the
// ANDROID_NDK_HOME and NDK_HOME variables are trusted verbatim, the
// ANDROID_SDK_HOME/ndk-bundle directory is used only if it exists, and
// finally the default Android Studio install directory is scanned for the
// newest side-by-side version. The first strategy to produce a path wins
// and the result is treated as authoritative for the rest of the run.
//
// Example usage:
//
//	path, ok := ndk.NewLocator().Locate()
//	if !ok {
//	    return errors.New("no NDK found")
//	}
//
//	tc := ndk.NewToolchain(path)
//	cc := tc.Clang(target.Arm64V8a, 21)
package ndk
