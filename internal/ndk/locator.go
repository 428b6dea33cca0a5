package ndk

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/crosshq/ndkbuild/internal/paths"
)

// Environment variables consulted during discovery.
const (

	// Primary variable naming the NDK root directly.
	EnvNDKHome = "ANDROID_NDK_HOME"

	// Legacy alias for [EnvNDKHome], kept for compatibility with older
	// setups that only export NDK_HOME.
	EnvNDKHomeLegacy = "NDK_HOME"

	// SDK root; used as a base for the conventional ndk-bundle directory.
	EnvSDKHome = "ANDROID_SDK_HOME"
)

// Locates an NDK installation on the host.
//
// The zero value is not usable; construct with [NewLocator]. All probes go
// through the injected functions, so discovery can be tested against a fake
// environment and filesystem without touching process state.
type Locator struct {
	Getenv     func(string) string                 // Environment snapshot.
	Stat       func(string) (os.FileInfo, error)   // Filesystem existence probe.
	ReadDir    func(string) ([]os.DirEntry, error) // Directory listing probe.
	InstallDir string                              // Default NDK install directory to scan.
}

// Creates a locator wired to the real environment and filesystem.
func NewLocator() *Locator {
	return &Locator{
		Getenv:     os.Getenv,
		Stat:       os.Stat,
		ReadDir:    os.ReadDir,
		InstallDir: paths.NDKInstallDir(),
	}
}

// Discovery strategies in priority order. The first strategy to yield a
// path wins; later strategies are not consulted.
var strategies = []func(*Locator) (string, bool){
	(*Locator).fromEnv,
	(*Locator).fromLegacyEnv,
	(*Locator).fromSDKBundle,
	(*Locator).fromDefaultInstall,
}

// Returns the NDK root path, or false if no strategy produced one.
//
// Discovery is read-only and never fails; an empty result means nothing
// plausible was found. The result is computed once per run and callers
// treat it as authoritative thereafter.
func (l *Locator) Locate() (string, bool) {
	for _, strategy := range strategies {
		if path, ok := strategy(l); ok {
			return path, true
		}
	}
	return "", false
}

// Returns the path named by ANDROID_NDK_HOME.
//
// The value is trusted verbatim, without checking that it exists.
func (l *Locator) fromEnv() (string, bool) {
	if path := l.Getenv(EnvNDKHome); path != "" {
		return path, true
	}
	return "", false
}

// Returns the path named by the legacy NDK_HOME variable, trusted verbatim.
func (l *Locator) fromLegacyEnv() (string, bool) {
	if path := l.Getenv(EnvNDKHomeLegacy); path != "" {
		return path, true
	}
	return "", false
}

// Returns the ndk-bundle directory under ANDROID_SDK_HOME.
//
// Unlike the direct variables, the derived path is only used if it exists.
// This is how Android Studio laid out NDK installs before side-by-side
// versioning.
func (l *Locator) fromSDKBundle() (string, bool) {
	sdk := l.Getenv(EnvSDKHome)
	if sdk == "" {
		return "", false
	}

	path := filepath.Join(sdk, "ndk-bundle")
	if _, err := l.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Scans the default side-by-side install directory and picks the newest
// version.
//
// "Newest" means lexicographically greatest child name. Version strings like
// "23.1.7779620" sort correctly against each other, but a hypothetical
// "9.0.0" would sort above "23.1.7779620". Known limitation, kept until
// product owners decide on real version ordering.
func (l *Locator) fromDefaultInstall() (string, bool) {
	entries, err := l.ReadDir(l.InstallDir)
	if err != nil || len(entries) == 0 {
		return "", false
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	return filepath.Join(l.InstallDir, names[0]), true
}
