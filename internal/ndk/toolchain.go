package ndk

import (
	"fmt"
	"path/filepath"
	goruntime "runtime"

	"github.com/crosshq/ndkbuild/internal/target"
)

// Resolves paths to binaries inside an NDK installation.
//
// The NDK ships prebuilt LLVM toolchains under a host-specific directory;
// only x86_64 hosts are supported by the NDK itself.
type Toolchain struct {
	Root   string // NDK installation root.
	HostOS string // Host GOOS, overridable for tests.
}

// Creates a toolchain for the NDK rooted at the given path.
func NewToolchain(root string) *Toolchain {
	return &Toolchain{Root: root, HostOS: goruntime.GOOS}
}

// Returns the directory holding the prebuilt toolchain binaries.
func (t *Toolchain) BinDir() string {
	host := t.HostOS + "-x86_64"
	return filepath.Join(t.Root, "toolchains", "llvm", "prebuilt", host, "bin")
}

// Returns the path to the clang wrapper for an ABI at an API level.
//
// Wrappers are named "<clang-triple><level>-clang" (e.g.,
// "aarch64-linux-android21-clang"). On Windows they are batch files.
func (t *Toolchain) Clang(abi target.ABI, platform int) string {
	name := fmt.Sprintf("%s%d-clang", abi.ClangTriple(), platform)
	if t.HostOS == "windows" {
		name += ".cmd"
	}
	return filepath.Join(t.BinDir(), name)
}

// Returns the path to the clang++ wrapper for an ABI at an API level.
func (t *Toolchain) ClangXX(abi target.ABI, platform int) string {
	name := fmt.Sprintf("%s%d-clang++", abi.ClangTriple(), platform)
	if t.HostOS == "windows" {
		name += ".cmd"
	}
	return filepath.Join(t.BinDir(), name)
}

// Returns the path to llvm-ar.
func (t *Toolchain) Ar() string {
	return filepath.Join(t.BinDir(), t.exe("llvm-ar"))
}

// Returns the path to llvm-strip.
func (t *Toolchain) Strip() string {
	return filepath.Join(t.BinDir(), t.exe("llvm-strip"))
}

// Appends the Windows executable suffix when needed.
func (t *Toolchain) exe(name string) string {
	if t.HostOS == "windows" {
		return name + ".exe"
	}
	return name
}
