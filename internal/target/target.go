package target

import (
	"fmt"
	"strings"
)

// An Android device architecture the tool can build for.
//
// The set of variants is fixed: Android defines exactly these four ABIs for
// NDK r19+ toolchains. The zero value is ArmeabiV7a.
type ABI int

const (
	ArmeabiV7a ABI = iota // 32-bit ARM
	Arm64V8a              // 64-bit ARM
	X86                   // 32-bit Intel
	X86_64                // 64-bit Intel
)

// Per-ABI naming table.
//
// name is the ABI's display form, used for jniLibs subdirectories. triple is
// the rustc target triple. clangTriple prefixes the NDK's clang wrapper
// binaries; it differs from the rustc triple only for 32-bit ARM.
var abis = [...]struct {
	name        string
	triple      string
	clangTriple string
}{
	ArmeabiV7a: {"armeabi-v7a", "armv7-linux-androideabi", "armv7a-linux-androideabi"},
	Arm64V8a:   {"arm64-v8a", "aarch64-linux-android", "aarch64-linux-android"},
	X86:        {"x86", "i686-linux-android", "i686-linux-android"},
	X86_64:     {"x86_64", "x86_64-linux-android", "x86_64-linux-android"},
}

// Returns every supported ABI in canonical order.
func All() []ABI {
	return []ABI{ArmeabiV7a, Arm64V8a, X86, X86_64}
}

// Returns the ABI's display name (e.g., "arm64-v8a").
//
// This is the subdirectory name Android expects under jniLibs.
func (a ABI) String() string {
	return abis[a].name
}

// Returns the compiler triple for the ABI (e.g., "aarch64-linux-android").
func (a ABI) Triple() string {
	return abis[a].triple
}

// Returns the triple prefixing the NDK's clang wrappers for this ABI.
func (a ABI) ClangTriple() string {
	return abis[a].clangTriple
}

// Parses an ABI from its display name or compiler triple.
func Parse(s string) (ABI, error) {
	s = strings.TrimSpace(s)
	for _, a := range All() {
		if s == a.String() || s == a.Triple() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unsupported target %q", s)
}

// Returns the ABIs with duplicates removed, preserving first-seen order.
func Dedup(in []ABI) []ABI {
	seen := make(map[ABI]bool, len(in))
	out := make([]ABI, 0, len(in))
	for _, a := range in {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
