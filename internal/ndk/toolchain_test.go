package ndk

import (
	"path/filepath"
	"testing"

	"github.com/crosshq/ndkbuild/internal/target"
)

func TestToolchainBinDir(t *testing.T) {
	tc := &Toolchain{Root: "/ndk", HostOS: "linux"}

	want := filepath.Join("/ndk", "toolchains", "llvm", "prebuilt", "linux-x86_64", "bin")
	if got := tc.BinDir(); got != want {
		t.Fatalf("BinDir = %q, want %q", got, want)
	}
}

func TestToolchainClang(t *testing.T) {
	tests := []struct {
		name     string
		hostOS   string
		abi      target.ABI
		platform int
		want     string
	}{
		{
			name:     "arm64 on linux",
			hostOS:   "linux",
			abi:      target.Arm64V8a,
			platform: 21,
			want:     "aarch64-linux-android21-clang",
		},
		{
			name:     "armv7 uses the armv7a clang prefix",
			hostOS:   "linux",
			abi:      target.ArmeabiV7a,
			platform: 24,
			want:     "armv7a-linux-androideabi24-clang",
		},
		{
			name:     "windows wrapper is a batch file",
			hostOS:   "windows",
			abi:      target.X86_64,
			platform: 21,
			want:     "x86_64-linux-android21-clang.cmd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &Toolchain{Root: "/ndk", HostOS: tt.hostOS}
			got := tc.Clang(tt.abi, tt.platform)
			if filepath.Base(got) != tt.want {
				t.Fatalf("Clang = %q, want base %q", got, tt.want)
			}
			if filepath.Dir(got) != tc.BinDir() {
				t.Fatalf("Clang dir = %q, want %q", filepath.Dir(got), tc.BinDir())
			}
		})
	}
}

func TestToolchainUtilities(t *testing.T) {
	tc := &Toolchain{Root: "/ndk", HostOS: "linux"}
	if got := filepath.Base(tc.Strip()); got != "llvm-strip" {
		t.Errorf("Strip = %q, want llvm-strip", got)
	}
	if got := filepath.Base(tc.Ar()); got != "llvm-ar" {
		t.Errorf("Ar = %q, want llvm-ar", got)
	}

	tc.HostOS = "windows"
	if got := filepath.Base(tc.Strip()); got != "llvm-strip.exe" {
		t.Errorf("Strip = %q, want llvm-strip.exe", got)
	}
}
