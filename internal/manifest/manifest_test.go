package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/crosshq/ndkbuild/internal/target"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadFullMetadata(t *testing.T) {
	t.Setenv("CARGO_TARGET_DIR", "")
	path := writeManifest(t, `
[package]
name = "mylib"

[package.metadata.ndk]
targets = ["arm64-v8a", "armeabi-v7a"]
platform = 26
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "mylib" {
		t.Errorf("Name = %q, want mylib", cfg.Name)
	}
	if cfg.Platform != 26 {
		t.Errorf("Platform = %d, want 26", cfg.Platform)
	}
	want := []target.ABI{target.Arm64V8a, target.ArmeabiV7a}
	assertTargets(t, cfg.Targets, want)
	if cfg.TargetDir != filepath.Join(filepath.Dir(path), "target") {
		t.Errorf("TargetDir = %q, want <root>/target", cfg.TargetDir)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "mylib"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Platform != DefaultPlatform {
		t.Errorf("Platform = %d, want %d", cfg.Platform, DefaultPlatform)
	}
	assertTargets(t, cfg.Targets, target.All())
}

func TestLoadDuplicateTargetsDeduplicated(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "mylib"

[package.metadata.ndk]
targets = ["x86", "arm64-v8a", "x86"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTargets(t, cfg.Targets, []target.ABI{target.X86, target.Arm64V8a})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "malformed toml",
			contents: "[package\nname =",
		},
		{
			name: "unknown target",
			contents: `
[package]
name = "mylib"

[package.metadata.ndk]
targets = ["mips"]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.contents)
			_, err := Load(path)
			if !errors.Is(err, ErrManifest) {
				t.Fatalf("err = %v, want ErrManifest", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Cargo.toml"))
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("err = %v, want ErrManifest", err)
	}
}

func TestTargetDirOverride(t *testing.T) {
	root := t.TempDir()

	t.Run("default", func(t *testing.T) {
		t.Setenv("CARGO_TARGET_DIR", "")
		if got := targetDir(root); got != filepath.Join(root, "target") {
			t.Fatalf("targetDir = %q, want <root>/target", got)
		}
	})

	t.Run("absolute override", func(t *testing.T) {
		t.Setenv("CARGO_TARGET_DIR", "/build/out")
		if got := targetDir(root); got != "/build/out" {
			t.Fatalf("targetDir = %q, want /build/out", got)
		}
	})

	t.Run("relative override resolved against root", func(t *testing.T) {
		t.Setenv("CARGO_TARGET_DIR", "out")
		if got := targetDir(root); got != filepath.Join(root, "out") {
			t.Fatalf("targetDir = %q, want <root>/out", got)
		}
	})
}

func assertTargets(t *testing.T, got, want []target.ABI) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("targets[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
