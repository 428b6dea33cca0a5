package cli

import (
	"testing"

	"github.com/crosshq/ndkbuild/internal/target"
)

func TestParseTargets(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []target.ABI
		wantErr bool
	}{
		{
			name:  "abi names",
			input: []string{"arm64-v8a", "x86"},
			want:  []target.ABI{target.Arm64V8a, target.X86},
		},
		{
			name:  "triples accepted",
			input: []string{"aarch64-linux-android"},
			want:  []target.ABI{target.Arm64V8a},
		},
		{
			name:  "none",
			input: nil,
			want:  []target.ABI{},
		},
		{
			name:    "unknown target",
			input:   []string{"arm64-v8a", "riscv64"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTargets(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("targets = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("targets[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTargetNames(t *testing.T) {
	got := targetNames([]target.ABI{target.ArmeabiV7a, target.X86_64})
	if got != "armeabi-v7a, x86_64" {
		t.Fatalf("targetNames = %q", got)
	}
}
