package version

import (
	"strings"
	"testing"
)

func TestResolveExplicitValues(t *testing.T) {
	// ldflags-stamped values must pass through untouched.
	info := Resolve("v1.2.0", "abcdef1234567890", "2025-06-01T00:00:00Z")

	if info.Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", info.Version)
	}
	if info.Commit != "abcdef1234567890" {
		t.Errorf("Commit = %q, want full revision", info.Commit)
	}
	if info.BuiltAt != "2025-06-01T00:00:00Z" {
		t.Errorf("BuiltAt = %q, want stamped time", info.BuiltAt)
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	// Without ldflags the version still resolves to something
	// printable (module version or "dev", depending on the build).
	info := Resolve("", "", "")
	if info.Version == "" {
		t.Error("Resolve should never leave Version empty")
	}
}

func TestInfoShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "commit truncated to seven",
			info: Info{Version: "v1.2.0", Commit: "abcdef1234567890"},
			want: "v1.2.0-abcdef1",
		},
		{
			name: "short commit kept",
			info: Info{Version: "v1.2.0", Commit: "abc"},
			want: "v1.2.0-abc",
		},
		{
			name: "no commit",
			info: Info{Version: "dev"},
			want: "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfoDetailed(t *testing.T) {
	result := Info{Version: "v1.2.0", Commit: "abcdef1234567890", BuiltAt: "2025-06-01T00:00:00Z"}.Detailed()

	if !strings.Contains(result, "FusionTweaker") {
		t.Error("Detailed() should contain the tool name")
	}
	if !strings.Contains(result, "Version:    v1.2.0") {
		t.Error("Detailed() should contain the version")
	}
	if !strings.Contains(result, "Commit:     abcdef1234567890") {
		t.Error("Detailed() should contain the commit")
	}
	if !strings.Contains(result, "Go version:") {
		t.Error("Detailed() should contain the Go version")
	}
	if !strings.Contains(result, "OS/Arch:") {
		t.Error("Detailed() should contain OS/Arch")
	}

	fallback := Info{Version: "dev"}.Detailed()
	if !strings.Contains(fallback, "Commit:     unknown") {
		t.Error("Detailed() should print unknown for a missing commit")
	}
	if !strings.Contains(fallback, "Built:      unknown") {
		t.Error("Detailed() should print unknown for a missing build time")
	}
}
