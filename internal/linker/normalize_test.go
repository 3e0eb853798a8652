package linker

import "testing"

func TestNormalizePackageName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"my-pkg@1.2.3", "my-pkg"},
		{"my-pkg@latest", "my-pkg"},
		{"my-pkg", "my-pkg"},
		{"@org/pkg@2.0.0", "@org/pkg"},
		{"@org/pkg", "@org/pkg"},
		{"a@b", "a"},
		{"a@b@c", "a"},
		{"@", "@"},
		{"my-pkg@", "my-pkg@"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizePackageName(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizePackageName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestVersionSuffix(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"my-pkg@1.2.3", "1.2.3"},
		{"my-pkg", ""},
		{"@org/pkg@2.0.0", "2.0.0"},
		{"@org/pkg", ""},
		{"my-pkg@", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := VersionSuffix(tt.raw)
			if got != tt.want {
				t.Errorf("VersionSuffix(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
