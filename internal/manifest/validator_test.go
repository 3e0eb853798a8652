package manifest

import (
	"strings"
	"testing"
)

func TestValidateAcceptsFullManifest(t *testing.T) {
	result, err := Validate([]byte(`assets:
  - assets/Brand.ttf
dependencies:
  native-maps:
    assets: [fonts]
    platforms: [android, ios]
    pod_name: NativeMaps
    commands:
      prelink: echo pre
      postunlink: ./cleanup.sh
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected manifest to be valid, got issues %v", result.Issues)
	}
}

func TestValidateAcceptsEmptyManifest(t *testing.T) {
	result, err := Validate([]byte("{}\n"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected empty manifest to be valid, got issues %v", result.Issues)
	}
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	result, err := Validate([]byte(`assets: []
automatic: true
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected unknown top-level key to be rejected")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateRejectsBadPlatform(t *testing.T) {
	result, err := Validate([]byte(`dependencies:
  native-maps:
    platforms: [windows]
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected unknown platform to be rejected")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "/dependencies/native-maps/platforms/0") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected issue path pointing at the platform entry, got %v", result.Issues)
	}
}

func TestValidateRejectsNonStringAsset(t *testing.T) {
	result, err := Validate([]byte(`assets:
  - 42
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected non-string asset to be rejected")
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	_, err := Validate([]byte("assets: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
