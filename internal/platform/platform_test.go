package platform

import (
	"errors"
	"reflect"
	"testing"

	"github.com/natlink-labs/natlink/internal/project"
)

func TestRegistryKeys(t *testing.T) {
	want := []string{KeyAndroid, KeyIOS}
	if got := Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	for _, key := range want {
		p, ok := Get(key)
		if !ok {
			t.Fatalf("Get(%q) not found", key)
		}
		if p.Key() != key {
			t.Errorf("Get(%q).Key() = %q", key, p.Key())
		}
	}

	if _, ok := Get("windows"); ok {
		t.Error("expected unknown key to be absent")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(KeyIOS); got != "iOS" {
		t.Errorf("DisplayName(ios) = %q", got)
	}
	if got := DisplayName("beos"); got != "beos" {
		t.Errorf("unknown keys fall back to the key, got %q", got)
	}
}

func TestProjectDescriptorMismatch(t *testing.T) {
	dep := &project.Dependency{Name: "native-maps"}

	android, _ := Get(KeyAndroid)
	if err := android.Link(&IOSProject{}, dep); !errors.Is(err, ErrProjectMismatch) {
		t.Errorf("expected ErrProjectMismatch from android, got %v", err)
	}

	ios, _ := Get(KeyIOS)
	if err := ios.Link(&AndroidProject{}, dep); !errors.Is(err, ErrProjectMismatch) {
		t.Errorf("expected ErrProjectMismatch from ios, got %v", err)
	}
}

func TestRegisterReplaces(t *testing.T) {
	orig, _ := Get(KeyAndroid)
	defer Register(orig)

	Register(&androidPlatform{})
	if _, ok := Get(KeyAndroid); !ok {
		t.Fatal("registered platform not retrievable")
	}
}
