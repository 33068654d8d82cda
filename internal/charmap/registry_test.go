package charmap

import (
	"errors"
	"testing"
)

func TestGet_AllPresets(t *testing.T) {
	for _, name := range Names() {
		cm, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if got := Name(cm); got != name {
			t.Errorf("Name(Get(%q)) = %q", name, got)
		}
		s := cm.Subpixels()
		if s.W < 1 || s.H < 1 || s.W > 4 || s.H > 4 {
			t.Errorf("%s: block size %v out of range", name, s)
		}
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	cm, err := Get("  Braille ")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cm.(Braille); !ok {
		t.Errorf("got %T, want Braille", cm)
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("sixel")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("got %v, want ErrUnknown", err)
	}
}

func TestCustom(t *testing.T) {
	if _, err := Custom(""); err == nil {
		t.Error("empty ramp accepted")
	}
	cm, err := Custom("xyz")
	if err != nil {
		t.Fatal(err)
	}
	if got := Name(cm); got != CustomName {
		t.Errorf("Name: got %q, want %q", got, CustomName)
	}
	// A custom ramp equal to a preset reports the preset.
	cm, _ = Custom(Gradient)
	if got := Name(cm); got != "gradient" {
		t.Errorf("Name: got %q, want gradient", got)
	}
}
