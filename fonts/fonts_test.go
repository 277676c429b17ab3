package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(16, 10); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Debug, Banner} {
		if !Loaded(name) {
			t.Fatalf("%s not loaded", name)
		}
		if name.Get().Metrics().Height <= 0 {
			t.Fatalf("%s has no line height", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected a parse error")
	}
	if Loaded("broken") {
		t.Fatal("failed font was registered")
	}
}
