package theme

import "testing"

func TestNewPaletteCoversAllTypes(t *testing.T) {
	th, err := Load("mocha")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPalette(th)

	for _, typ := range []string{"first-visit", "follow-up", "procedure", "emergency"} {
		if _, ok := p.CardBg[typ]; !ok {
			t.Errorf("CardBg missing type %q", typ)
		}
		if _, ok := p.CardPastBg[typ]; !ok {
			t.Errorf("CardPastBg missing type %q", typ)
		}
	}
}

func TestNewPaletteNilFallsBack(t *testing.T) {
	p := NewPalette(nil)
	if p.Bg == "" || p.Fg == "" {
		t.Errorf("nil theme palette has empty colors: %+v", p)
	}
}

func TestDarkenColorFloor(t *testing.T) {
	got := darkenColor("#000000")
	if got != "#282828" {
		t.Errorf("darkenColor(#000000) = %q, want #282828", got)
	}
}

func TestBlendColorsEndpoints(t *testing.T) {
	if got := blendColors("#102030", "#ffffff", 0); got != "#102030" {
		t.Errorf("blend ratio 0 = %q", got)
	}
	if got := blendColors("#102030", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("blend ratio 1 = %q", got)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	// On a near-white background the dark text wins.
	got := chooseTextColor("#eeeeee", "#ffffff", "#111111")
	if got != "#111111" {
		t.Errorf("chooseTextColor on light bg = %q, want #111111", got)
	}
}
