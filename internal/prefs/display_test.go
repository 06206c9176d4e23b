package prefs

import "testing"

func TestDisplayRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if d, err := LoadDisplay(); err != nil || d != nil {
		t.Fatalf("LoadDisplay before save = %v, %v; want nil, nil", d, err)
	}

	if err := SaveDisplay(Display{IntensityColors: false}); err != nil {
		t.Fatalf("SaveDisplay: %v", err)
	}
	d, err := LoadDisplay()
	if err != nil {
		t.Fatalf("LoadDisplay: %v", err)
	}
	if d == nil || d.IntensityColors {
		t.Errorf("display = %+v, want intensity colors off", d)
	}

	if err := SaveDisplay(Display{IntensityColors: true}); err != nil {
		t.Fatalf("SaveDisplay: %v", err)
	}
	d, err = LoadDisplay()
	if err != nil {
		t.Fatalf("LoadDisplay: %v", err)
	}
	if d == nil || !d.IntensityColors {
		t.Errorf("display = %+v, want intensity colors on", d)
	}
}
