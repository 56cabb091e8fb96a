package wave

import "testing"

func TestIntegrityCapSchedule(t *testing.T) {
	want := []float64{100, 100, 80, 65, 50, 35, 20}
	for i, expected := range want {
		if got := IntegrityCap(i + 1); got != expected {
			t.Errorf("wave %d: expected cap %v, got %v", i+1, expected, got)
		}
	}

	// Schedule must be monotonic non-increasing
	for i := 1; i < len(want); i++ {
		if IntegrityCap(i+1) > IntegrityCap(i) {
			t.Errorf("cap increased from wave %d to %d", i, i+1)
		}
	}
}

func TestIntegrityCapOutsideSchedule(t *testing.T) {
	tests := []struct {
		name string
		wave int
	}{
		{"Zero", 0},
		{"Negative", -1},
		{"Past schedule", 8},
		{"Far past", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntegrityCap(tt.wave); got != 100 {
				t.Errorf("expected 100 for wave %d, got %v", tt.wave, got)
			}
		})
	}
}

func TestApplyWaveCapOnlyPullsDown(t *testing.T) {
	m := Mech{Integrity: 90}

	m = m.ApplyWaveCap(3) // cap 80
	if m.Integrity != 80 {
		t.Errorf("expected clamp to 80, got %v", m.Integrity)
	}

	// Already below a later cap: no restoration
	m.Integrity = 30
	m = m.ApplyWaveCap(5) // cap 50
	if m.Integrity != 30 {
		t.Errorf("cap restored integrity: %v", m.Integrity)
	}
}

func TestMechDecayAndDamage(t *testing.T) {
	m := NewMech()

	if got := m.Damage(18); got != 18 {
		t.Errorf("full integrity should deal base damage, got %v", got)
	}

	m.Integrity = 50
	if got := m.Damage(18); got != 9 {
		t.Errorf("expected half damage at 50%% integrity, got %v", got)
	}

	m.Integrity = 0.1
	m = m.Decay(10)
	if m.Integrity != 0 {
		t.Errorf("decay should floor at zero, got %v", m.Integrity)
	}
}
