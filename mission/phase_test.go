package mission

import "testing"

func TestFormatTimer(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"Negative clamps to zero", -5, "0s"},
		{"Zero", 0, "0s"},
		{"Fraction rounds up", 0.4, "1s"},
		{"Under a minute", 45, "45s"},
		{"Rounds into a minute", 59.2, "1:00"},
		{"Exactly a minute", 60, "1:00"},
		{"Minutes and seconds", 90, "1:30"},
		{"Pads seconds", 125, "2:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimer(tt.seconds); got != tt.want {
				t.Errorf("FormatTimer(%v) = %q, expected %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestCollapseHUDDisplay(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		total     float64
		want      string
	}{
		{"Negative shows zero", -5, 10, "ESCAPE: 0s"},
		{"Grace past total clamps to total", 15, 10, "ESCAPE: 10s"},
		{"Normal countdown", 45, 90, "ESCAPE: 45s"},
		{"Full countdown", 90, 90, "ESCAPE: 1:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseHUDDisplay(tt.remaining, tt.total); got != tt.want {
				t.Errorf("CollapseHUDDisplay(%v, %v) = %q, expected %q",
					tt.remaining, tt.total, got, tt.want)
			}
		})
	}
}

func TestPhaseStrings(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseEscapeStart, "escape_start"},
		{PhaseEscapeTunnel, "escape_tunnel"},
		{PhaseSurfaceRun, "surface_run"},
		{PhaseHoldout, "holdout"},
		{PhaseHiveCollapse, "hive_collapse"},
		{PhaseVictory, "victory"},
		{PhaseEpilogue, "epilogue"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, expected %q", tt.phase, got, tt.want)
		}
	}
}
