package pstate

import (
	"math"
	"testing"
)

func TestVoltageFromVID(t *testing.T) {
	if got := VoltageFromVID(0); got != 1.55 {
		t.Errorf("VoltageFromVID(0) = %g, want 1.55", got)
	}

	// Code 127 decodes below zero; the function does not clamp.
	if got := VoltageFromVID(127); math.Abs(got-(-0.0375)) > 1e-9 {
		t.Errorf("VoltageFromVID(127) = %g, want -0.0375", got)
	}
}

func TestVoltageMonotonicallyDecreasing(t *testing.T) {
	prev := VoltageFromVID(0)
	for vid := uint32(1); vid <= 127; vid++ {
		v := VoltageFromVID(vid)
		if v >= prev {
			t.Fatalf("VoltageFromVID(%d) = %g, not below VoltageFromVID(%d) = %g", vid, v, vid-1, prev)
		}
		prev = v
	}
}

func TestVIDRoundTrip(t *testing.T) {
	for vid := uint32(0); vid <= 127; vid++ {
		got := VIDFromVoltage(VoltageFromVID(vid))
		if got != int(vid) {
			t.Errorf("VIDFromVoltage(VoltageFromVID(%d)) = %d", vid, got)
		}
	}
}

func TestVIDFromVoltageUnclamped(t *testing.T) {
	tests := []struct {
		name  string
		volts float64
		want  int
	}{
		{"above zero code", 2.0, -36},
		{"below code 127", -0.5, 164},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VIDFromVoltage(tt.volts); got != tt.want {
				t.Errorf("VIDFromVoltage(%g) = %d, want %d", tt.volts, got, tt.want)
			}
		})
	}
}
