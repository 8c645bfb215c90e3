package pstate

import (
	"errors"
	"testing"
)

func TestDivisorRatio(t *testing.T) {
	expected := []float64{1, 1.5, 2, 3, 4, 6, 8, 12, 16}

	for code, want := range expected {
		ratio, err := DivisorRatio(uint32(code))
		if err != nil {
			t.Errorf("DivisorRatio(%d) returned error: %v", code, err)
			continue
		}
		if ratio != want {
			t.Errorf("DivisorRatio(%d) = %g, want %g", code, ratio, want)
		}
	}
}

func TestDivisorRatioUnsupported(t *testing.T) {
	for code := uint32(9); code <= 15; code++ {
		_, err := DivisorRatio(code)
		if err == nil {
			t.Errorf("DivisorRatio(%d) should fail for reserved code", code)
			continue
		}
		var divErr *UnsupportedDivisorError
		if !errors.As(err, &divErr) {
			t.Errorf("DivisorRatio(%d) error type = %T, want *UnsupportedDivisorError", code, err)
		} else if divErr.Code != code {
			t.Errorf("UnsupportedDivisorError.Code = %d, want %d", divErr.Code, code)
		}
	}
}

func TestFidDidTableConsistency(t *testing.T) {
	// Every tabulated pair must decode back to its target multiplier.
	for _, e := range fidDidTable {
		ratio, err := DivisorRatio(e.did)
		if err != nil {
			t.Fatalf("table entry for %g uses reserved DID %d", e.multiplier, e.did)
		}
		got := float64(e.fid+16) / ratio
		if got != e.multiplier {
			t.Errorf("table entry (fid=%d, did=%d) decodes to %g, want %g", e.fid, e.did, got, e.multiplier)
		}
	}
}

func TestFidDidForMultiplier(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		fid        uint32
		did        uint32
	}{
		{"tabulated 18", 18, 11, 1},
		{"tabulated 16", 16, 0, 0},
		{"tabulated 4", 4, 0, 4},
		{"high range 19", 19, 3, 0},
		{"high range 25", 25, 9, 0},
		{"fallback 10.5", 10.5, 16, 3}, // round(31.5)-16
		{"fallback 6.5", 6.5, 4, 3},    // round(19.5)-16
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fid, did, err := fidDidForMultiplier(tt.multiplier)
			if err != nil {
				t.Fatalf("fidDidForMultiplier(%g) failed: %v", tt.multiplier, err)
			}
			if fid != tt.fid || did != tt.did {
				t.Errorf("fidDidForMultiplier(%g) = (%d, %d), want (%d, %d)",
					tt.multiplier, fid, did, tt.fid, tt.did)
			}
		})
	}
}

func TestFidDidForMultiplierFidLimit(t *testing.T) {
	// 47 is the last multiplier whose FID fits the 5-bit field.
	fid, did, err := fidDidForMultiplier(47)
	if err != nil {
		t.Fatalf("fidDidForMultiplier(47) failed: %v", err)
	}
	if fid != 31 || did != 0 {
		t.Errorf("fidDidForMultiplier(47) = (%d, %d), want (31, 0)", fid, did)
	}

	for _, m := range []float64{48, 47.6, 100} {
		_, _, err := fidDidForMultiplier(m)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("fidDidForMultiplier(%g) error = %v, want RangeError", m, err)
			continue
		}
		if rangeErr.Field != "multiplierOrDivider" {
			t.Errorf("RangeError.Field = %q, want %q", rangeErr.Field, "multiplierOrDivider")
		}
	}
}
