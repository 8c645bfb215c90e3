package pstate

import "math"

// CPU divisor codes (DID field). Codes 9-15 are reserved.
var divisorRatios = [9]float64{1, 1.5, 2, 3, 4, 6, 8, 12, 16}

// DivisorRatio maps a 4-bit divisor code to its decimal ratio.
func DivisorRatio(code uint32) (float64, error) {
	if code >= uint32(len(divisorRatios)) {
		return 0, &UnsupportedDivisorError{Code: code}
	}
	return divisorRatios[code], nil
}

// fidDidEntry pins one target multiplier to a hardware-validated
// (FID, DID) pair. The pairs are hand-picked per multiplier, not
// derived from the decode formula; several multipliers have more than
// one valid encoding and these are the ones known to work on silicon.
type fidDidEntry struct {
	multiplier float64
	fid        uint32
	did        uint32
}

var fidDidTable = []fidDidEntry{
	{4, 0, 4},   // 16/4
	{5, 4, 4},   // 20/4
	{6, 2, 3},   // 18/3
	{7, 5, 3},   // 21/3
	{8, 0, 2},   // 16/2
	{9, 2, 2},   // 18/2
	{10, 4, 2},  // 20/2
	{11, 6, 2},  // 22/2
	{12, 2, 1},  // 18/1.5
	{13, 10, 2}, // 26/2
	{14, 5, 1},  // 21/1.5
	{15, 14, 2}, // 30/2
	{16, 0, 0},  // 16/1
	{17, 1, 0},  // 17/1
	{18, 11, 1}, // 27/1.5
}

// Fallback for multipliers below 19 that match no table entry. DID 3
// is lossy for most targets; kept rather than rounding to the nearest
// table entry so the packed value stays predictable.
const fallbackDid = 3

// The FID field is 5 bits wide, so with divisor code 0 the highest
// encodable multiplier is 31+16 = 47.
const maxEncodableMultiplier = 47

// fidDidForMultiplier resolves the (FID, DID) pair that encodes the
// given target multiplier. Multipliers of 19 and above use divisor
// code 0 directly; anything else goes through the table, falling back
// to the DID-3 mapping when the target is not tabulated. A multiplier
// whose FID would not fit the 5-bit field fails with a RangeError
// rather than letting the packed value wrap.
func fidDidForMultiplier(multiplier float64) (fid, did uint32, err error) {
	if multiplier >= 19 {
		f := uint32(math.Round(multiplier)) - 16
		if f > 31 {
			return 0, 0, &RangeError{Field: "multiplierOrDivider", Value: multiplier, Min: MinMultiplier, Max: maxEncodableMultiplier}
		}
		return f, 0, nil
	}
	for _, e := range fidDidTable {
		if multiplier == e.multiplier {
			return e.fid, e.did, nil
		}
	}
	f := int(math.Round(multiplier*3)) - 16
	if f < 0 {
		f = 0
	}
	return uint32(f), fallbackDid, nil
}
