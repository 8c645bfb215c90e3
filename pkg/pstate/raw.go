package pstate

// DivisorRatioFromRaw returns the divisor ratio encoded in a CPU
// P-state register. Used by reference discovery, which needs the
// currently active maximum divisor rather than the full settings.
func DivisorRatioFromRaw(raw uint32) (float64, error) {
	return DivisorRatio(extract(raw, cpuDidOffset, cpuDidWidth))
}

// MultiplierFromRaw returns the core clock multiplier encoded in a
// CPU P-state register.
func MultiplierFromRaw(raw uint32) (float64, error) {
	ratio, err := DivisorRatioFromRaw(raw)
	if err != nil {
		return 0, err
	}
	fid := extract(raw, cpuFidOffset, cpuFidWidth)
	return float64(fid+16) / ratio, nil
}
