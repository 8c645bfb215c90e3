package pstate

// CPU P-state register layout (MSRC001_0064+n, lower 32 bits):
//
//	bits [3:0]  CpuDid  core divisor code
//	bits [8:4]  CpuFid  core frequency ID
//	bits [15:9] CpuVid  core voltage ID
const (
	cpuDidOffset = 0
	cpuDidWidth  = 4
	cpuFidOffset = 4
	cpuFidWidth  = 5
	cpuVidOffset = 9
	cpuVidWidth  = 7
)

// Northbridge P-state layouts. NB P-state 0 lives in D18F3xDC, NB
// P-state 1 in D18F6x90; same fields, different offsets.
const (
	nb0NclkOffset = 20
	nb0VidOffset  = 12
	nb1NclkOffset = 0
	nb1VidOffset  = 8
	nbNclkWidth   = 7
	nbVidWidth    = 7
)

// Sentinel returned by Decode for an index outside 0-9. Callers probe
// unsupported indices and rely on getting this fixed record back
// instead of an error; use DecodeStrict to get the error instead.
var sentinelSettings = Settings{
	MultiplierOrDivider: 0,
	Voltage:             1,
	BusSpeedMHz:         100,
	PLLFrequencyMHz:     1600,
}

// Decode converts a raw register value into engineering units. An
// index outside 0-9 yields the fixed sentinel record, not an error;
// an unsupported divisor code fails with UnsupportedDivisorError.
func Decode(raw uint32, index int, refs References) (Settings, error) {
	kind, err := KindForIndex(index)
	if err != nil {
		return sentinelSettings, nil
	}
	return decodeKind(raw, kind, refs)
}

// DecodeStrict is Decode with the sentinel path replaced by an
// IndexError, for callers that want out-of-range indices surfaced.
func DecodeStrict(raw uint32, index int, refs References) (Settings, error) {
	kind, err := KindForIndex(index)
	if err != nil {
		return Settings{}, err
	}
	return decodeKind(raw, kind, refs)
}

func decodeKind(raw uint32, kind Kind, refs References) (Settings, error) {
	if kind == KindCPU {
		return decodeCPU(raw, refs)
	}
	return decodeNorthbridge(raw, kind, refs), nil
}

func decodeCPU(raw uint32, refs References) (Settings, error) {
	did := extract(raw, cpuDidOffset, cpuDidWidth)
	fid := extract(raw, cpuFidOffset, cpuFidWidth)
	vid := extract(raw, cpuVidOffset, cpuVidWidth)

	ratio, err := DivisorRatio(did)
	if err != nil {
		return Settings{}, err
	}

	multiplier := float64(fid+16) / ratio
	return Settings{
		MultiplierOrDivider: multiplier,
		Voltage:             VoltageFromVID(vid),
		BusSpeedMHz:         refs.BusSpeedMHz,
		PLLFrequencyMHz:     multiplier * refs.BusSpeedMHz,
	}, nil
}

func decodeNorthbridge(raw uint32, kind Kind, refs References) Settings {
	var nclk, vid uint32
	if kind == KindNorthbridge0 {
		nclk = extract(raw, nb0NclkOffset, nbNclkWidth)
		vid = extract(raw, nb0VidOffset, nbVidWidth)
	} else {
		nclk = extract(raw, nb1NclkOffset, nbNclkWidth)
		vid = extract(raw, nb1VidOffset, nbVidWidth)
	}

	ratio := NclkRatio(nclk)
	return Settings{
		MultiplierOrDivider: ratio,
		Voltage:             VoltageFromVID(vid),
		BusSpeedMHz:         refs.BusSpeedMHz,
		PLLFrequencyMHz:     (16 + refs.CurrentMaxDivider) / ratio * refs.BusSpeedMHz,
	}
}

// Encode validates a settings record and packs it into a raw register
// value. Indices 0-7 encode a CPU P-state and index 8 Northbridge
// P-state 0; any other index returns 0. Writing NB P-state 1 was never
// supported by the register-write path, so the top-level entry point
// keeps that behaviour; EncodeKind can still pack its layout.
func Encode(s Settings, index int) (uint32, error) {
	switch {
	case index >= 0 && index <= 7:
		return EncodeKind(s, KindCPU)
	case index == 8:
		return EncodeKind(s, KindNorthbridge0)
	}
	return 0, nil
}

// EncodeKind packs a settings record for an explicit register kind.
func EncodeKind(s Settings, kind Kind) (uint32, error) {
	if err := Validate(s, kind); err != nil {
		return 0, err
	}
	vid := uint32(VIDFromVoltage(s.Voltage))

	if kind == KindCPU {
		fid, did, err := fidDidForMultiplier(s.MultiplierOrDivider)
		if err != nil {
			return 0, err
		}
		return pack(vid, cpuVidOffset, cpuVidWidth) |
			pack(fid, cpuFidOffset, cpuFidWidth) |
			pack(did, cpuDidOffset, cpuDidWidth), nil
	}

	nclk := NclkCode(s.MultiplierOrDivider)
	if kind == KindNorthbridge0 {
		return pack(nclk, nb0NclkOffset, nbNclkWidth) |
			pack(vid, nb0VidOffset, nbVidWidth), nil
	}
	return pack(vid, nb1VidOffset, nbVidWidth) |
		pack(nclk, nb1NclkOffset, nbNclkWidth), nil
}
