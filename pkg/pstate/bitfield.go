package pstate

// extract returns the width-bit field of value starting at offset.
func extract(value uint32, offset, width uint) uint32 {
	return (value >> offset) & (1<<width - 1)
}

// pack places the width-bit field at offset, masking excess bits.
func pack(field uint32, offset, width uint) uint32 {
	return (field & (1<<width - 1)) << offset
}
