package bit

// IsSet will check if the bit at the specified index is Set to 1 or not.
func IsSet(index, byte uint8) bool {
	return ((byte >> index) & 1) == 1
}

// Set will return the passed byte with the bit at the specified index Set to 1.
func Set(index, byte uint8) uint8 {
	return byte | (1 << index)
}

// Clear will return the passed byte with the bit at the specified index Set to 0.
func Clear(index, byte uint8) uint8 {
	return byte & ^(1 << index)
}

// Column returns the bit index holding pixel column x (0-7) of a planar row.
// Bit 7 is the leftmost pixel, bit 0 the rightmost.
func Column(x int) uint8 {
	return uint8(7 - x)
}

// PlaneBit reports whether a 2-bit color value contributes a set bit to the
// given plane (0 or 1). Plane 0 carries bit 0 of the value, plane 1 bit 1.
func PlaneBit(value uint8, plane int) bool {
	return IsSet(uint8(plane), value&0x03)
}

// FromPlanes combines the bits of both planes at the given index into a
// 2-bit color value.
func FromPlanes(index, plane0, plane1 uint8) uint8 {
	var value uint8
	if IsSet(index, plane0) {
		value |= 1
	}
	if IsSet(index, plane1) {
		value |= 2
	}
	return value
}
