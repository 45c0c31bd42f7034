package escfmt

const (
	asciiHighBitsMask uint64 = 0x8080808080808080
	repeatOnes        uint64 = 0x0101010101010101
	controlThreshold  uint64 = 0x2020202020202020
	quoteMask         uint64 = 0x2222222222222222
	apostropheMask    uint64 = 0x2727272727272727
	backslashMask     uint64 = 0x5c5c5c5c5c5c5c5c
	delMask           uint64 = 0x7f7f7f7f7f7f7f7f
)

// chunkEqualMask sets the high bit of every byte lane in chunk equal to the
// lane byte of target. Lanes above a true match may also be flagged, so the
// lowest set lane is the only exact one.
func chunkEqualMask(chunk, target uint64) uint64 {
	x := chunk ^ target
	return (x - repeatOnes) & ^x & asciiHighBitsMask
}

// chunkEscapeMask flags lanes that hold a byte needing escaping: controls,
// DEL, bytes >= 0x80, quote, apostrophe and backslash.
func chunkEscapeMask(chunk uint64) uint64 {
	mask := (chunk - controlThreshold) & ^chunk & asciiHighBitsMask
	mask |= chunk & asciiHighBitsMask
	mask |= chunkEqualMask(chunk, quoteMask)
	mask |= chunkEqualMask(chunk, apostropheMask)
	mask |= chunkEqualMask(chunk, backslashMask)
	mask |= chunkEqualMask(chunk, delMask)
	return mask
}
