package max31855

// decodeFrame unpacks one 32-bit data frame into the signed 14-bit
// thermocouple code and signed 12-bit internal temperature code.
//
// The frame is two big-endian 16-bit words: bits 31:18 carry the
// thermocouple code, bits 15:4 the internal code, and the low nibble of
// byte 3 plus bit 0 of byte 1 carry fault flags. Fault checks come
// first, most specific fault wins, and a faulted frame yields no codes.
func decodeFrame(frame [4]byte) (probe, reference int16, err error) {
	switch {
	case frame[3]&faultOpenCircuit != 0:
		return 0, 0, ErrOpenCircuit
	case frame[3]&faultShortGround != 0:
		return 0, 0, ErrShortToGround
	case frame[3]&faultShortPower != 0:
		return 0, 0, ErrShortToPower
	case frame[1]&faultGenericFault != 0:
		return 0, 0, ErrFaultyReading
	}

	// Arithmetic shifts drop the flag bits and sign-extend the codes.
	probe = int16(uint16(frame[0])<<8|uint16(frame[1])) >> 2
	reference = int16(uint16(frame[2])<<8|uint16(frame[3])) >> 4
	return probe, reference, nil
}
