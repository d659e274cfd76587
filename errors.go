package max31855

import "errors"

// Fault conditions reported by the chip in the status bits of the data
// frame. Each read reports at most one of these; transport-level errors
// are wrapped separately and match none of them.
var (
	// ErrOpenCircuit means the thermocouple is not connected.
	ErrOpenCircuit = errors.New("thermocouple open circuit")
	// ErrShortToGround means the thermocouple is shorted to GND.
	ErrShortToGround = errors.New("thermocouple short to ground")
	// ErrShortToPower means the thermocouple is shorted to VCC.
	ErrShortToPower = errors.New("thermocouple short to power")
	// ErrFaultyReading means the generic fault flag is set without any
	// of the three specific fault bits.
	ErrFaultyReading = errors.New("faulty reading")
)

// ErrOutOfRange is returned by LinearizedTemperature when the summed
// thermocouple voltage exceeds the calibrated Type-K curve segments.
var ErrOutOfRange = errors.New("temperature out of linearized range")
