package max31855

import (
	"errors"
	"testing"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name      string
		frame     [4]byte
		probe     int16
		reference int16
	}{
		{"zero", [4]byte{0x00, 0x00, 0x00, 0x00}, 0, 0},
		{"probe one degree", [4]byte{0x00, 0x10, 0x00, 0x00}, 4, 0},
		{"reference one lsb", [4]byte{0x00, 0x00, 0x00, 0x10}, 0, 1},
		{"both negative one", [4]byte{0xFF, 0xFC, 0xFF, 0xF0}, -1, -1},
		{"probe max", [4]byte{0x7F, 0xFC, 0x00, 0x00}, 8191, 0},
		{"probe min", [4]byte{0x80, 0x00, 0x00, 0x00}, -8192, 0},
		{"reference max", [4]byte{0x00, 0x00, 0x7F, 0xF0}, 0, 2047},
		{"reference min", [4]byte{0x00, 0x00, 0x80, 0x00}, 0, -2048},
		{"100C probe 25C reference", [4]byte{0x06, 0x40, 0x02, 0x80}, 400, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe, reference, err := decodeFrame(tt.frame)
			if err != nil {
				t.Fatalf("decodeFrame(% 02x): %v", tt.frame, err)
			}
			if probe != tt.probe {
				t.Errorf("probe = %d, want %d", probe, tt.probe)
			}
			if reference != tt.reference {
				t.Errorf("reference = %d, want %d", reference, tt.reference)
			}
		})
	}
}

func TestDecodeFrameFaults(t *testing.T) {
	tests := []struct {
		name  string
		frame [4]byte
		want  error
	}{
		{"open circuit", [4]byte{0x00, 0x00, 0x00, 0x01}, ErrOpenCircuit},
		{"short to ground", [4]byte{0x00, 0x00, 0x00, 0x02}, ErrShortToGround},
		{"short to power", [4]byte{0x00, 0x00, 0x00, 0x04}, ErrShortToPower},
		{"generic fault only", [4]byte{0x00, 0x01, 0x00, 0x00}, ErrFaultyReading},
		// Priority: most specific fault wins regardless of other bits.
		{"open beats ground", [4]byte{0x00, 0x00, 0x00, 0x03}, ErrOpenCircuit},
		{"open beats power", [4]byte{0x00, 0x00, 0x00, 0x05}, ErrOpenCircuit},
		{"open beats everything", [4]byte{0xFF, 0xFF, 0xFF, 0xFF}, ErrOpenCircuit},
		{"ground beats power", [4]byte{0x00, 0x00, 0x00, 0x06}, ErrShortToGround},
		{"specific beats generic", [4]byte{0x00, 0x01, 0x00, 0x04}, ErrShortToPower},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeFrame(tt.frame)
			if !errors.Is(err, tt.want) {
				t.Errorf("decodeFrame(% 02x) = %v, want %v", tt.frame, err, tt.want)
			}
		})
	}
}

// Decoding is total: any frame with the fault bits clear yields codes
// inside the signed 14-bit and 12-bit ranges.
func TestDecodeFrameRanges(t *testing.T) {
	x := uint32(0x12345678)
	for i := 0; i < 10000; i++ {
		x = x*1664525 + 1013904223
		frame := [4]byte{byte(x >> 24), byte(x>>16) &^ faultGenericFault, byte(x >> 8), byte(x) &^ 0x0F}
		probe, reference, err := decodeFrame(frame)
		if err != nil {
			t.Fatalf("decodeFrame(% 02x): %v", frame, err)
		}
		if probe < -8192 || probe > 8191 {
			t.Fatalf("probe code %d out of 14-bit range for frame % 02x", probe, frame)
		}
		if reference < -2048 || reference > 2047 {
			t.Fatalf("reference code %d out of 12-bit range for frame % 02x", reference, frame)
		}
	}
}

func TestDecodeFrameIdempotent(t *testing.T) {
	frame := [4]byte{0x06, 0x40, 0x02, 0x80}
	p1, r1, err1 := decodeFrame(frame)
	p2, r2, err2 := decodeFrame(frame)
	if p1 != p2 || r1 != r2 || err1 != err2 {
		t.Errorf("decodeFrame not deterministic: (%d,%d,%v) vs (%d,%d,%v)", p1, r1, err1, p2, r2, err2)
	}
}
