package max31855

// Fault bits in the 32-bit data frame. The three specific faults live
// in the low nibble of byte 3; byte 1 bit 0 is a generic fault flag
// that can be set on its own.
const (
	faultOpenCircuit  uint8 = 0x01
	faultShortGround  uint8 = 0x02
	faultShortPower   uint8 = 0x04
	faultGenericFault uint8 = 0x01
)

// Fixed-point scale factors from the chip's resolution: 0.25°C/LSB for
// the thermocouple, 0.0625°C/LSB for the internal sensor. The reference
// scale of 0.625 matches the Adafruit reference driver.
const (
	probeScale     float64 = 0.25
	referenceScale float64 = 0.625
)

// Approximate Type-K sensitivity in mV/°C, used to translate the
// chip's differential reading back to a thermocouple voltage.
const typeKSensitivity float64 = 0.041276

// NIST ITS-90 Type-K cold-junction voltage polynomial, degree 0..9,
// plus the Gaussian correction term a0*exp(a1*(t-a2)^2). Input °C,
// output mV.
var coldJunctionCoeffs = [10]float64{
	-0.176004136860e-01,
	0.389212049750e-01,
	0.185587700320e-04,
	-0.994575928740e-07,
	0.318409457190e-09,
	-0.560728448890e-12,
	0.560750590590e-15,
	-0.320207200030e-18,
	0.971511471520e-22,
	-0.121047212750e-25,
}

const (
	coldJunctionExpA0 float64 = 0.118597600000e+00
	coldJunctionExpA1 float64 = -0.118343200000e-03
	coldJunctionExpA2 float64 = 0.126968600000e+03
)

// Inverse (voltage to temperature) Type-K coefficients, one set per
// voltage range. Input mV, output °C.
var (
	// -5.891mV..0mV (-200°C..0°C)
	inverseCoeffsNeg = [10]float64{
		0.0000000e+00,
		2.5173462e+01,
		-1.1662878e+00,
		-1.0833638e+00,
		-8.9773540e-01,
		-3.7342377e-01,
		-8.6632643e-02,
		-1.0450598e-02,
		-5.1920577e-04,
		0.0000000e+00,
	}
	// 0mV..20.644mV (0°C..500°C)
	inverseCoeffsMid = [10]float64{
		0.000000e+00,
		2.508355e+01,
		7.860106e-02,
		-2.503131e-01,
		8.315270e-02,
		-1.228034e-02,
		9.804036e-04,
		-4.413030e-05,
		1.057734e-06,
		-1.052755e-08,
	}
	// 20.644mV..54.886mV (500°C..1372°C)
	inverseCoeffsHigh = [10]float64{
		-1.318058e+02,
		4.830222e+01,
		-1.646031e+00,
		5.464731e-02,
		-9.650715e-04,
		8.802193e-06,
		-3.110810e-08,
		0.000000e+00,
		0.000000e+00,
		0.000000e+00,
	}
)

// Upper bounds of the middle and high inverse segments, in mV.
const (
	voltageMidMax  float64 = 20.644
	voltageHighMax float64 = 54.886
)
