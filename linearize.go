package max31855

import "math"

// coldJunctionVoltage computes the NIST Type-K thermoelectric voltage
// in mV that a junction at refC degrees Celsius produces, using the
// ITS-90 polynomial fit plus its exponential correction term.
func coldJunctionVoltage(refC float64) float64 {
	v := 0.0
	term := 1.0
	for _, c := range coldJunctionCoeffs {
		v += c * term
		term *= refC
	}
	d := refC - coldJunctionExpA2
	return v + coldJunctionExpA0*math.Exp(coldJunctionExpA1*d*d)
}

// inverseTemperature inverts the Type-K curve, mapping a thermocouple
// voltage in mV to °C using the inverse coefficient set for the
// voltage's range. Fails with ErrOutOfRange at or above the upper
// bound of the last calibrated segment.
func inverseTemperature(mV float64) (float64, error) {
	var coeffs *[10]float64
	switch {
	case mV < 0:
		coeffs = &inverseCoeffsNeg
	case mV < voltageMidMax:
		coeffs = &inverseCoeffsMid
	case mV < voltageHighMax:
		coeffs = &inverseCoeffsHigh
	default:
		return 0, ErrOutOfRange
	}

	t := 0.0
	term := 1.0
	for _, c := range coeffs {
		t += c * term
		term *= mV
	}
	return t, nil
}

// linearize corrects the chip's linear-approximation readings for
// thermocouple nonlinearity. The chip reports the probe temperature
// assuming a constant Type-K sensitivity; converting the differential
// reading back to millivolts, adding the true cold-junction voltage and
// inverting via the NIST polynomials recovers the actual probe
// temperature.
func linearize(probeC, refC float64) (float64, error) {
	return inverseTemperature((probeC-refC)*typeKSensitivity + coldJunctionVoltage(refC))
}
