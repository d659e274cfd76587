// Package max31855 interfaces with the Maxim Integrated MAX31855
// thermocouple-to-digital converter over SPI.
//
// The chip measures the thermocouple to a resolution of 0.25°C and its
// internal cold-junction sensor to 0.0625°C, delivering both in a
// single read-only 32-bit frame. The chip's own conversion assumes a
// perfectly linear thermocouple; LinearizedTemperature additionally
// applies the NIST Type-K polynomials to correct for the real curve.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/MAX31855.pdf
package max31855

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts holds various configuration options for the sensor
type Opts struct {
	// Linearize applies the NIST Type-K polynomial correction to
	// measurements taken through Sense/SenseContinuous. The plain
	// Temperature reading is the chip's linear approximation either way.
	Linearize bool
	Port      string
}

func DefaultOptions() *Opts {
	return &Opts{
		Linearize: true,
	}
}

func New(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(5*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max31855: %v", err)
	}

	if opts == nil {
		opts = DefaultOptions()
	}

	d := &Dev{
		d:    c,
		opts: *opts,
		name: p.String(),
	}

	return d, nil
}

type Dev struct {
	d    conn.Conn
	opts Opts
	name string

	mu   sync.Mutex
	tx   [4]byte
	rx   [4]byte
	stop chan struct{}
	wg   sync.WaitGroup
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s}", d.name, d.d)
}

// Temperature returns the thermocouple temperature in °C as reported by
// the chip (0.25°C resolution, linear approximation). Each call
// performs one bus transaction.
func (d *Dev) Temperature() (float64, error) {
	probe, _, err := d.read()
	if err != nil {
		return 0, d.wrap(err)
	}
	return float64(probe) * probeScale, nil
}

// ReferenceTemperature returns the internal cold-junction temperature
// in °C. Each call performs one bus transaction.
func (d *Dev) ReferenceTemperature() (float64, error) {
	_, reference, err := d.read()
	if err != nil {
		return 0, d.wrap(err)
	}
	return float64(reference) * referenceScale, nil
}

// LinearizedTemperature returns the NIST-linearized thermocouple
// temperature in °C. Both codes come from a single bus transaction, so
// the probe and cold-junction readings are always coherent. Fails with
// ErrOutOfRange beyond the calibrated Type-K segments.
func (d *Dev) LinearizedTemperature() (float64, error) {
	probe, reference, err := d.read()
	if err != nil {
		return 0, d.wrap(err)
	}
	t, err := linearize(float64(probe)*probeScale, float64(reference)*referenceScale)
	if err != nil {
		return 0, d.wrap(err)
	}
	return t, nil
}

func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return d.wrap(errors.New("already sensing continuously"))
	}

	return d.sense(e)
}

// SenseContinuous returns measurements as °C on a continuous basis.
//
// The application must call Halt() to stop the sensing when done to stop the
// sensor and close the channel.
//
// It's the responsibility of the caller to retrieve the values from the
// channel as fast as possible, otherwise the interval may not be respected.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		// Don't send the stop command to the device.
		close(d.stop)
		d.stop = nil
		d.wg.Wait()
	}

	sensing := make(chan physic.Env)
	d.stop = make(chan struct{})
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(sensing)
		d.sensingContinuous(interval, sensing, d.stop)
	}()
	return sensing, nil
}

// 14-Bit thermocouple channel, 0.25°C per LSB.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / 4
}

// Halt stops the MAX31855 from acquiring measurements as initiated by
// SenseContinuous().
//
// It is recommended to call this function before terminating the process to
// reduce idle power usage and a goroutine leak.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop == nil {
		return nil
	}
	close(d.stop)
	d.stop = nil
	d.wg.Wait()

	return nil
}

// read performs one 4-byte full-duplex transaction and decodes the
// frame. The transfer buffers are owned by d and reused across calls;
// the mutex keeps one transaction in flight at a time.
func (d *Dev) read() (probe, reference int16, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readLocked()
}

func (d *Dev) readLocked() (probe, reference int16, err error) {
	if err := d.d.Tx(d.tx[:], d.rx[:]); err != nil {
		return 0, 0, fmt.Errorf("txn error: %w", err)
	}
	return decodeFrame(d.rx)
}

// sense takes one measurement. The caller must hold d.mu.
func (d *Dev) sense(e *physic.Env) error {
	probe, reference, err := d.readLocked()
	if err != nil {
		return d.wrap(err)
	}

	temp := float64(probe) * probeScale
	if d.opts.Linearize {
		temp, err = linearize(temp, float64(reference)*referenceScale)
		if err != nil {
			return d.wrap(err)
		}
	}
	e.Temperature = physic.Temperature(temp*1000)*physic.MilliCelsius + physic.ZeroCelsius

	return nil
}

func (d *Dev) sensingContinuous(interval time.Duration, sensing chan<- physic.Env, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()

	var err error
	for {
		// Do one initial sensing right away.
		e := physic.Env{}
		d.mu.Lock()
		err = d.sense(&e)
		d.mu.Unlock()
		if err != nil {
			return
		}
		select {
		case sensing <- e:
		case <-stop:
			return
		}
		select {
		case <-stop:
			return
		case <-t.C:
		}
	}
}

func (d *Dev) wrap(err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(d.name), err)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
