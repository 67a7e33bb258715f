// Package host supplies the values the games are driven by and owns the
// process-wide fatal path.
//
// Games never fetch their inputs themselves. A SpeedSource is read exactly
// once before the Breakout world is built; a GreetingSource is polled on
// every hello tick.
package host

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// SpeedSource supplies the Breakout speed scalar. Speed may block but must
// not have side effects.
type SpeedSource interface {
	Speed() (float64, error)
}

// GreetingSource supplies one line of display text per call.
type GreetingSource interface {
	Greeting() (string, error)
}

// ErrInvalidSpeed is returned when a source yields a negative or non-finite speed.
var ErrInvalidSpeed = errors.New("host: speed must be a finite non-negative number")

// Static serves fixed values, typically taken from config or CLI flags.
type Static struct {
	SpeedValue   float64
	GreetingText string
}

// Speed returns the configured speed.
func (s Static) Speed() (float64, error) {
	if math.IsNaN(s.SpeedValue) || math.IsInf(s.SpeedValue, 0) || s.SpeedValue < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSpeed, s.SpeedValue)
	}
	return s.SpeedValue, nil
}

// Greeting returns the configured greeting.
func (s Static) Greeting() (string, error) {
	return s.GreetingText, nil
}

// SpeedFunc adapts a plain function to SpeedSource.
type SpeedFunc func() (float64, error)

// Speed calls f.
func (f SpeedFunc) Speed() (float64, error) {
	return f()
}

// GreetingFunc adapts a plain function to GreetingSource.
type GreetingFunc func() (string, error)

// Greeting calls f.
func (f GreetingFunc) Greeting() (string, error) {
	return f()
}

type onceSpeed struct {
	src   SpeedSource
	once  sync.Once
	value float64
	err   error
}

// OnceSpeed wraps src so the underlying source is consulted at most once per
// process; later calls return the first result, error included.
func OnceSpeed(src SpeedSource) SpeedSource {
	if o, ok := src.(*onceSpeed); ok {
		return o
	}
	return &onceSpeed{src: src}
}

func (o *onceSpeed) Speed() (float64, error) {
	o.once.Do(func() {
		o.value, o.err = o.src.Speed()
	})
	return o.value, o.err
}
