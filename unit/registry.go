package unit

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownUnit is returned when a symbol is not registered.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrDuplicateUnit is returned when registering a symbol twice with
	// conflicting metadata.
	ErrDuplicateUnit = errors.New("duplicate unit")
)

// Info is the runtime description of a unit.
//
// The static type system is the source of truth for arithmetic. Info only
// exists for boundaries where units arrive as data (decoding, logging).
type Info struct {
	Symbol    string  `json:"symbol"`
	Dimension string  `json:"dimension"`
	Factor    float64 `json:"factor"`
}

// Compatible reports whether both units measure the same dimension.
func (i Info) Compatible(other Info) bool {
	return i.Dimension == other.Dimension
}

// RatioTo returns the multiplier converting a value in i into other.
func (i Info) RatioTo(other Info) float64 {
	return i.Factor / other.Factor
}

// Describe returns the Info of unit U.
func Describe[D Dimension, U Unit[D]]() Info {
	var (
		u U
		d D
	)
	return Info{Symbol: u.Symbol(), Dimension: d.Name(), Factor: u.Factor()}
}

type registry struct {
	mu    sync.RWMutex
	units map[string]Info
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	r := &registry{units: make(map[string]Info)}
	for _, info := range builtin() {
		r.units[info.Symbol] = info
	}
	return r
}

func (r *registry) lookup(symbol string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.units[symbol]
	return info, ok
}

func (r *registry) register(info Info) error {
	if info.Symbol == "" || info.Dimension == "" || info.Factor <= 0 {
		return fmt.Errorf("invalid unit %+v", info)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.units[info.Symbol]; ok {
		if existing == info {
			return nil
		}
		return fmt.Errorf("%w: %q already registered as %+v", ErrDuplicateUnit, info.Symbol, existing)
	}
	r.units[info.Symbol] = info
	return nil
}

// Lookup returns the registered unit with the given symbol.
func Lookup(symbol string) (Info, bool) {
	return defaultRegistry.lookup(symbol)
}

// Resolve is like Lookup but returns ErrUnknownUnit for missing symbols.
func Resolve(symbol string) (Info, error) {
	info, ok := defaultRegistry.lookup(symbol)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return info, nil
}

// Register adds unit U to the runtime registry.
// Registering the same unit twice is a no-op.
func Register[D Dimension, U Unit[D]]() error {
	return defaultRegistry.register(Describe[D, U]())
}

func builtin() []Info {
	return []Info{
		Describe[Length, Meter](),
		Describe[Length, Kilometer](),
		Describe[Length, Centimeter](),
		Describe[Length, Millimeter](),
		Describe[Length, Foot](),
		Describe[Length, Inch](),
		Describe[Length, Yard](),
		Describe[Length, Mile](),
		Describe[Time, Second](),
		Describe[Time, Millisecond](),
		Describe[Time, Minute](),
		Describe[Time, Hour](),
		Describe[Mass, Kilogram](),
		Describe[Mass, Gram](),
		Describe[Mass, Pound](),
		Describe[Velocity, MeterPerSecond](),
		Describe[Velocity, KilometerPerHour](),
		Describe[Velocity, FootPerSecond](),
		Describe[Velocity, Knot](),
		Describe[Acceleration, MeterPerSecondSquared](),
		Describe[Acceleration, Gal](),
		Describe[Acceleration, FootPerSecondSquared](),
		Describe[Acceleration, StandardGravity](),
		Describe[Area, SquareMeter](),
		Describe[Area, SquareCentimeter](),
		Describe[Area, SquareFoot](),
	}
}
