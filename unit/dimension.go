package unit

// Length is the dimension of distances. Canonical unit: Meter.
type Length struct{}

// Name implements Dimension.
func (Length) Name() string { return "length" }

// Time is the dimension of durations. Canonical unit: Second.
type Time struct{}

// Name implements Dimension.
func (Time) Name() string { return "time" }

// Mass is the dimension of masses. Canonical unit: Kilogram.
type Mass struct{}

// Name implements Dimension.
func (Mass) Name() string { return "mass" }

// Velocity is length per time. Canonical unit: MeterPerSecond.
type Velocity struct{}

// Name implements Dimension.
func (Velocity) Name() string { return "velocity" }

// Acceleration is length per time squared. Canonical unit: MeterPerSecondSquared.
type Acceleration struct{}

// Name implements Dimension.
func (Acceleration) Name() string { return "acceleration" }

// Area is length squared. Canonical unit: SquareMeter.
type Area struct{}

// Name implements Dimension.
func (Area) Name() string { return "area" }
