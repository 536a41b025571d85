package unit

// MeterPerSecond is a unit of velocity (m/s).
type MeterPerSecond struct{}

func (MeterPerSecond) Dimension() Velocity { return Velocity{} }
func (MeterPerSecond) Factor() float64     { return 1 }
func (MeterPerSecond) Symbol() string      { return "m/s" }

// KilometerPerHour is a unit of velocity (km/h).
type KilometerPerHour struct{}

func (KilometerPerHour) Dimension() Velocity { return Velocity{} }
func (KilometerPerHour) Factor() float64     { return 1e3 / 3600.0 }
func (KilometerPerHour) Symbol() string      { return "km/h" }

// FootPerSecond is a unit of velocity (ft/s).
type FootPerSecond struct{}

func (FootPerSecond) Dimension() Velocity { return Velocity{} }
func (FootPerSecond) Factor() float64     { return 0.3048 }
func (FootPerSecond) Symbol() string      { return "ft/s" }

// Knot is one nautical mile per hour.
type Knot struct{}

func (Knot) Dimension() Velocity { return Velocity{} }
func (Knot) Factor() float64     { return 1852 / 3600.0 }
func (Knot) Symbol() string      { return "kn" }
