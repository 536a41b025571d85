package unit

// MeterPerSecondSquared is a unit of acceleration (m/s^2).
type MeterPerSecondSquared struct{}

func (MeterPerSecondSquared) Dimension() Acceleration { return Acceleration{} }
func (MeterPerSecondSquared) Factor() float64         { return 1 }
func (MeterPerSecondSquared) Symbol() string          { return "m/s^2" }

// Gal is the CGS unit of acceleration (cm/s^2).
type Gal struct{}

func (Gal) Dimension() Acceleration { return Acceleration{} }
func (Gal) Factor() float64         { return 1e-2 }
func (Gal) Symbol() string          { return "Gal" }

// FootPerSecondSquared is a unit of acceleration (ft/s^2).
type FootPerSecondSquared struct{}

func (FootPerSecondSquared) Dimension() Acceleration { return Acceleration{} }
func (FootPerSecondSquared) Factor() float64         { return 0.3048 }
func (FootPerSecondSquared) Symbol() string          { return "ft/s^2" }

// StandardGravity is a unit of acceleration (g0).
type StandardGravity struct{}

func (StandardGravity) Dimension() Acceleration { return Acceleration{} }
func (StandardGravity) Factor() float64         { return 9.80665 }
func (StandardGravity) Symbol() string          { return "g0" }
