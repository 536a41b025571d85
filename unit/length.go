package unit

// Meter is the SI unit of length.
type Meter struct{}

func (Meter) Dimension() Length { return Length{} }
func (Meter) Factor() float64   { return 1 }
func (Meter) Symbol() string    { return "m" }

// Kilometer is a unit of length (km).
type Kilometer struct{}

func (Kilometer) Dimension() Length { return Length{} }
func (Kilometer) Factor() float64   { return 1e3 }
func (Kilometer) Symbol() string    { return "km" }

// Centimeter is the CGS unit of length.
type Centimeter struct{}

func (Centimeter) Dimension() Length { return Length{} }
func (Centimeter) Factor() float64   { return 1e-2 }
func (Centimeter) Symbol() string    { return "cm" }

// Millimeter is a unit of length (mm).
type Millimeter struct{}

func (Millimeter) Dimension() Length { return Length{} }
func (Millimeter) Factor() float64   { return 1e-3 }
func (Millimeter) Symbol() string    { return "mm" }

// Foot is the international foot.
type Foot struct{}

func (Foot) Dimension() Length { return Length{} }
func (Foot) Factor() float64   { return 0.3048 }
func (Foot) Symbol() string    { return "ft" }

// Inch is a unit of length (in).
type Inch struct{}

func (Inch) Dimension() Length { return Length{} }
func (Inch) Factor() float64   { return 0.0254 }
func (Inch) Symbol() string    { return "in" }

// Yard is a unit of length (yd).
type Yard struct{}

func (Yard) Dimension() Length { return Length{} }
func (Yard) Factor() float64   { return 0.9144 }
func (Yard) Symbol() string    { return "yd" }

// Mile is the international statute mile.
type Mile struct{}

func (Mile) Dimension() Length { return Length{} }
func (Mile) Factor() float64   { return 1609.344 }
func (Mile) Symbol() string    { return "mi" }
