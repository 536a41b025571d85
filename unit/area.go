package unit

// SquareMeter is a unit of area (m^2).
type SquareMeter struct{}

func (SquareMeter) Dimension() Area { return Area{} }
func (SquareMeter) Factor() float64 { return 1 }
func (SquareMeter) Symbol() string  { return "m^2" }

// SquareCentimeter is a unit of area (cm^2).
type SquareCentimeter struct{}

func (SquareCentimeter) Dimension() Area { return Area{} }
func (SquareCentimeter) Factor() float64 { return 1e-4 }
func (SquareCentimeter) Symbol() string  { return "cm^2" }

// SquareFoot is a unit of area (ft^2).
type SquareFoot struct{}

func (SquareFoot) Dimension() Area { return Area{} }
func (SquareFoot) Factor() float64 { return 0.09290304 }
func (SquareFoot) Symbol() string  { return "ft^2" }
