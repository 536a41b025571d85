package unit

// Kilogram is the SI unit of mass.
type Kilogram struct{}

func (Kilogram) Dimension() Mass { return Mass{} }
func (Kilogram) Factor() float64 { return 1 }
func (Kilogram) Symbol() string  { return "kg" }

// Gram is the CGS unit of mass.
type Gram struct{}

func (Gram) Dimension() Mass { return Mass{} }
func (Gram) Factor() float64 { return 1e-3 }
func (Gram) Symbol() string  { return "g" }

// Pound is the avoirdupois pound.
type Pound struct{}

func (Pound) Dimension() Mass { return Mass{} }
func (Pound) Factor() float64 { return 0.45359237 }
func (Pound) Symbol() string  { return "lb" }
