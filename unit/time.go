package unit

// Second is the SI unit of time.
type Second struct{}

func (Second) Dimension() Time { return Time{} }
func (Second) Factor() float64 { return 1 }
func (Second) Symbol() string  { return "s" }

// Millisecond is a unit of time (ms).
type Millisecond struct{}

func (Millisecond) Dimension() Time { return Time{} }
func (Millisecond) Factor() float64 { return 1e-3 }
func (Millisecond) Symbol() string  { return "ms" }

// Minute is a unit of time (min).
type Minute struct{}

func (Minute) Dimension() Time { return Time{} }
func (Minute) Factor() float64 { return 60 }
func (Minute) Symbol() string  { return "min" }

// Hour is a unit of time (h).
type Hour struct{}

func (Hour) Dimension() Time { return Time{} }
func (Hour) Factor() float64 { return 3600 }
func (Hour) Symbol() string  { return "h" }
