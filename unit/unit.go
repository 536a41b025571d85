package unit

// Number is the set of representation types a quantity can use.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Dimension identifies a physical quantity kind.
// Two units are compatible iff their Dimension methods return the same type.
type Dimension interface {
	// Name returns the stable name of the dimension (e.g. "length").
	Name() string
}

// Unit is a concrete measurement unit of dimension D.
//
// Implementations are zero-size types; the zero value is the unit.
type Unit[D Dimension] interface {
	// Dimension returns the dimension marker. Its return type is what ties
	// the unit to D at compile time.
	Dimension() D
	// Factor is the multiplier converting a value in this unit into the
	// canonical unit of D.
	Factor() float64
	// Symbol is the short, unique symbol of the unit (e.g. "cm").
	Symbol() string
}

// Ratio returns the multiplier converting a raw value in From into To.
func Ratio[D Dimension, From Unit[D], To Unit[D]]() float64 {
	var (
		from From
		to   To
	)
	return from.Factor() / to.Factor()
}

// Convert converts raw from unit From into unit To.
//
// The multiplication is done in float64. Integer representation types
// truncate toward zero. A unit ratio of exactly 1 returns raw untouched.
func Convert[D Dimension, From Unit[D], To Unit[D], T Number](raw T) T {
	r := Ratio[D, From, To]()
	if r == 1 {
		return raw
	}
	return T(float64(raw) * r)
}

// Canonical returns raw, given in unit U, expressed in the canonical unit of D.
func Canonical[D Dimension, U Unit[D], T Number](raw T) float64 {
	var u U
	return float64(raw) * u.Factor()
}
