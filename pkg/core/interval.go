package core

import "math"

// Interval is a closed range of real numbers [Min, Max]
type Interval struct {
	Min float64
	Max float64
}

var (
	// EmptyInterval contains nothing and is the identity for unions
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalUnion returns the smallest interval enclosing both a and b
func NewIntervalUnion(a, b Interval) Interval {
	return Interval{
		Min: math.Min(a.Min, b.Min),
		Max: math.Max(a.Max, b.Max),
	}
}

// Size returns the length of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Max < i.Min
}

// Contains reports whether Min <= x <= Max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether Min < x < Max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp projects x into the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand grows both ends of the interval by delta/2
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Offset shifts both ends of the interval by d
func (i Interval) Offset(d float64) Interval {
	return Interval{Min: i.Min + d, Max: i.Max + d}
}

// Encloses reports whether other lies entirely within the interval
func (i Interval) Encloses(other Interval) bool {
	return i.Min <= other.Min && other.Max <= i.Max
}
