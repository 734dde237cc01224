package table

import "math"

// ScaleMode selects how chart values are mapped onto the vertical axis.
type ScaleMode int

const (
	Linear ScaleMode = iota
	Log
)

// String returns the chart name for the scale.
func (m ScaleMode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}

// Point is a position in normalized plot space [0,1]x[0,1].
// Y grows upward: 1 is the top of the chart.
type Point struct {
	X, Y float64
}

// MapToPoint converts a shot index into normalized chart coordinates.
//
// X is index/LastIndex. Row 0 has no utility, so both scales plot it at
// threat/MaxThreat. Other rows plot utility/MaxUtility on the linear scale
// and log10(utility)/log10(MaxUtility) on the log scale, with the utility
// floored to 1 so a non-positive value maps to the axis instead of -Inf.
func MapToPoint(index int, mode ScaleMode) (Point, error) {
	rec, err := At(index)
	if err != nil {
		return Point{}, err
	}

	x := float64(index) / float64(LastIndex)

	utility, ok := rec.Utility()
	if !ok {
		return Point{X: x, Y: rec.ThreatPercent / MaxThreat}, nil
	}

	if mode == Log {
		return Point{X: x, Y: math.Log10(math.Max(utility, 1)) / math.Log10(MaxUtility)}, nil
	}
	return Point{X: x, Y: utility / MaxUtility}, nil
}

// MustPoint is like MapToPoint but panics on an invalid index.
func MustPoint(index int, mode ScaleMode) Point {
	p, err := MapToPoint(index, mode)
	if err != nil {
		panic(err)
	}
	return p
}

// Points returns the mapped points for indices 0..upTo inclusive.
func Points(upTo int, mode ScaleMode) []Point {
	if upTo < 0 {
		return nil
	}
	pts := make([]Point, 0, upTo+1)
	for i := 0; i <= upTo; i++ {
		pts = append(pts, MustPoint(i, mode))
	}
	return pts
}
