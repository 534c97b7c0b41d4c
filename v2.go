package physics

import "math"

// V2 is an ordered pair of IEEE-754 doubles, the primitive 2-vector type
// used throughout the engine for points, directions, and velocities.
//
// Grounded on vector.go (Vector) from the reference rigid-body engine;
// generalized from a body-dynamics vector (impulses, torques) to a
// trajectory/geometry vector (positions, tangents, swept bounds).
type V2 struct {
	X, Y float64
}

// Zero is the additive identity vector.
var Zero = V2{}

func NewV2(x, y float64) V2 {
	return V2{X: x, Y: y}
}

func (v V2) Add(o V2) V2 {
	return V2{v.X + o.X, v.Y + o.Y}
}

func (v V2) Sub(o V2) V2 {
	return V2{v.X - o.X, v.Y - o.Y}
}

func (v V2) Scale(s float64) V2 {
	return V2{v.X * s, v.Y * s}
}

func (v V2) Neg() V2 {
	return V2{-v.X, -v.Y}
}

func (v V2) Dot(o V2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar z-component of the 3D cross product of the two
// vectors extended into the xy-plane.
func (v V2) Cross(o V2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v V2) MagSq() float64 {
	return v.Dot(v)
}

func (v V2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

func (v V2) Normalize() V2 {
	m := v.Mag()
	if m == 0 {
		return V2{}
	}
	return v.Scale(1 / m)
}

// Perp rotates the vector 90 degrees counter-clockwise.
func (v V2) Perp() V2 {
	return V2{-v.Y, v.X}
}

// AntiPerp rotates the vector 90 degrees clockwise.
func (v V2) AntiPerp() V2 {
	return V2{v.Y, -v.X}
}

// Project returns the component of v along axis.
func (v V2) Project(axis V2) V2 {
	denom := axis.Dot(axis)
	if denom == 0 {
		return V2{}
	}
	return axis.Scale(v.Dot(axis) / denom)
}

func (v V2) Lerp(o V2, t float64) V2 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

// ApplyTransform applies the affine transform t to v as a point, including
// translation.
func (v V2) ApplyTransform(t Transform) V2 {
	return t.Apply(v)
}

// ApplyTransformAffine applies the linear part of t to v, omitting
// translation. Used for direction/velocity vectors.
func (v V2) ApplyTransformAffine(t Transform) V2 {
	return t.ApplyDirection(v)
}

// ParseV2 builds a V2 from a flexible literal shape: two numbers (float64
// or int), or a two-element []float64. Any other shape is
// ErrUnsupportedArguments.
func ParseV2(args ...interface{}) (V2, error) {
	switch len(args) {
	case 1:
		if xs, ok := args[0].([]float64); ok && len(xs) == 2 {
			return V2{X: xs[0], Y: xs[1]}, nil
		}
	case 2:
		x, xok := toFloat(args[0])
		y, yok := toFloat(args[1])
		if xok && yok {
			return V2{X: x, Y: y}, nil
		}
	}
	return V2{}, wrapf(ErrUnsupportedArguments, "ParseV2(%v)", args)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
