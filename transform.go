package physics

import "math"

// Transform is a 2x3 affine transform with linear columns A, B and
// translation column P. Applying it to a point v computes
// A*v.X + B*v.Y + P; applying it as a direction omits P.
//
// Grounded on transform.go (Transform) from the reference engine, whose
// six-float a,b,c,d,tx,ty layout is regrouped here into the column form
// spec.md §3 names explicitly (A, B, P) so append/apply read the same way
// the specification states them.
type Transform struct {
	A, B, P V2
}

func IdentityTransform() Transform {
	return Transform{A: V2{1, 0}, B: V2{0, 1}, P: V2{}}
}

func ZeroTransform() Transform {
	return Transform{}
}

func RotateTransform(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform{A: V2{c, s}, B: V2{-s, c}, P: V2{}}
}

func ScaleTransform(factor float64) Transform {
	return Transform{A: V2{factor, 0}, B: V2{0, factor}, P: V2{}}
}

func TranslateTransform(v V2) Transform {
	return Transform{A: V2{1, 0}, B: V2{0, 1}, P: v}
}

func (t Transform) Copy() Transform {
	return t
}

// Apply maps a point through the full affine transform.
func (t Transform) Apply(v V2) V2 {
	return V2{
		X: t.A.X*v.X + t.B.X*v.Y + t.P.X,
		Y: t.A.Y*v.X + t.B.Y*v.Y + t.P.Y,
	}
}

// ApplyDirection maps a direction through the linear part only.
func (t Transform) ApplyDirection(v V2) V2 {
	return V2{
		X: t.A.X*v.X + t.B.X*v.Y,
		Y: t.A.Y*v.X + t.B.Y*v.Y,
	}
}

// Add is componentwise addition over all six fields.
func (t Transform) Add(o Transform) Transform {
	return Transform{A: t.A.Add(o.A), B: t.B.Add(o.B), P: t.P.Add(o.P)}
}

// Sub is componentwise subtraction over all six fields.
func (t Transform) Sub(o Transform) Transform {
	return Transform{A: t.A.Sub(o.A), B: t.B.Sub(o.B), P: t.P.Sub(o.P)}
}

// Scale multiplies all six fields by s.
func (t Transform) Scale(s float64) Transform {
	return Transform{A: t.A.Scale(s), B: t.B.Scale(s), P: t.P.Scale(s)}
}

// AddScaled returns t + o*s, componentwise. Used pervasively by Trajectory
// to evaluate base + (t-anchor)*motion without an intermediate allocation.
func (t Transform) AddScaled(o Transform, s float64) Transform {
	return Transform{
		A: t.A.Add(o.A.Scale(s)),
		B: t.B.Add(o.B.Scale(s)),
		P: t.P.Add(o.P.Scale(s)),
	}
}

// Append composes two transforms so that t is applied first:
// t.Append(o).Apply(v) == o.Apply(t.Apply(v)).
func (t Transform) Append(o Transform) Transform {
	return Transform{
		A: V2{o.A.X*t.A.X + o.B.X*t.A.Y, o.A.Y*t.A.X + o.B.Y*t.A.Y},
		B: V2{o.A.X*t.B.X + o.B.X*t.B.Y, o.A.Y*t.B.X + o.B.Y*t.B.Y},
		P: V2{
			o.A.X*t.P.X + o.B.X*t.P.Y + o.P.X,
			o.A.Y*t.P.X + o.B.Y*t.P.Y + o.P.Y,
		},
	}
}

// Invert returns the affine inverse of t.
func (t Transform) Invert() Transform {
	det := t.A.X*t.B.Y - t.B.X*t.A.Y
	invDet := 1 / det
	a := V2{t.B.Y * invDet, -t.A.Y * invDet}
	b := V2{-t.B.X * invDet, t.A.X * invDet}
	p := V2{
		X: -(a.X*t.P.X + b.X*t.P.Y),
		Y: -(a.Y*t.P.X + b.Y*t.P.Y),
	}
	return Transform{A: a, B: b, P: p}
}

func (t Transform) Lerp(o Transform, s float64) Transform {
	return Transform{A: t.A.Lerp(o.A, s), B: t.B.Lerp(o.B, s), P: t.P.Lerp(o.P, s)}
}

// ParseTransform builds a Transform from a flexible literal shape: a
// six-element []float64 in (ax, ay, bx, by, px, py) order, or six discrete
// numbers in the same order. Any other shape is ErrUnsupportedArguments.
func ParseTransform(args ...interface{}) (Transform, error) {
	var xs []float64
	if len(args) == 1 {
		if s, ok := args[0].([]float64); ok {
			xs = s
		}
	} else if len(args) == 6 {
		xs = make([]float64, 6)
		for i, a := range args {
			f, ok := toFloat(a)
			if !ok {
				return Transform{}, wrapf(ErrUnsupportedArguments, "ParseTransform(%v)", args)
			}
			xs[i] = f
		}
	}
	if len(xs) != 6 {
		return Transform{}, wrapf(ErrUnsupportedArguments, "ParseTransform(%v)", args)
	}
	return Transform{
		A: V2{xs[0], xs[1]},
		B: V2{xs[2], xs[3]},
		P: V2{xs[4], xs[5]},
	}, nil
}
