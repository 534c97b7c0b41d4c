package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformIdentity(t *testing.T) {
	v := V2{X: 3, Y: -2}
	assert.Equal(t, v, IdentityTransform().Apply(v))
	assert.Equal(t, v, IdentityTransform().ApplyDirection(v))
}

func TestTransformTranslateOmitsDirection(t *testing.T) {
	xf := TranslateTransform(V2{X: 5, Y: 7})
	v := V2{X: 1, Y: 1}
	assert.Equal(t, V2{X: 6, Y: 8}, xf.Apply(v))
	assert.Equal(t, v, xf.ApplyDirection(v))
}

func TestTransformRotate(t *testing.T) {
	xf := RotateTransform(math.Pi / 2)
	p := xf.Apply(V2{X: 1, Y: 0})
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)
}

// Append composition law from spec.md §6: t.Append(o).Apply(v) ==
// o.Apply(t.Apply(v)).
func TestTransformAppendComposition(t *testing.T) {
	t1 := RotateTransform(0.3)
	t2 := TranslateTransform(V2{X: 2, Y: -1})
	v := V2{X: 1.5, Y: 0.7}

	lhs := t1.Append(t2).Apply(v)
	rhs := t2.Apply(t1.Apply(v))

	assert.InDelta(t, rhs.X, lhs.X, 1e-9)
	assert.InDelta(t, rhs.Y, lhs.Y, 1e-9)
}

func TestTransformInvert(t *testing.T) {
	xf := RotateTransform(0.9).Append(TranslateTransform(V2{X: 4, Y: -3}))
	inv := xf.Invert()

	v := V2{X: 2, Y: 5}
	round := xf.Append(inv).Apply(v)

	assert.InDelta(t, v.X, round.X, 1e-9)
	assert.InDelta(t, v.Y, round.Y, 1e-9)
}

func TestTransformAddScaled(t *testing.T) {
	base := TranslateTransform(V2{X: 1, Y: 1})
	motion := TranslateTransform(V2{X: 2, Y: 0})
	motion.A, motion.B = V2{}, V2{} // pure-translation velocity column

	at2 := base.AddScaled(motion, 2)
	assert.Equal(t, V2{X: 5, Y: 1}, at2.P)
}

func TestParseTransform(t *testing.T) {
	xf, err := ParseTransform(1.0, 0.0, 0.0, 1.0, 3.0, 4.0)
	require.NoError(t, err)
	assert.Equal(t, IdentityTransform().Add(Transform{P: V2{3, 4}}), xf)

	_, err = ParseTransform(1.0, 2.0)
	assert.ErrorIs(t, err, ErrUnsupportedArguments)
}
