package bough

// Opacity holds one alpha value per corner of a drawable's quad. When all four
// corners are equal the opacity is uniform and behaves as a single scalar.
type Opacity struct {
	TL, TR, BL, BR float64
}

// OpacityOpaque is the default fully opaque value.
var OpacityOpaque = Opacity{1, 1, 1, 1}

// UniformOpacity returns an Opacity with a at every corner.
func UniformOpacity(a float64) Opacity {
	return Opacity{a, a, a, a}
}

// QuadOpacity returns an Opacity with per-corner values.
func QuadOpacity(tl, tr, bl, br float64) Opacity {
	return Opacity{tl, tr, bl, br}
}

// IsUniform reports whether all four corners carry the same value.
func (o Opacity) IsUniform() bool {
	return o.TL == o.TR && o.TL == o.BL && o.TL == o.BR
}

// Alpha returns the top-left value, which is the scalar for uniform opacity.
func (o Opacity) Alpha() float64 {
	return o.TL
}

// Corners returns the values in TL, TR, BL, BR order.
func (o Opacity) Corners() [4]float64 {
	return [4]float64{o.TL, o.TR, o.BL, o.BR}
}

// Mul combines o with other corner by corner. Two uniform operands reduce to
// a single scalar product; a uniform operand is broadcast across the corners
// of a quad operand.
func (o Opacity) Mul(other Opacity) Opacity {
	ou, pu := o.IsUniform(), other.IsUniform()
	switch {
	case ou && pu:
		return UniformOpacity(o.TL * other.TL)
	case ou:
		a := o.TL
		return Opacity{a * other.TL, a * other.TR, a * other.BL, a * other.BR}
	case pu:
		a := other.TL
		return Opacity{o.TL * a, o.TR * a, o.BL * a, o.BR * a}
	default:
		return Opacity{o.TL * other.TL, o.TR * other.TR, o.BL * other.BL, o.BR * other.BR}
	}
}
