package shimmer

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// manipTransform builds the affine matrix for one spatial manipulation with
// magnitude val, conjugated by the pivot translation. Returns [a, b, c, d,
// tx, ty].
//
// Composition order per op: Translate(-pivot) -> op -> Translate(+pivot).
// Pure translations commute with the pivot shift, so they skip it. Unknown
// ops return the identity.
func manipTransform(op SpatialOp, val float64, pivot Vec2) [6]float64 {
	switch op {
	case SpatialTranslateX:
		return [6]float64{1, 0, 0, 1, val, 0}
	case SpatialTranslateY:
		return [6]float64{1, 0, 0, 1, 0, val}
	}

	var a, b, c, d float64 = 1, 0, 0, 1
	switch op {
	case SpatialScaleX:
		a = 1 + val
	case SpatialScaleY:
		d = 1 + val
	case SpatialRotate:
		sin, cos := math.Sincos(val)
		a, b, c, d = cos, sin, -sin, cos
	case SpatialShearX:
		c = val
	case SpatialShearY:
		b = val
	default:
		return identityTransform
	}

	// Conjugate the linear part by the pivot: p' = M*(p-pivot) + pivot.
	px := pivot.X
	py := pivot.Y
	return [6]float64{a, b, c, d, px - (a*px + c*py), py - (b*px + d*py)}
}

// multiplyAffine multiplies two 2D affine matrices: result = outer * inner,
// the matrix applying inner first.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	return [6]float64{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
