package flex

import "github.com/flexkit/flex/internal/core/geom"

// boundAxisWithinMinAndMax clamps v to [minDim, maxDim] along axis's
// dimension when those bounds are defined and non-negative (§4.4).
func boundAxisWithinMinAndMax(st *Style, axis FlexDirection, v geom.Value) geom.Value {
	dim := geom.DimensionOf(axis)
	if geom.IsDefined(v) {
		if max := st.MaxDimensions[dim]; geom.IsDefined(max) && max >= 0 && v > max {
			v = max
		}
		if min := st.MinDimensions[dim]; geom.IsDefined(min) && min >= 0 && v < min {
			v = min
		}
	}
	return v
}

// boundAxis additionally floors the clamped value at the axis's own
// padding+border sum (P3): a box can never measure smaller than the
// space its own padding and border occupy.
func boundAxis(st *Style, axis FlexDirection, v geom.Value) geom.Value {
	return geom.MaxF64(boundAxisWithinMinAndMax(st, axis, v), paddingAndBorderForAxis(st, axis))
}

// constrainMaxSizeForMode folds a style's max-dimension constraint into a
// pending measure request: an Exactly/AtMost request is tightened to the
// max; an Undefined request is promoted to AtMost at the max (§4.4).
func constrainMaxSizeForMode(maxSize geom.Value, mode *MeasureMode, size *geom.Value) {
	if geom.IsUndefined(maxSize) {
		return
	}
	switch *mode {
	case MeasureModeExactly, MeasureModeAtMost:
		if geom.IsDefined(*size) && *size > maxSize {
			*size = maxSize
		}
	case MeasureModeUndefined:
		*mode = MeasureModeAtMost
		*size = maxSize
	}
}
