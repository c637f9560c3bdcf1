package flex

import "github.com/flexkit/flex/internal/core/geom"

// CalculateLayout is the public entry point (C10): it bumps the shared
// generation counter so every stale ComputedFlexBasis is invalidated,
// normalizes the two available-size arguments into (size, MeasureMode)
// pairs, runs the memoized dispatcher with performLayout=true, places
// the root at its own leading margins, and finally applies pixel rounding if the owning
// Config opted into ExperimentalFeatures.Rounding.
func CalculateLayout(node *Node, availableWidth, availableHeight geom.Value, parentDirection Direction) {
	currentGeneration++

	widthMode := MeasureModeUndefined
	if geom.IsDefined(availableWidth) {
		widthMode = MeasureModeExactly
	}
	heightMode := MeasureModeUndefined
	if geom.IsDefined(availableHeight) {
		heightMode = MeasureModeExactly
	}

	layoutInternal(node, availableWidth, availableHeight, parentDirection, widthMode, heightMode, true, "initial")

	node.layout.Position[geom.EdgeLeft] = leadingMargin(&node.style, FlexDirectionRow)
	node.layout.Position[geom.EdgeTop] = leadingMargin(&node.style, FlexDirectionColumn)

	if node.config != nil && node.config.Experimental.Rounding {
		roundLayout(node, 0, 0)
	}
}

// roundLayout snaps node's resolved rectangle (and recursively every
// descendant's) to whole pixels, carrying each axis's fractional
// remainder forward rather than truncating independently at every level
// — the standard trick for avoiding accumulated 1px gaps between
// adjacent children.
func roundLayout(node *Node, cumulativeLeft, cumulativeTop float64) {
	absLeft := cumulativeLeft + node.layout.Position[geom.EdgeLeft]
	absTop := cumulativeTop + node.layout.Position[geom.EdgeTop]

	roundedLeft := roundPixel(absLeft)
	roundedTop := roundPixel(absTop)

	node.layout.Position[geom.EdgeLeft] = roundPixel(node.layout.Position[geom.EdgeLeft])
	node.layout.Position[geom.EdgeTop] = roundPixel(node.layout.Position[geom.EdgeTop])
	node.layout.MeasuredDimensions[geom.DimensionWidth] = roundPixel(absLeft+node.layout.MeasuredDimensions[geom.DimensionWidth]) - roundedLeft
	node.layout.MeasuredDimensions[geom.DimensionHeight] = roundPixel(absTop+node.layout.MeasuredDimensions[geom.DimensionHeight]) - roundedTop

	for _, c := range node.children {
		roundLayout(c, absLeft, absTop)
	}
}

func roundPixel(v float64) float64 {
	if v < 0 {
		return -roundPixel(-v)
	}
	whole := float64(int64(v))
	frac := v - whole
	if frac >= 0.5 {
		return whole + 1
	}
	return whole
}
