package flex

import "github.com/flexkit/flex/internal/core/geom"

// computeChildFlexBasis resolves child's ComputedFlexBasis against the
// parent's already-known main-axis size (§4.5, C5). It tries three fast
// paths before falling back to a full measurement of the child:
//
//  1. An explicit style flexBasis, when the parent's main axis is already
//     definite, is bounded and used directly — no measurement needed.
//  2. A row child with a definite style width uses that width (bounded and
//     floored at its padding+border) as its basis, likewise with no
//     measurement.
//  3. The column analogue of (2) using style height.
//  4. Otherwise the child (or its measure callback, for a leaf) is
//     measured against the best available constraint for each axis, and
//     the resulting main-axis size becomes the basis.
func computeChildFlexBasis(parent, child *Node, mainAxis FlexDirection, parentWidth, parentHeight geom.Value, widthMode, heightMode MeasureMode, webFlexBasis bool) {
	cst := &child.style
	mainDim := geom.DimensionOf(mainAxis)

	resolvedFlexBasis := flexBasis(cst, webFlexBasis)
	isMainAxisRow := mainAxis.IsRow()
	parentMainSize := parentWidth
	if !isMainAxisRow {
		parentMainSize = parentHeight
	}
	parentMainMode := widthMode
	if !isMainAxisRow {
		parentMainMode = heightMode
	}

	if geom.IsDefined(resolvedFlexBasis) && geom.IsDefined(parentMainSize) {
		if child.layout.ComputedFlexBasisGeneration != currentGeneration {
			child.layout.ComputedFlexBasis = geom.MaxF64(resolvedFlexBasis, paddingAndBorderForAxis(cst, mainAxis))
			child.layout.ComputedFlexBasisGeneration = currentGeneration
		}
		return
	}
	_ = parentMainMode

	if isMainAxisRow && geom.IsDefined(cst.Dimensions[geom.DimensionWidth]) {
		child.layout.ComputedFlexBasis = geom.MaxF64(
			boundAxis(cst, FlexDirectionRow, cst.Dimensions[geom.DimensionWidth]),
			paddingAndBorderForAxis(cst, FlexDirectionRow))
		child.layout.ComputedFlexBasisGeneration = currentGeneration
		return
	}
	if !isMainAxisRow && geom.IsDefined(cst.Dimensions[geom.DimensionHeight]) {
		child.layout.ComputedFlexBasis = geom.MaxF64(
			boundAxis(cst, FlexDirectionColumn, cst.Dimensions[geom.DimensionHeight]),
			paddingAndBorderForAxis(cst, FlexDirectionColumn))
		child.layout.ComputedFlexBasisGeneration = currentGeneration
		return
	}

	// Full measurement fallback: build the best constraint pair we can for
	// each axis from whatever the parent has already resolved, then ask
	// the child (recursively, through the memoized dispatcher) or its
	// measure callback to report a size.
	width, height := geom.Undefined, geom.Undefined
	wMode, hMode := MeasureModeUndefined, MeasureModeUndefined

	// A stretched child's cross axis is pinned to the parent's Exactly size.
	childAlign := cst.AlignSelf
	if childAlign == AlignAuto {
		childAlign = parent.style.AlignItems
	}

	if geom.IsDefined(cst.Dimensions[geom.DimensionWidth]) {
		width = boundAxis(cst, FlexDirectionRow, cst.Dimensions[geom.DimensionWidth])
		wMode = MeasureModeExactly
	} else if !isMainAxisRow && childAlign == AlignStretch && geom.IsDefined(parentWidth) && widthMode == MeasureModeExactly && parent.style.Overflow != OverflowScroll {
		width = parentWidth - marginForAxis(cst, FlexDirectionRow)
		wMode = MeasureModeExactly
	}
	if geom.IsDefined(cst.Dimensions[geom.DimensionHeight]) {
		height = boundAxis(cst, FlexDirectionColumn, cst.Dimensions[geom.DimensionHeight])
		hMode = MeasureModeExactly
	} else if isMainAxisRow && childAlign == AlignStretch && geom.IsDefined(parentHeight) && heightMode == MeasureModeExactly && parent.style.Overflow != OverflowScroll {
		height = parentHeight - marginForAxis(cst, FlexDirectionColumn)
		hMode = MeasureModeExactly
	}

	if geom.IsDefined(cst.AspectRatio) {
		if isMainAxisRow && wMode == MeasureModeExactly {
			height = width / cst.AspectRatio
			hMode = MeasureModeExactly
		} else if !isMainAxisRow && hMode == MeasureModeExactly {
			width = height * cst.AspectRatio
			wMode = MeasureModeExactly
		}
	}

	if wMode == MeasureModeUndefined || hMode == MeasureModeUndefined {
		if child.measure == nil {
			if wMode == MeasureModeUndefined {
				width = parentWidth
				wMode = boolMode(geom.IsUndefined(parentWidth), MeasureModeUndefined, MeasureModeAtMost)
			}
			if hMode == MeasureModeUndefined {
				height = parentHeight
				hMode = boolMode(geom.IsUndefined(parentHeight), MeasureModeUndefined, MeasureModeAtMost)
			}
		}
	}

	constrainMaxSizeForMode(cst.MaxDimensions[geom.DimensionWidth], &wMode, &width)
	constrainMaxSizeForMode(cst.MaxDimensions[geom.DimensionHeight], &hMode, &height)

	measured := layoutInternal(child, width, height, child.layout.Direction, wMode, hMode, false, "flexBasis")

	basis := measured.Width()
	if !isMainAxisRow {
		basis = measured.Height()
	}
	child.layout.ComputedFlexBasis = geom.MaxF64(basis, paddingAndBorderForAxis(cst, mainAxis))
	child.layout.ComputedFlexBasisGeneration = currentGeneration
	_ = mainDim
}

func boolMode(undefined bool, whenTrue, whenFalse MeasureMode) MeasureMode {
	if undefined {
		return whenTrue
	}
	return whenFalse
}
