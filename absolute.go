package flex

import "github.com/flexkit/flex/internal/core/geom"

// layoutAbsoluteChildren resolves every absolutely-positioned child of
// node (C9): each is measured against the node's own already-final
// border-box interior, independent of the relatively-positioned flex flow
// computed by the rest of the pipeline, then placed using whichever of
// its leading/trailing inset pairs are defined, falling back to the
// leading edge of the containing box when neither is.
func layoutAbsoluteChildren(node *Node, mainAxis, crossAxis FlexDirection, availableInnerWidth, availableInnerHeight geom.Value, direction Direction) {
	containingWidth := node.layout.MeasuredDimensions[geom.DimensionWidth] - leadingBorder(&node.style, FlexDirectionRow) - trailingBorder(&node.style, FlexDirectionRow)
	containingHeight := node.layout.MeasuredDimensions[geom.DimensionHeight] - leadingBorder(&node.style, FlexDirectionColumn) - trailingBorder(&node.style, FlexDirectionColumn)

	for _, child := range node.children {
		if child.style.PositionType != PositionAbsolute {
			continue
		}
		layoutAbsoluteChild(node, child, containingWidth, containingHeight, direction)
	}
	_ = mainAxis
	_ = crossAxis
	_ = availableInnerWidth
	_ = availableInnerHeight
}

func layoutAbsoluteChild(parent, child *Node, containingWidth, containingHeight geom.Value, direction Direction) {
	cst := &child.style

	width, height := geom.Undefined, geom.Undefined
	widthMode, heightMode := MeasureModeUndefined, MeasureModeUndefined

	if geom.IsDefined(cst.Dimensions[geom.DimensionWidth]) {
		width = boundAxis(cst, FlexDirectionRow, cst.Dimensions[geom.DimensionWidth])
		widthMode = MeasureModeExactly
	} else if isLeadingPositionDefined(cst, FlexDirectionRow) && isTrailingPositionDefined(cst, FlexDirectionRow) && geom.IsDefined(containingWidth) {
		width = geom.MaxF64(0, containingWidth-leadingPosition(cst, FlexDirectionRow)-trailingPosition(cst, FlexDirectionRow)-marginForAxis(cst, FlexDirectionRow))
		widthMode = MeasureModeExactly
	}
	if geom.IsDefined(cst.Dimensions[geom.DimensionHeight]) {
		height = boundAxis(cst, FlexDirectionColumn, cst.Dimensions[geom.DimensionHeight])
		heightMode = MeasureModeExactly
	} else if isLeadingPositionDefined(cst, FlexDirectionColumn) && isTrailingPositionDefined(cst, FlexDirectionColumn) && geom.IsDefined(containingHeight) {
		height = geom.MaxF64(0, containingHeight-leadingPosition(cst, FlexDirectionColumn)-trailingPosition(cst, FlexDirectionColumn)-marginForAxis(cst, FlexDirectionColumn))
		heightMode = MeasureModeExactly
	}

	if widthMode == MeasureModeUndefined || heightMode == MeasureModeUndefined {
		layoutInternal(child, width, height, direction, widthMode, heightMode, false, "abs-measure")
		if widthMode == MeasureModeUndefined {
			width = child.layout.MeasuredDimensions[geom.DimensionWidth]
			widthMode = MeasureModeExactly
		}
		if heightMode == MeasureModeUndefined {
			height = child.layout.MeasuredDimensions[geom.DimensionHeight]
			heightMode = MeasureModeExactly
		}
	}

	layoutInternal(child, width, height, direction, widthMode, heightMode, true, "abs-layout")

	placeAbsoluteChild(parent, child, containingWidth, containingHeight, FlexDirectionRow, geom.EdgeLeft, geom.EdgeRight)
	placeAbsoluteChild(parent, child, containingWidth, containingHeight, FlexDirectionColumn, geom.EdgeTop, geom.EdgeBottom)
}

// placeAbsoluteChild resolves one axis of an absolute child's position:
// an explicit leading inset wins outright; otherwise a trailing inset is
// measured back from the containing box's far edge; with neither set the
// child sits flush against the containing box's own leading edge.
func placeAbsoluteChild(parent, child *Node, containingWidth, containingHeight geom.Value, axis FlexDirection, leadingPhysical, trailingPhysical geom.Edge) {
	cst := &child.style
	dim := geom.DimensionOf(axis)
	containing := containingWidth
	if axis == FlexDirectionColumn {
		containing = containingHeight
	}

	leadingBorderParent := leadingBorder(&parent.style, axis)

	if isLeadingPositionDefined(cst, axis) {
		child.layout.Position[leadingPhysical] = leadingBorderParent + leadingPosition(cst, axis) + leadingMargin(cst, axis)
		return
	}
	if isTrailingPositionDefined(cst, axis) && geom.IsDefined(containing) {
		child.layout.Position[trailingPhysical] = trailingPosition(cst, axis) + trailingMargin(cst, axis)
		child.layout.Position[leadingPhysical] = leadingBorderParent + containing - trailingPosition(cst, axis) - child.layout.MeasuredDimensions[dim] - trailingMargin(cst, axis)
		return
	}
	child.layout.Position[leadingPhysical] = leadingBorderParent + leadingMargin(cst, axis)
}
