package flex

import "github.com/flexkit/flex/internal/core/geom"

// mainAxisJustify places every child on line along mainAxis according to
// the container's Justify, then advances a running cursor from the
// container's own leading padding+border through each child's leading
// margin, size, trailing margin and any inter-child gap.
func mainAxisJustify(node *Node, line *flexLine, mainAxis FlexDirection, availableInnerMain, lineMainDim geom.Value) {
	st := &node.style
	leadingEdge := geom.LeadingEdge(mainAxis)

	remaining := geom.Value(0)
	if geom.IsDefined(availableInnerMain) {
		remaining = geom.MaxF64(0, availableInnerMain-lineMainDim)
	}

	leadingOffset := geom.Value(0)
	between := geom.Value(0)
	n := len(line.children)

	switch st.Justify {
	case JustifyCenter:
		leadingOffset = remaining / 2
	case JustifyFlexEnd:
		leadingOffset = remaining
	case JustifySpaceBetween:
		if n > 1 {
			between = remaining / geom.Value(n-1)
		}
	case JustifySpaceAround:
		if n > 0 {
			between = remaining / geom.Value(n)
			leadingOffset = between / 2
		}
	}

	cur := leadingPaddingAndBorder(st, mainAxis) + leadingOffset
	for _, c := range line.children {
		cst := &c.style
		cur += leadingMargin(cst, mainAxis)
		c.layout.Position[leadingEdge] = cur
		cur += resolvedMainSize(c, mainAxis) + trailingMargin(cst, mainAxis) + between
	}
}

// crossModeFor picks the measure mode a child on the cross axis is given
// when its own style leaves the dimension unresolved: AtMost against the
// container's available cross space, or Undefined if that space is
// itself unknown.
func crossModeFor(available geom.Value) MeasureMode {
	if geom.IsDefined(available) {
		return MeasureModeAtMost
	}
	return MeasureModeUndefined
}

// layoutLineChildren resolves each child's cross-axis size (stretching to
// fill the *line's own* cross extent when AlignStretch applies and the
// child leaves its own cross dimension unset), recursively lays the child
// out with its main size now pinned to Exactly, and positions it within
// the line per AlignItems/AlignSelf. It returns the line's resulting
// cross size (spec.md step 6's "containerCrossAxis for the line").
//
// When the line's cross extent is already known up front — a single,
// unwrapped line under an Exactly cross mode, where it simply equals the
// container's available cross space — stretch targets are resolved in
// one pass. Otherwise (wrapping, or an Undefined/AtMost cross mode) the
// line's own extent isn't known until every child's natural size is in,
// so stretch candidates are measured naturally first and only resized to
// the line's resulting crossDim in a second pass; sizing them straight to
// the container's full cross budget would stretch every wrapped line (or
// an auto-cross-axis container's only line) to the same size regardless
// of how tall that particular line's content actually is.
func layoutLineChildren(node *Node, line *flexLine, mainAxis, crossAxis FlexDirection, availableInnerMain, availableInnerCross geom.Value, crossMeasureMode MeasureMode, isNodeFlexWrap, performLayout bool) geom.Value {
	isMainRow := mainAxis.IsRow()
	mainDim := geom.DimensionOf(mainAxis)
	crossDim := geom.DimensionOf(crossAxis)

	align := func(c *Node) Align {
		a := c.style.AlignSelf
		if a == AlignAuto {
			a = node.style.AlignItems
		}
		return a
	}

	layChild := func(c *Node, crossSize geom.Value, crossMode MeasureMode, deferFinalize bool) {
		var width, height geom.Value
		var widthMode, heightMode MeasureMode
		mainSize := c.layout.MeasuredDimensions[mainDim]
		if isMainRow {
			width, widthMode = mainSize, MeasureModeExactly
			height, heightMode = crossSize, crossMode
		} else {
			height, heightMode = mainSize, MeasureModeExactly
			width, widthMode = crossSize, crossMode
		}
		layoutInternal(c, width, height, node.layout.Direction, widthMode, heightMode, performLayout && !deferFinalize, "stretch")
	}

	needsNaturalPass := isNodeFlexWrap || crossMeasureMode != MeasureModeExactly

	maxLineCross := geom.Value(0)
	var stretchCandidates []*Node

	for _, c := range line.children {
		cst := &c.style
		a := align(c)
		crossStyleSize := cst.Dimensions[crossDim]

		switch {
		case geom.IsDefined(crossStyleSize):
			sized := boundAxis(cst, crossAxis, crossStyleSize)
			layChild(c, sized, MeasureModeExactly, false)
		case a == AlignStretch && !needsNaturalPass:
			sized := boundAxis(cst, crossAxis, availableInnerCross-marginForAxis(cst, crossAxis))
			layChild(c, sized, MeasureModeExactly, false)
		case a == AlignStretch:
			layChild(c, availableInnerCross, crossModeFor(availableInnerCross), true)
			stretchCandidates = append(stretchCandidates, c)
		default:
			layChild(c, availableInnerCross, crossModeFor(availableInnerCross), false)
		}

		childCross := c.layout.MeasuredDimensions[crossDim] + marginForAxis(cst, crossAxis)
		if childCross > maxLineCross {
			maxLineCross = childCross
		}
	}

	lineCrossDim := maxLineCross
	switch {
	case !needsNaturalPass:
		lineCrossDim = availableInnerCross
	case geom.IsDefined(availableInnerCross) && crossMeasureMode == MeasureModeAtMost && lineCrossDim > availableInnerCross:
		lineCrossDim = boundAxisWithinMinAndMax(&node.style, crossAxis, availableInnerCross)
	default:
		lineCrossDim = boundAxisWithinMinAndMax(&node.style, crossAxis, lineCrossDim)
	}

	for _, c := range stretchCandidates {
		cst := &c.style
		sized := boundAxis(cst, crossAxis, lineCrossDim-marginForAxis(cst, crossAxis))
		layChild(c, sized, MeasureModeExactly, false)

		childCross := c.layout.MeasuredDimensions[crossDim] + marginForAxis(cst, crossAxis)
		if childCross > maxLineCross {
			maxLineCross = childCross
		}
	}

	leadingCrossEdge := geom.LeadingEdge(crossAxis)
	for _, c := range line.children {
		cst := &c.style
		childCross := c.layout.MeasuredDimensions[crossDim] + marginForAxis(cst, crossAxis)
		var pos geom.Value
		switch align(c) {
		case AlignFlexEnd:
			pos = lineCrossDim - childCross
		case AlignCenter:
			pos = (lineCrossDim - childCross) / 2
		default:
			pos = 0
		}
		c.layout.Position[leadingCrossEdge] = pos + leadingMargin(cst, crossAxis)
	}

	return lineCrossDim
}

// alignContent stacks each flexLine along the cross axis and, once every
// line's base position is known, distributes any leftover cross space per
// the container's AlignContent (Stretch enlarges each line, Center/FlexEnd
// shift the whole stack, FlexStart/Auto leave it flush to the start).
func alignContent(node *Node, lines []flexLine, crossAxis FlexDirection, availableInnerCross, crossDimUsed geom.Value) {
	st := &node.style
	remaining := geom.Value(0)
	if geom.IsDefined(availableInnerCross) {
		remaining = geom.MaxF64(0, availableInnerCross-crossDimUsed)
	}
	n := len(lines)

	leadingOffset := geom.Value(0)
	switch st.AlignContent {
	case AlignCenter:
		leadingOffset = remaining / 2
	case AlignFlexEnd:
		leadingOffset = remaining
	case AlignStretch:
		if n > 0 {
			extra := remaining / geom.Value(n)
			for i := range lines {
				lines[i].crossDim += extra
			}
		}
	}

	leadingCrossEdge := geom.LeadingEdge(crossAxis)
	cur := leadingPaddingAndBorder(st, crossAxis) + leadingOffset
	for i := range lines {
		line := &lines[i]
		for _, c := range line.children {
			c.layout.Position[leadingCrossEdge] += cur
		}
		cur += line.crossDim
	}
}

// flipReversedPositions fills in the physical edge opposite the one
// mainAxisJustify/layoutLineChildren wrote to, for whichever axis is
// reversed: those steps always accumulate from a flex direction's
// "leading" edge, which for *Reverse directions is the physical trailing
// edge (LeadingEdge(RowReverse) == EdgeRight), so the physical leading
// edge (Left/Top) is still unset until this runs.
func flipReversedPositions(node *Node, mainAxis, crossAxis FlexDirection) {
	mainDim := geom.DimensionOf(mainAxis)
	crossDim := geom.DimensionOf(crossAxis)
	containerMain := node.layout.MeasuredDimensions[mainDim]
	containerCross := node.layout.MeasuredDimensions[crossDim]

	for _, c := range node.children {
		if c.style.PositionType == PositionAbsolute {
			continue
		}
		if mainAxis.IsReverse() {
			stored := c.layout.Position[geom.LeadingEdge(mainAxis)]
			c.layout.Position[geom.TrailingEdge(mainAxis)] = containerMain - stored - c.layout.MeasuredDimensions[mainDim]
		}
		if crossAxis.IsReverse() {
			stored := c.layout.Position[geom.LeadingEdge(crossAxis)]
			c.layout.Position[geom.TrailingEdge(crossAxis)] = containerCross - stored - c.layout.MeasuredDimensions[crossDim]
		}
	}
}
