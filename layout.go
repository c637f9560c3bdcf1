package flex

import "github.com/flexkit/flex/internal/core/geom"

// flexLine is one wrapped row/column of relatively-positioned children,
// built by the line-packing step and consumed by the flex-resolution,
// justification and cross-axis alignment steps that follow it.
type flexLine struct {
	children []*Node

	itemsOnLine int

	mainDim  geom.Value // sum of each child's basis + margin, before flex resolution
	crossDim geom.Value

	totalFlexGrow               geom.Value
	totalFlexShrinkScaledFactor geom.Value

	remainingFreeSpace geom.Value
}

// layoutImpl is the main solver (C6): an eleven-step pipeline that turns
// a node's style and an available-space request into MeasuredDimensions
// for node and a resolved Position/Dimensions/LineIndex for every
// relatively- or absolutely-positioned child. It is only ever entered
// through the memoized dispatcher in cache.go.
func layoutImpl(node *Node, availableWidth, availableHeight geom.Value, parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode, performLayout bool) {
	st := &node.style
	layout := &node.layout

	// --- step 1: direction & axis resolution --------------------------------
	direction := resolveDirection(st, parentDirection)
	layout.Direction = direction

	mainAxis := geom.ResolveAxis(st.FlexDirection, direction)
	crossAxis := geom.CrossAxis(st.FlexDirection, direction)
	isMainAxisRow := mainAxis.IsRow()

	marginAxisRow := marginForAxis(st, FlexDirectionRow)
	marginAxisColumn := marginForAxis(st, FlexDirectionColumn)
	marginMain := marginAxisRow
	marginCross := marginAxisColumn
	if !isMainAxisRow {
		marginMain, marginCross = marginAxisColumn, marginAxisRow
	}

	// An explicit style dimension overrides the incoming measure request.
	if geom.IsDefined(st.Dimensions[geom.DimensionWidth]) {
		availableWidth = boundAxis(st, FlexDirectionRow, st.Dimensions[geom.DimensionWidth])
		widthMeasureMode = MeasureModeExactly
	}
	if geom.IsDefined(st.Dimensions[geom.DimensionHeight]) {
		availableHeight = boundAxis(st, FlexDirectionColumn, st.Dimensions[geom.DimensionHeight])
		heightMeasureMode = MeasureModeExactly
	}

	// --- fast path: measure callback leaf ------------------------------------
	if node.measure != nil {
		layoutWithMeasureFunc(node, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, marginAxisRow, marginAxisColumn)
		return
	}

	childCount := len(node.children)
	if childCount == 0 {
		w := boundAxis(st, FlexDirectionRow, resolveAvailable(availableWidth, widthMeasureMode, marginAxisRow))
		h := boundAxis(st, FlexDirectionColumn, resolveAvailable(availableHeight, heightMeasureMode, marginAxisColumn))
		layout.MeasuredDimensions[geom.DimensionWidth] = w
		layout.MeasuredDimensions[geom.DimensionHeight] = h
		return
	}

	// A measurement-only request that is Exactly along both axes already
	// fixes the container's own size, so the children are not laid out.
	if !performLayout && widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
		layout.MeasuredDimensions[geom.DimensionWidth] = boundAxis(st, FlexDirectionRow, availableWidth)
		layout.MeasuredDimensions[geom.DimensionHeight] = boundAxis(st, FlexDirectionColumn, availableHeight)
		return
	}

	paddingAndBorderRow := paddingAndBorderForAxis(st, FlexDirectionRow)
	paddingAndBorderColumn := paddingAndBorderForAxis(st, FlexDirectionColumn)
	paddingAndBorderMain := paddingAndBorderRow
	paddingAndBorderCross := paddingAndBorderColumn
	if !isMainAxisRow {
		paddingAndBorderMain, paddingAndBorderCross = paddingAndBorderColumn, paddingAndBorderRow
	}

	availableInnerWidth := innerAvailable(availableWidth, widthMeasureMode, marginAxisRow, paddingAndBorderRow)
	availableInnerHeight := innerAvailable(availableHeight, heightMeasureMode, marginAxisColumn, paddingAndBorderColumn)
	availableInnerMain := availableInnerWidth
	availableInnerCross := availableInnerHeight
	if !isMainAxisRow {
		availableInnerMain, availableInnerCross = availableInnerHeight, availableInnerWidth
	}

	// --- step 2: flex-basis pass --------------------------------------------
	for _, child := range node.children {
		if child.style.PositionType == PositionAbsolute {
			continue
		}
		computeChildFlexBasis(node, child, mainAxis, availableInnerWidth, availableInnerHeight, widthMeasureMode, heightMeasureMode, node.config.Experimental.WebFlexBasis)
	}

	// --- step 3: line packing -------------------------------------------------
	isNodeFlexWrap := st.FlexWrap == WrapWrap
	lines := buildLines(node, mainAxis, availableInnerMain, marginMain)

	// --- step 4 & 5: per-line flex resolution, justification, placement -----
	totalMainDim := geom.Value(0)
	totalCrossDim := geom.Value(0)
	lineCrossMode := crossMeasureMode(widthMeasureMode, heightMeasureMode, isMainAxisRow)

	for li := range lines {
		line := &lines[li]
		resolveFlexibleLengths(node, line, mainAxis, availableInnerMain)

		lineMainDim := geom.Value(0)
		for _, c := range line.children {
			lineMainDim += resolvedMainSize(c, mainAxis) + marginForAxis(&c.style, mainAxis)
		}

		mainAxisJustify(node, line, mainAxis, availableInnerMain, lineMainDim)

		// --- step 6: per-line cross-axis alignment (incl. stretch) ----------
		lineCrossDim := layoutLineChildren(node, line, mainAxis, crossAxis, availableInnerMain, availableInnerCross, lineCrossMode, isNodeFlexWrap, performLayout)

		line.crossDim = lineCrossDim
		if lineMainDim > totalMainDim {
			totalMainDim = lineMainDim
		}
		totalCrossDim += lineCrossDim
	}

	// --- step 7: multi-line content alignment (alignContent) ----------------
	// Always runs, even with a single line or no spare space: besides
	// distributing extra cross space per AlignContent, it is what stacks
	// each line's children at the right cross offset in the first place.
	crossDimUsed := totalCrossDim
	alignContent(node, lines, crossAxis, availableInnerCross, crossDimUsed)

	// --- step 8: final own dimensions ----------------------------------------
	finalMain := boundAxis(st, mainAxis, resolveAvailable(mainAvailable(availableWidth, availableHeight, isMainAxisRow), mainMeasureMode(widthMeasureMode, heightMeasureMode, isMainAxisRow), marginMain))
	if widthMeasureModeIsAuto(isMainAxisRow, widthMeasureMode, heightMeasureMode) {
		finalMain = boundAxis(st, mainAxis, totalMainDim+paddingAndBorderMain)
	}
	finalCross := boundAxis(st, crossAxis, resolveAvailable(crossAvailable(availableWidth, availableHeight, isMainAxisRow), crossMeasureMode(widthMeasureMode, heightMeasureMode, isMainAxisRow), marginCross))
	if crossMeasureModeIsAuto(isMainAxisRow, widthMeasureMode, heightMeasureMode) {
		finalCross = boundAxis(st, crossAxis, crossDimUsed+paddingAndBorderCross)
	}

	if isMainAxisRow {
		layout.MeasuredDimensions[geom.DimensionWidth] = finalMain
		layout.MeasuredDimensions[geom.DimensionHeight] = finalCross
	} else {
		layout.MeasuredDimensions[geom.DimensionWidth] = finalCross
		layout.MeasuredDimensions[geom.DimensionHeight] = finalMain
	}

	// --- step 9: stamp each child's line index --------------------------------
	for li := range lines {
		for _, c := range lines[li].children {
			c.layout.LineIndex = li
		}
	}

	// --- step 10: reverse-direction trailing positions -----------------------
	if mainAxis.IsReverse() || crossAxis.IsReverse() {
		flipReversedPositions(node, mainAxis, crossAxis)
	}

	// --- step 11: absolutely-positioned children -----------------------------
	layoutAbsoluteChildren(node, mainAxis, crossAxis, availableInnerWidth, availableInnerHeight, direction)
}

func resolveAvailable(size geom.Value, mode MeasureMode, margin geom.Value) geom.Value {
	if mode == MeasureModeExactly {
		return size
	}
	if geom.IsDefined(size) {
		return geom.MaxF64(0, size-margin)
	}
	return geom.Undefined
}

func innerAvailable(size geom.Value, mode MeasureMode, margin, paddingAndBorder geom.Value) geom.Value {
	if geom.IsUndefined(size) {
		return geom.Undefined
	}
	_ = mode
	return geom.MaxF64(0, size-margin-paddingAndBorder)
}

func mainAvailable(width, height geom.Value, isMainAxisRow bool) geom.Value {
	if isMainAxisRow {
		return width
	}
	return height
}

func crossAvailable(width, height geom.Value, isMainAxisRow bool) geom.Value {
	if isMainAxisRow {
		return height
	}
	return width
}

func mainMeasureMode(widthMode, heightMode MeasureMode, isMainAxisRow bool) MeasureMode {
	if isMainAxisRow {
		return widthMode
	}
	return heightMode
}

func crossMeasureMode(widthMode, heightMode MeasureMode, isMainAxisRow bool) MeasureMode {
	if isMainAxisRow {
		return heightMode
	}
	return widthMode
}

func widthMeasureModeIsAuto(isMainAxisRow bool, widthMode, heightMode MeasureMode) bool {
	return mainMeasureMode(widthMode, heightMode, isMainAxisRow) != MeasureModeExactly
}

func crossMeasureModeIsAuto(isMainAxisRow bool, widthMode, heightMode MeasureMode) bool {
	return crossMeasureMode(widthMode, heightMode, isMainAxisRow) != MeasureModeExactly
}

// resolvedMainSize reads back a child's size along axis from
// layout.MeasuredDimensions, which flex resolution has already written.
func resolvedMainSize(child *Node, axis FlexDirection) geom.Value {
	return child.layout.MeasuredDimensions[geom.DimensionOf(axis)]
}

// layoutWithMeasureFunc is the measure-callback fast path: it asks the
// host-supplied MeasureFunc for a size under the tightest constraint the
// incoming request and the node's own min/max style allow, then bounds
// and records the answer directly, skipping the rest of the pipeline.
func layoutWithMeasureFunc(node *Node, availableWidth, availableHeight geom.Value, widthMode, heightMode MeasureMode, marginAxisRow, marginAxisColumn geom.Value) {
	st := &node.style
	innerWidth := resolveAvailable(availableWidth, widthMode, marginAxisRow)
	innerHeight := resolveAvailable(availableHeight, heightMode, marginAxisColumn)

	constrainMaxSizeForMode(st.MaxDimensions[geom.DimensionWidth], &widthMode, &innerWidth)
	constrainMaxSizeForMode(st.MaxDimensions[geom.DimensionHeight], &heightMode, &innerHeight)

	size := node.measure(node, innerWidth, widthMode, innerHeight, heightMode)
	if size == nil {
		size = geom.NewSize(0, 0)
	}

	node.layout.MeasuredDimensions[geom.DimensionWidth] = boundAxis(st, FlexDirectionRow,
		sizeOrRequested(widthMode, innerWidth, size.Width())+paddingAndBorderForAxis(st, FlexDirectionRow))
	node.layout.MeasuredDimensions[geom.DimensionHeight] = boundAxis(st, FlexDirectionColumn,
		sizeOrRequested(heightMode, innerHeight, size.Height())+paddingAndBorderForAxis(st, FlexDirectionColumn))
}

func sizeOrRequested(mode MeasureMode, requested, measured geom.Value) geom.Value {
	if mode == MeasureModeExactly {
		return requested
	}
	return measured
}

// buildLines packs node's relative children into flexLines: a new line
// starts whenever the running main-axis total (basis + margin) would
// exceed availableInnerMain and FlexWrap is Wrap; NoWrap always yields a
// single line regardless of overflow.
func buildLines(node *Node, mainAxis FlexDirection, availableInnerMain, marginMain geom.Value) []flexLine {
	var lines []flexLine
	cur := flexLine{}
	runningMain := geom.Value(0)

	canWrap := node.style.FlexWrap == WrapWrap

	for _, child := range node.children {
		if child.style.PositionType == PositionAbsolute {
			continue
		}
		childMain := child.layout.ComputedFlexBasis + marginForAxis(&child.style, mainAxis)

		if canWrap && len(cur.children) > 0 && geom.IsDefined(availableInnerMain) &&
			runningMain+childMain > availableInnerMain {
			lines = append(lines, cur)
			cur = flexLine{}
			runningMain = 0
		}

		cur.children = append(cur.children, child)
		cur.itemsOnLine++
		runningMain += childMain
		cur.mainDim = runningMain
		if isFlex(&child.style) {
			cur.totalFlexGrow += flexGrow(&child.style)
			cur.totalFlexShrinkScaledFactor += -flexShrink(&child.style) * child.layout.ComputedFlexBasis
		}
	}
	lines = append(lines, cur)
	_ = marginMain
	return lines
}

// resolveFlexibleLengths is the literal two-pass grow/shrink distribution
// with min/max freezing (spec.md step 5): pass 1 finds the items whose
// min/max constraints trigger under the naive even distribution, freezes
// them at the violated bound, and excludes their share from the totals
// and remaining space via a once-applied delta; pass 2 then distributes
// the (now adjusted) remaining space among the still-flexible items and
// re-derives the frozen items' sizes from the same adjusted totals, so
// both passes agree on their size. This deliberately does not iterate to
// a fixed point — a third sibling's min/max can still end up sharing in
// the first sibling's freed space rather than converging further, which
// is the documented tradeoff of this algorithm.
func resolveFlexibleLengths(node *Node, line *flexLine, mainAxis FlexDirection, availableInnerMain geom.Value) {
	sizeConsumed := geom.Value(0)
	totalFlexGrow := geom.Value(0)
	totalFlexShrinkScaled := geom.Value(0)
	for _, c := range line.children {
		sizeConsumed += c.layout.ComputedFlexBasis + marginForAxis(&c.style, mainAxis)
		if isFlex(&c.style) {
			totalFlexGrow += flexGrow(&c.style)
			totalFlexShrinkScaled += -flexShrink(&c.style) * c.layout.ComputedFlexBasis
		}
	}

	var remainingFreeSpace geom.Value
	switch {
	case geom.IsDefined(availableInnerMain):
		remainingFreeSpace = availableInnerMain - sizeConsumed
	case sizeConsumed < 0:
		remainingFreeSpace = -sizeConsumed
	default:
		remainingFreeSpace = 0
	}
	originalRemainingFreeSpace := remainingFreeSpace

	// Pass 1: detect the flex items whose min/max constraints trigger.
	deltaFreeSpace := geom.Value(0)
	deltaFlexShrinkScaled := geom.Value(0)
	deltaFlexGrow := geom.Value(0)
	for _, c := range line.children {
		basis := c.layout.ComputedFlexBasis
		if remainingFreeSpace < 0 {
			scaled := -flexShrink(&c.style) * basis
			if scaled != 0 {
				base := basis + remainingFreeSpace/totalFlexShrinkScaled*scaled
				bound := boundAxis(&c.style, mainAxis, base)
				if base != bound {
					deltaFreeSpace -= bound - basis
					deltaFlexShrinkScaled -= scaled
				}
			}
		} else if remainingFreeSpace > 0 {
			grow := flexGrow(&c.style)
			if grow != 0 {
				base := basis + remainingFreeSpace/totalFlexGrow*grow
				bound := boundAxis(&c.style, mainAxis, base)
				if base != bound {
					deltaFreeSpace -= bound - basis
					deltaFlexGrow -= grow
				}
			}
		}
	}
	totalFlexShrinkScaled += deltaFlexShrinkScaled
	totalFlexGrow += deltaFlexGrow
	remainingFreeSpace += deltaFreeSpace

	// Pass 2: resolve each child's size against the adjusted totals.
	deltaFreeSpace = 0
	for _, c := range line.children {
		basis := c.layout.ComputedFlexBasis
		updated := basis
		if remainingFreeSpace < 0 {
			scaled := -flexShrink(&c.style) * basis
			if scaled != 0 {
				var childSize geom.Value
				if totalFlexShrinkScaled == 0 {
					childSize = basis + scaled
				} else {
					childSize = basis + remainingFreeSpace/totalFlexShrinkScaled*scaled
				}
				updated = boundAxis(&c.style, mainAxis, childSize)
			}
		} else if remainingFreeSpace > 0 {
			grow := flexGrow(&c.style)
			if grow != 0 {
				updated = boundAxis(&c.style, mainAxis, basis+remainingFreeSpace/totalFlexGrow*grow)
			}
		}
		deltaFreeSpace -= updated - basis

		dim := geom.DimensionOf(mainAxis)
		c.layout.MeasuredDimensions[dim] = boundAxis(&c.style, mainAxis, updated)
	}

	remaining := originalRemainingFreeSpace + deltaFreeSpace
	line.remainingFreeSpace = remaining
}
