package flex

import "github.com/flexkit/flex/internal/core/geom"

// currentGeneration is bumped once per CalculateLayout call (C10). A node's
// ComputedFlexBasisGeneration records the generation its basis was computed
// in, so a basis from a prior pass is recomputed rather than reused; the
// cached measurements themselves carry no generation.
var currentGeneration uint64

// axisCompatible implements the four-rule cache-compatibility test (C8)
// for a single axis: is a previously computed (lastSize, lastMode) ->
// lastComputedSize measurement still valid for a new (size, mode)
// request?
//
//  1. identical request: same mode, same size.
//  2. the new request is Exactly the size the old pass actually computed
//     — regardless of what the old request's mode/size were.
//  3. the old request was AtMost-Undefined (no upper bound) and the new
//     AtMost bound is no tighter than what was already computed.
//  4. both requests are AtMost, the new bound is tighter than the old
//     one, but not tighter than what the old pass actually computed —
//     the old answer still satisfies the new, stricter ceiling.
func axisCompatible(mode MeasureMode, size geom.Value, lastMode MeasureMode, lastSize, lastComputedSize geom.Value) bool {
	if mode == lastMode && geom.ApproxEq(size, lastSize) {
		return true
	}
	if mode == MeasureModeExactly && geom.ApproxEq(size, lastComputedSize) {
		return true
	}
	if mode == MeasureModeAtMost && lastMode == MeasureModeUndefined &&
		(size >= lastComputedSize || geom.ApproxEq(size, lastComputedSize)) {
		return true
	}
	if mode == MeasureModeAtMost && lastMode == MeasureModeAtMost &&
		geom.IsDefined(lastSize) && geom.IsDefined(size) && geom.IsDefined(lastComputedSize) &&
		lastSize > size && (lastComputedSize <= size || geom.ApproxEq(size, lastComputedSize)) {
		return true
	}
	return false
}

// compatibleMeasurement reports whether cm can stand in for a fresh
// measurement requested at (width, height, widthMode, heightMode).
func compatibleMeasurement(cm *cachedMeasurement, width, height geom.Value, widthMode, heightMode MeasureMode) bool {
	if !cm.valid {
		return false
	}
	return axisCompatible(widthMode, width, cm.widthMode, cm.availableWidth, cm.computedWidth) &&
		axisCompatible(heightMode, height, cm.heightMode, cm.availableHeight, cm.computedHeight)
}

// layoutInternal is the memoized dispatcher (C7) every recursive layout
// call goes through, including the public CalculateLayout entry point. It
// decides whether node's cache already answers the request; on a miss it
// runs the real algorithm (layoutImpl, C6) and records the answer before
// returning.
func layoutInternal(node *Node, availableWidth, availableHeight geom.Value, parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode, performLayout bool, reason string) *geom.Size {
	layout := &node.layout
	layout.HasNewLayout = false

	needToVisit := layout.IsDirty || layout.LastParentDirection != parentDirection

	var hit *cachedMeasurement
	if !needToVisit {
		if performLayout && layout.cachedLayout.valid &&
			compatibleMeasurement(&layout.cachedLayout, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode) {
			hit = &layout.cachedLayout
		} else if !performLayout {
			for i := range layout.measurements {
				m := &layout.measurements[i]
				if compatibleMeasurement(m, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode) {
					hit = m
					break
				}
			}
		}
	}

	if hit != nil {
		layout.MeasuredDimensions[geom.DimensionWidth] = hit.computedWidth
		layout.MeasuredDimensions[geom.DimensionHeight] = hit.computedHeight
		if node.config != nil {
			node.config.logf(LogVerbose, "cache hit %q on node (w=%v h=%v)", reason, hit.computedWidth, hit.computedHeight)
		}
		return geom.NewSize(hit.computedWidth, hit.computedHeight)
	}

	layoutImpl(node, availableWidth, availableHeight, parentDirection, widthMeasureMode, heightMeasureMode, performLayout)

	layout.LastParentDirection = parentDirection

	measured := cachedMeasurement{
		valid:           true,
		availableWidth:  availableWidth,
		availableHeight: availableHeight,
		widthMode:       widthMeasureMode,
		heightMode:      heightMeasureMode,
		computedWidth:   layout.MeasuredDimensions[geom.DimensionWidth],
		computedHeight:  layout.MeasuredDimensions[geom.DimensionHeight],
	}

	if performLayout {
		layout.cachedLayout = measured
		layout.Dimensions = layout.MeasuredDimensions
		layout.HasNewLayout = true
	} else {
		idx := layout.nextCachedMeasurementsIndex
		if idx == measurementRingSize {
			if node.config != nil {
				node.config.logf(LogDebug, "measurement cache overflow on node, evicting slot 0")
			}
			idx = 0
		}
		layout.measurements[idx] = measured
		layout.nextCachedMeasurementsIndex = idx + 1
	}

	layout.GenerationCount = currentGeneration
	layout.IsDirty = false

	return geom.NewSize(layout.MeasuredDimensions[geom.DimensionWidth], layout.MeasuredDimensions[geom.DimensionHeight])
}
