package flex

import "github.com/flexkit/flex/internal/core/geom"

// Align controls cross-axis alignment, either of items within a line
// (AlignItems), of an individual item overriding its container
// (AlignSelf), or of whole lines within the container (AlignContent).
type Align int

const (
	AlignAuto      Align = iota // valid only on AlignSelf: "use the container's AlignItems"
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
)

// Justify controls how free space is distributed along the main axis.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// PositionType selects whether a node participates in normal flex flow.
type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Wrap selects whether a container breaks overflowing children onto new lines.
type Wrap int

const (
	WrapNoWrap Wrap = iota
	WrapWrap
)

// Overflow affects how a container's own available size caps an
// indefinite child during flex-basis measurement (§4.5).
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// MeasureMode is the three-valued constraint passed to a measure call:
// the classic max-content / fill-available / fit-content triple.
type MeasureMode int

const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeExactly
	MeasureModeAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureModeExactly:
		return "Exactly"
	case MeasureModeAtMost:
		return "AtMost"
	default:
		return "Undefined"
	}
}

// Style is a node's read-only input to layout. All numeric fields default
// to geom.Undefined except where noted; a layout pass never mutates a
// Style, only the node's Layout output.
type Style struct {
	Direction    Direction
	FlexDirection FlexDirection
	Justify      Justify
	AlignContent Align
	AlignItems   Align
	AlignSelf    Align // AlignAuto defers to the parent's AlignItems
	PositionType PositionType
	FlexWrap     Wrap
	Overflow     Overflow

	Flex       geom.Value // legacy shorthand, see FlexGrow/FlexShrink/FlexBasis below
	FlexGrow   geom.Value
	FlexShrink geom.Value
	FlexBasis  geom.Value
	AspectRatio geom.Value // width/height, undefined disables the aspect-ratio short-circuit

	Margin   [geom.EdgeCount]geom.Value
	Position [geom.EdgeCount]geom.Value
	Padding  [geom.EdgeCount]geom.Value
	Border   [geom.EdgeCount]geom.Value

	Dimensions    [2]geom.Value // indexed by Dimension
	MinDimensions [2]geom.Value
	MaxDimensions [2]geom.Value
}

// FlexDirection and Direction are aliases of the geom package's axis
// vocabulary so style.go and the main solver share one FlexDirection type
// end to end; the other style enums are defined in this file.
type (
	FlexDirection = geom.FlexDirection
	Direction     = geom.Direction
)

const (
	FlexDirectionColumn        = geom.FlexDirectionColumn
	FlexDirectionColumnReverse = geom.FlexDirectionColumnReverse
	FlexDirectionRow           = geom.FlexDirectionRow
	FlexDirectionRowReverse    = geom.FlexDirectionRowReverse

	DirectionInherit = geom.DirectionInherit
	DirectionLTR     = geom.DirectionLTR
	DirectionRTL     = geom.DirectionRTL
)

// NewStyle returns a Style with every field at its spec-mandated default:
// Stretch alignItems, FlexStart alignContent, Inherit direction, Column
// flexDirection, Visible overflow, and geom.Undefined everywhere else.
func NewStyle() Style {
	s := Style{
		AlignItems:   AlignStretch,
		AlignContent: AlignFlexStart,
		AlignSelf:    AlignAuto,
		Direction:    DirectionInherit,
		FlexDirection: FlexDirectionColumn,
		Overflow:     OverflowVisible,
		Flex:         geom.Undefined,
		FlexGrow:     geom.Undefined,
		FlexShrink:   geom.Undefined,
		FlexBasis:    geom.Undefined,
		AspectRatio:  geom.Undefined,
	}
	for i := range s.Margin {
		s.Margin[i] = geom.Undefined
		s.Position[i] = geom.Undefined
		s.Padding[i] = geom.Undefined
		s.Border[i] = geom.Undefined
	}
	s.Dimensions = [2]geom.Value{geom.Undefined, geom.Undefined}
	s.MinDimensions = [2]geom.Value{geom.Undefined, geom.Undefined}
	s.MaxDimensions = [2]geom.Value{geom.Undefined, geom.Undefined}
	return s
}

// --- §4.3 style accessors -------------------------------------------------

// leadingMargin returns the resolved leading margin along axis, defaulting
// to 0. Row axes honor an explicit Start override ahead of the physical edge.
func leadingMargin(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := st.Margin[geom.EdgeStart]; geom.IsDefined(v) {
			return v
		}
	}
	return geom.ComputedEdgeValue(st.Margin, geom.LeadingEdge(axis), 0)
}

// trailingMargin is the trailing counterpart of leadingMargin.
func trailingMargin(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := st.Margin[geom.EdgeEnd]; geom.IsDefined(v) {
			return v
		}
	}
	return geom.ComputedEdgeValue(st.Margin, geom.TrailingEdge(axis), 0)
}

// marginForAxis sums the leading and trailing margin along axis. Undefined
// contributes 0: margin arithmetic never blocks layout the way a missing
// size does.
func marginForAxis(st *Style, axis FlexDirection) geom.Value {
	return definedOr0(leadingMargin(st, axis)) + definedOr0(trailingMargin(st, axis))
}

func leadingPadding(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := geom.ComputedEdgeValueNonNegative(st.Padding, geom.EdgeStart, geom.Undefined); geom.IsDefined(v) {
			return v
		}
	}
	v := geom.ComputedEdgeValueNonNegative(st.Padding, geom.LeadingEdge(axis), 0)
	return geom.MaxF64(0, v)
}

func trailingPadding(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := geom.ComputedEdgeValueNonNegative(st.Padding, geom.EdgeEnd, geom.Undefined); geom.IsDefined(v) {
			return v
		}
	}
	v := geom.ComputedEdgeValueNonNegative(st.Padding, geom.TrailingEdge(axis), 0)
	return geom.MaxF64(0, v)
}

func leadingBorder(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := geom.ComputedEdgeValueNonNegative(st.Border, geom.EdgeStart, geom.Undefined); geom.IsDefined(v) {
			return v
		}
	}
	v := geom.ComputedEdgeValueNonNegative(st.Border, geom.LeadingEdge(axis), 0)
	return geom.MaxF64(0, v)
}

func trailingBorder(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := geom.ComputedEdgeValueNonNegative(st.Border, geom.EdgeEnd, geom.Undefined); geom.IsDefined(v) {
			return v
		}
	}
	v := geom.ComputedEdgeValueNonNegative(st.Border, geom.TrailingEdge(axis), 0)
	return geom.MaxF64(0, v)
}

func leadingPaddingAndBorder(st *Style, axis FlexDirection) geom.Value {
	return leadingPadding(st, axis) + leadingBorder(st, axis)
}

func trailingPaddingAndBorder(st *Style, axis FlexDirection) geom.Value {
	return trailingPadding(st, axis) + trailingBorder(st, axis)
}

func paddingAndBorderForAxis(st *Style, axis FlexDirection) geom.Value {
	return leadingPaddingAndBorder(st, axis) + trailingPaddingAndBorder(st, axis)
}

// leadingPosition/trailingPosition read the "position" (inset) edges used
// by relative nodes (step 3's initial placement) and absolute children (C9).
func leadingPosition(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := geom.ComputedEdgeValue(st.Position, geom.EdgeStart, geom.Undefined); geom.IsDefined(v) {
			return v
		}
	}
	return geom.ComputedEdgeValue(st.Position, geom.LeadingEdge(axis), geom.Undefined)
}

func trailingPosition(st *Style, axis FlexDirection) geom.Value {
	if axis.IsRow() {
		if v := geom.ComputedEdgeValue(st.Position, geom.EdgeEnd, geom.Undefined); geom.IsDefined(v) {
			return v
		}
	}
	return geom.ComputedEdgeValue(st.Position, geom.TrailingEdge(axis), geom.Undefined)
}

func isLeadingPositionDefined(st *Style, axis FlexDirection) bool {
	return geom.IsDefined(leadingPosition(st, axis))
}

func isTrailingPositionDefined(st *Style, axis FlexDirection) bool {
	return geom.IsDefined(trailingPosition(st, axis))
}

// flexGrow, flexShrink and flexBasis implement the `flex` shorthand's
// back-compat mapping onto the longhand properties (§4.3).
func flexGrow(st *Style) geom.Value {
	if geom.IsDefined(st.FlexGrow) {
		return st.FlexGrow
	}
	if geom.IsDefined(st.Flex) && st.Flex > 0 {
		return st.Flex
	}
	return 0
}

func flexShrink(st *Style) geom.Value {
	if geom.IsDefined(st.FlexShrink) {
		return st.FlexShrink
	}
	if geom.IsDefined(st.Flex) && st.Flex < 0 {
		return -st.Flex
	}
	return 0
}

// flexBasis implements flexBasis resolution. When webFlexBasis is true
// (Config.Experimental.WebFlexBasis), a positive `flex` without an
// explicit basis means "auto" (Undefined, i.e. content-sized) instead of
// 0 — see SPEC_FULL's "Supplemented features" / DESIGN.md open question 3.
func flexBasis(st *Style, webFlexBasis bool) geom.Value {
	if geom.IsDefined(st.FlexBasis) {
		return st.FlexBasis
	}
	if geom.IsDefined(st.Flex) && st.Flex > 0 {
		if webFlexBasis {
			return geom.Undefined
		}
		return 0
	}
	return geom.Undefined
}

// isFlex reports whether a relatively-positioned node participates in
// flex grow/shrink distribution at all.
func isFlex(st *Style) bool {
	return st.PositionType == PositionRelative && (flexGrow(st) != 0 || flexShrink(st) != 0)
}

// resolveDirection resolves Inherit against the parent's already-resolved
// direction, falling back to LTR at the root.
func resolveDirection(st *Style, parentDirection Direction) Direction {
	if st.Direction == DirectionInherit {
		if parentDirection > DirectionInherit {
			return parentDirection
		}
		return DirectionLTR
	}
	return st.Direction
}

func definedOr0(v geom.Value) geom.Value {
	if geom.IsUndefined(v) {
		return 0
	}
	return v
}
