package flex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flexkit/flex/internal/core/geom"
)

func TestRowFixedWidthsPlacedSideBySide(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)

	a, b := NewNode(cfg), NewNode(cfg)
	a.SetWidth(100)
	b.SetWidth(100)
	root.AddChild(a)
	root.AddChild(b)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 300.0, root.LayoutWidth())
	require.Equal(t, 50.0, root.LayoutHeight())
	require.Equal(t, 0.0, a.LayoutLeft())
	require.Equal(t, 100.0, a.LayoutWidth())
	require.Equal(t, 50.0, a.LayoutHeight(), "default AlignItems is Stretch")
	require.Equal(t, 100.0, b.LayoutLeft())
	require.Equal(t, 100.0, b.LayoutWidth())
}

func TestFlexGrowDistributesFreeSpaceEvenly(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)

	a, b := NewNode(cfg), NewNode(cfg)
	a.SetFlexBasis(0)
	a.SetFlexGrow(1)
	b.SetFlexBasis(0)
	b.SetFlexGrow(1)
	root.AddChild(a)
	root.AddChild(b)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 150.0, a.LayoutWidth())
	require.Equal(t, 150.0, b.LayoutWidth())
	require.Equal(t, 0.0, a.LayoutLeft())
	require.Equal(t, 150.0, b.LayoutLeft())
}

func TestFlexShrinkDistributesDeficitByScaledBasis(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(50)

	a, b := NewNode(cfg), NewNode(cfg)
	a.SetFlexBasis(150)
	a.SetFlexShrink(1)
	b.SetFlexBasis(150)
	b.SetFlexShrink(1)
	root.AddChild(a)
	root.AddChild(b)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.InDelta(t, 100.0, a.LayoutWidth(), geom.Epsilon)
	require.InDelta(t, 100.0, b.LayoutWidth(), geom.Epsilon)
}

func TestColumnDefaultStretchesChildWidth(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetWidth(200)
	root.SetHeight(100)

	child := NewNode(cfg)
	root.AddChild(child)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 200.0, child.LayoutWidth())
}

func TestJustifyContentCenter(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)
	root.SetJustifyContent(JustifyCenter)

	child := NewNode(cfg)
	child.SetWidth(100)
	root.AddChild(child)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 100.0, child.LayoutLeft())
}

func TestWrapStacksLinesAlongCrossAxis(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)
	root.SetWidth(100)
	root.SetHeight(200)

	var children []*Node
	for i := 0; i < 3; i++ {
		c := NewNode(cfg)
		c.SetWidth(60)
		c.SetHeight(20)
		root.AddChild(c)
		children = append(children, c)
	}

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	for _, c := range children {
		require.Equal(t, 0.0, c.LayoutLeft(), "each line holds one 60px-wide child in a 100px row")
	}
	require.Equal(t, 0.0, children[0].LayoutTop())
	require.Equal(t, 20.0, children[1].LayoutTop())
	require.Equal(t, 40.0, children[2].LayoutTop())
}

func TestAbsoluteChildIgnoresFlexFlow(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetWidth(200)
	root.SetHeight(200)

	abs := NewNode(cfg)
	abs.SetPositionType(PositionAbsolute)
	abs.SetWidth(50)
	abs.SetHeight(50)
	abs.SetPosition(geom.EdgeLeft, 10)
	abs.SetPosition(geom.EdgeTop, 20)
	root.AddChild(abs)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 10.0, abs.LayoutLeft())
	require.Equal(t, 20.0, abs.LayoutTop())
	require.Equal(t, 50.0, abs.LayoutWidth())
}

func TestMeasureFuncDrivesLeafSize(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetWidth(200)
	root.SetHeight(200)

	leaf := NewNode(cfg)
	leaf.SetMeasureFunc(func(n *Node, w geom.Value, wm MeasureMode, h geom.Value, hm MeasureMode) *geom.Size {
		return geom.NewSize(42, 24)
	})
	root.AddChild(leaf)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 200.0, leaf.LayoutWidth(), "default AlignItems is Stretch")
	require.Equal(t, 24.0, leaf.LayoutHeight())
}

func TestJustifyContentSpaceBetween(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)
	root.SetJustifyContent(JustifySpaceBetween)

	a, b, c := NewNode(cfg), NewNode(cfg), NewNode(cfg)
	a.SetWidth(50)
	b.SetWidth(50)
	c.SetWidth(50)
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	require.Equal(t, 0.0, a.LayoutLeft())
	require.Equal(t, 125.0, b.LayoutLeft())
	require.Equal(t, 250.0, c.LayoutLeft())
}

func TestJustifyContentSpaceAround(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)
	root.SetJustifyContent(JustifySpaceAround)

	a, b, c := NewNode(cfg), NewNode(cfg), NewNode(cfg)
	a.SetWidth(50)
	b.SetWidth(50)
	c.SetWidth(50)
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	// remaining = 300 - 150 = 150, between = 150/3 = 50, leadingOffset = 25
	require.InDelta(t, 25.0, a.LayoutLeft(), geom.Epsilon)
	require.InDelta(t, 125.0, b.LayoutLeft(), geom.Epsilon)
	require.InDelta(t, 225.0, c.LayoutLeft(), geom.Epsilon)
}

func TestRowDirectionRTLMirrorsChildOrder(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)

	a, b := NewNode(cfg), NewNode(cfg)
	a.SetWidth(100)
	b.SetWidth(100)
	root.AddChild(a)
	root.AddChild(b)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionRTL)

	require.Equal(t, DirectionRTL, root.LayoutDirection())
	require.Equal(t, 200.0, a.LayoutLeft(), "in RTL, row main axis starts from the right edge")
	require.Equal(t, 100.0, b.LayoutLeft())
}

func TestMultiLineAlignContentCenter(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)
	root.SetAlignContent(AlignCenter)
	root.SetWidth(100)
	root.SetHeight(200)

	var children []*Node
	for i := 0; i < 3; i++ {
		c := NewNode(cfg)
		c.SetWidth(60)
		c.SetHeight(20)
		root.AddChild(c)
		children = append(children, c)
	}

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)

	// 3 lines of 20px each = 60px used, 140px remaining, centered: offset 70.
	require.InDelta(t, 70.0, children[0].LayoutTop(), geom.Epsilon)
	require.InDelta(t, 90.0, children[1].LayoutTop(), geom.Epsilon)
	require.InDelta(t, 110.0, children[2].LayoutTop(), geom.Epsilon)
}

func TestDirtyNodeIsRecomputedOnNextCalculate(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	root.SetWidth(200)
	root.SetHeight(100)
	child := NewNode(cfg)
	child.SetWidth(50)
	root.AddChild(child)

	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)
	require.Equal(t, 50.0, child.LayoutWidth())

	child.SetWidth(80)
	CalculateLayout(root, geom.Undefined, geom.Undefined, DirectionLTR)
	require.Equal(t, 80.0, child.LayoutWidth())
}
