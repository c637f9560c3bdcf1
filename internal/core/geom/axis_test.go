package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeadingTrailingEdges(t *testing.T) {
	cases := []struct {
		dir      FlexDirection
		leading  Edge
		trailing Edge
		dim      Dimension
	}{
		{FlexDirectionRow, EdgeLeft, EdgeRight, DimensionWidth},
		{FlexDirectionRowReverse, EdgeRight, EdgeLeft, DimensionWidth},
		{FlexDirectionColumn, EdgeTop, EdgeBottom, DimensionHeight},
		{FlexDirectionColumnReverse, EdgeBottom, EdgeTop, DimensionHeight},
	}
	for _, c := range cases {
		require.Equal(t, c.leading, LeadingEdge(c.dir))
		require.Equal(t, c.trailing, TrailingEdge(c.dir))
		require.Equal(t, c.dim, DimensionOf(c.dir))
	}
}

func TestResolveAxisMirrorsOnlyRowUnderRTL(t *testing.T) {
	require.Equal(t, FlexDirectionRowReverse, ResolveAxis(FlexDirectionRow, DirectionRTL))
	require.Equal(t, FlexDirectionRow, ResolveAxis(FlexDirectionRowReverse, DirectionRTL))
	require.Equal(t, FlexDirectionRow, ResolveAxis(FlexDirectionRow, DirectionLTR))
	require.Equal(t, FlexDirectionColumn, ResolveAxis(FlexDirectionColumn, DirectionRTL))
}

func TestCrossAxis(t *testing.T) {
	require.Equal(t, FlexDirectionRow, CrossAxis(FlexDirectionColumn, DirectionLTR))
	require.Equal(t, FlexDirectionRowReverse, CrossAxis(FlexDirectionColumn, DirectionRTL))
	require.Equal(t, FlexDirectionColumn, CrossAxis(FlexDirectionRow, DirectionRTL))
}

func TestComputedEdgeValueFallbackChain(t *testing.T) {
	var edges [EdgeCount]Value
	for i := range edges {
		edges[i] = Undefined
	}
	edges[EdgeAll] = 4
	require.Equal(t, 4.0, ComputedEdgeValue(edges, EdgeTop, 0))

	edges[EdgeVertical] = 2
	require.Equal(t, 2.0, ComputedEdgeValue(edges, EdgeTop, 0))

	edges[EdgeTop] = 1
	require.Equal(t, 1.0, ComputedEdgeValue(edges, EdgeTop, 0))

	require.Equal(t, 4.0, ComputedEdgeValue(edges, EdgeStart, 9), "All still applies to Start")
}

func TestComputedEdgeValueNonNegativeSkipsNegative(t *testing.T) {
	var edges [EdgeCount]Value
	for i := range edges {
		edges[i] = Undefined
	}
	edges[EdgeLeft] = -5
	edges[EdgeHorizontal] = 3
	require.Equal(t, 3.0, ComputedEdgeValueNonNegative(edges, EdgeLeft, 0))
}
