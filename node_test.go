package flex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flexkit/flex/internal/core/geom"
)

func TestInsertChildSetsParentAndDirtiesTree(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	child := NewNode(cfg)

	root.layout.IsDirty = false
	root.InsertChild(child, 0)

	require.Equal(t, root, child.Parent())
	require.Equal(t, 1, root.ChildCount())
	require.True(t, root.IsDirty())
}

func TestRemoveChildDetaches(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	a, b := NewNode(cfg), NewNode(cfg)
	root.AddChild(a)
	root.AddChild(b)

	root.RemoveChild(a)
	require.Equal(t, 1, root.ChildCount())
	require.Nil(t, a.Parent())
	require.Equal(t, b, root.GetChild(0))
}

func TestMarkDirtyStopsAtFirstDirtyAncestor(t *testing.T) {
	cfg := DefaultConfig()
	grandparent := NewNode(cfg)
	parent := NewNode(cfg)
	child := NewNode(cfg)
	grandparent.AddChild(parent)
	parent.AddChild(child)

	grandparent.layout.IsDirty = false
	parent.layout.IsDirty = true // already dirty: should absorb the propagation
	child.layout.IsDirty = false

	child.MarkDirty()

	require.True(t, child.IsDirty())
	require.True(t, parent.IsDirty())
	require.False(t, grandparent.IsDirty(), "propagation must stop at the first already-dirty ancestor")
}

func TestSetMeasureFuncRejectsNodeWithChildren(t *testing.T) {
	cfg := DefaultConfig()
	parent := NewNode(cfg)
	parent.AddChild(NewNode(cfg))

	require.Panics(t, func() {
		parent.SetMeasureFunc(func(n *Node, w geom.Value, wm MeasureMode, h geom.Value, hm MeasureMode) *geom.Size {
			return nil
		})
	})
}

func TestInsertChildRejectsNodeWithMeasureFunc(t *testing.T) {
	cfg := DefaultConfig()
	parent := NewNode(cfg)
	parent.SetMeasureFunc(func(n *Node, w geom.Value, wm MeasureMode, h geom.Value, hm MeasureMode) *geom.Size {
		return nil
	})

	require.Panics(t, func() {
		parent.InsertChild(NewNode(cfg), 0)
	})
}

func TestResetRejectsAttachedNode(t *testing.T) {
	cfg := DefaultConfig()
	root := NewNode(cfg)
	child := NewNode(cfg)
	root.AddChild(child)

	require.Panics(t, func() { child.Reset() })
}

func TestInstanceCountTracksFree(t *testing.T) {
	cfg := DefaultConfig()
	n := NewNode(cfg)
	require.Equal(t, 1, cfg.InstanceCount())
	n.Free()
	require.Equal(t, 0, cfg.InstanceCount())
}
