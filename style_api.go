package flex

import "github.com/flexkit/flex/internal/core/geom"

// This file is the node-level setter surface (§6): each mutator edits one
// Style field on the receiver and marks it dirty, mirroring the C-library
// shape of an explicit setter per property rather than free-form struct
// mutation, so a host never forgets the dirty bit.

func (n *Node) SetDirection(d Direction) {
	if n.style.Direction == d {
		return
	}
	n.style.Direction = d
	n.MarkDirty()
}

func (n *Node) SetFlexDirection(d FlexDirection) {
	if n.style.FlexDirection == d {
		return
	}
	n.style.FlexDirection = d
	n.MarkDirty()
}

func (n *Node) SetJustifyContent(j Justify) {
	if n.style.Justify == j {
		return
	}
	n.style.Justify = j
	n.MarkDirty()
}

func (n *Node) SetAlignContent(a Align) {
	if n.style.AlignContent == a {
		return
	}
	n.style.AlignContent = a
	n.MarkDirty()
}

func (n *Node) SetAlignItems(a Align) {
	if n.style.AlignItems == a {
		return
	}
	n.style.AlignItems = a
	n.MarkDirty()
}

func (n *Node) SetAlignSelf(a Align) {
	if n.style.AlignSelf == a {
		return
	}
	n.style.AlignSelf = a
	n.MarkDirty()
}

func (n *Node) SetPositionType(p PositionType) {
	if n.style.PositionType == p {
		return
	}
	n.style.PositionType = p
	n.MarkDirty()
}

func (n *Node) SetFlexWrap(w Wrap) {
	if n.style.FlexWrap == w {
		return
	}
	n.style.FlexWrap = w
	n.MarkDirty()
}

func (n *Node) SetOverflow(o Overflow) {
	if n.style.Overflow == o {
		return
	}
	n.style.Overflow = o
	n.MarkDirty()
}

func (n *Node) SetFlex(v geom.Value) { n.setFloat(&n.style.Flex, v) }

func (n *Node) SetFlexGrow(v geom.Value) { n.setFloat(&n.style.FlexGrow, v) }

func (n *Node) SetFlexShrink(v geom.Value) { n.setFloat(&n.style.FlexShrink, v) }

func (n *Node) SetFlexBasis(v geom.Value) { n.setFloat(&n.style.FlexBasis, v) }

func (n *Node) SetAspectRatio(v geom.Value) { n.setFloat(&n.style.AspectRatio, v) }

func (n *Node) SetWidth(v geom.Value) { n.setFloat(&n.style.Dimensions[geom.DimensionWidth], v) }

func (n *Node) SetHeight(v geom.Value) { n.setFloat(&n.style.Dimensions[geom.DimensionHeight], v) }

func (n *Node) SetMinWidth(v geom.Value) { n.setFloat(&n.style.MinDimensions[geom.DimensionWidth], v) }

func (n *Node) SetMinHeight(v geom.Value) { n.setFloat(&n.style.MinDimensions[geom.DimensionHeight], v) }

func (n *Node) SetMaxWidth(v geom.Value) { n.setFloat(&n.style.MaxDimensions[geom.DimensionWidth], v) }

func (n *Node) SetMaxHeight(v geom.Value) { n.setFloat(&n.style.MaxDimensions[geom.DimensionHeight], v) }

func (n *Node) SetMargin(edge geom.Edge, v geom.Value) { n.setFloat(&n.style.Margin[edge], v) }

func (n *Node) SetPosition(edge geom.Edge, v geom.Value) { n.setFloat(&n.style.Position[edge], v) }

func (n *Node) SetPadding(edge geom.Edge, v geom.Value) { n.setFloat(&n.style.Padding[edge], v) }

func (n *Node) SetBorder(edge geom.Edge, v geom.Value) { n.setFloat(&n.style.Border[edge], v) }

func (n *Node) setFloat(field *geom.Value, v geom.Value) {
	if geom.ApproxEq(*field, v) {
		return
	}
	*field = v
	n.MarkDirty()
}
