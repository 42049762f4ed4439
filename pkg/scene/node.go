package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-teaching-renderer/pkg/geometry"
	"github.com/df07/go-teaching-renderer/pkg/lights"
)

// Kind tags the capability of a scene-graph node
type Kind int

const (
	KindGroup Kind = iota
	KindLight
	KindMesh
	KindCamera
	KindPrimitive
)

// String returns a readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindLight:
		return "light"
	case KindMesh:
		return "mesh"
	case KindCamera:
		return "camera"
	case KindPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Node is an element of the scene graph. Renderers dispatch on Kind and then
// use the matching capability accessor instead of inspecting concrete types.
type Node interface {
	Kind() Kind
	Children() []Node
	Parent() *Group
	setParent(parent *Group)
}

// node holds the parent link shared by all node types
type node struct {
	parent *Group
}

func (n *node) Parent() *Group          { return n.parent }
func (n *node) setParent(parent *Group) { n.parent = parent }

// Children returns nil for leaf nodes
func (n *node) Children() []Node { return nil }

// Group is an inner node with a local transformation applied to its subtree
type Group struct {
	node
	Name      string
	Transform mgl64.Mat4
	children  []Node
}

// NewGroup creates an empty group with the identity transformation
func NewGroup(name string) *Group {
	return &Group{Name: name, Transform: mgl64.Ident4()}
}

// Kind implements Node
func (g *Group) Kind() Kind { return KindGroup }

// Children implements Node
func (g *Group) Children() []Node { return g.children }

// AddChild appends child to the group and returns it for chaining
func (g *Group) AddChild(child Node) Node {
	child.setParent(g)
	g.children = append(g.children, child)
	return child
}

// GetGlobalTransformation returns the composed transformation from the root to this group
func (g *Group) GetGlobalTransformation() mgl64.Mat4 {
	if g.parent == nil {
		return g.Transform
	}
	return g.parent.GetGlobalTransformation().Mul4(g.Transform)
}

// LightNode places a light in the scene graph.
// Light positions are given in world space.
type LightNode struct {
	node
	Light lights.Light
}

// NewLightNode wraps a light as a scene node
func NewLightNode(light lights.Light) *LightNode {
	return &LightNode{Light: light}
}

// Kind implements Node
func (l *LightNode) Kind() Kind { return KindLight }

// PrimitiveNode places a ray-traceable primitive in the scene graph.
// Primitives are defined in world space; group transformations do not apply.
type PrimitiveNode struct {
	node
	Primitive geometry.Primitive
}

// NewPrimitiveNode wraps a primitive as a scene node
func NewPrimitiveNode(primitive geometry.Primitive) *PrimitiveNode {
	return &PrimitiveNode{Primitive: primitive}
}

// Kind implements Node
func (p *PrimitiveNode) Kind() Kind { return KindPrimitive }

// Walk visits root and its descendants depth-first in child order
func Walk(root Node, visit func(Node)) {
	if root == nil {
		return
	}
	visit(root)
	for _, child := range root.Children() {
		Walk(child, visit)
	}
}
