package psd2x

import (
	"fmt"
	"image"
)

// Kind classifies a layer node.
type Kind int

const (
	// KindImage is a raster layer.
	KindImage Kind = iota
	// KindShape is a vector layer, already rasterized upstream.
	KindShape
	// KindText is a text layer, already rasterized upstream.
	KindText
	// KindFolder groups other layers.
	KindFolder
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindShape:
		return "shape"
	case KindText:
		return "text"
	case KindFolder:
		return "folder"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NodeID addresses a node in a Document. The root folder is always
// node 0.
type NodeID int

// Layer holds the attributes of one node in the layer tree.
//
// Opacity and FillOpacity are in [0, 1] and multiply together when the
// layer is painted; callers building documents by hand must set them
// explicitly (a zero opacity really is fully transparent). Pixels,
// TransparencyMask and LayerMask apply to leaf kinds only. HasAlpha
// reports whether the source pixel data carried a native alpha channel;
// when false, the compositor promotes the buffer and the transparency
// mask, if any, supplies the alpha.
type Layer struct {
	Kind        Kind
	Name        string
	Rect        image.Rectangle // document space
	Opacity     float64
	FillOpacity float64
	BlendMode   BlendMode
	Visible     bool

	Pixels           *Pixmap
	HasAlpha         bool
	TransparencyMask *Mask
	LayerMask        *LayerMask
}

type node struct {
	Layer
	parent   NodeID
	children []NodeID // document order: first child is topmost
}

// Document is the in-memory layer tree: an arena of nodes addressed by
// NodeID, with children stored as ID lists. It is loaded once and is
// read-only during rendering; the only mutation after construction is
// export-hint editing, which callers must serialize against renders.
type Document struct {
	width  int
	height int
	nodes  []node
	hints  map[NodeID]ExportHint
}

// NewDocument creates a document of the given canvas size with an empty
// root folder. The root is pass-through: rendering it composites the
// top-level layers with no extra isolation step.
func NewDocument(width, height int) *Document {
	d := &Document{
		width:  width,
		height: height,
		hints:  make(map[NodeID]ExportHint),
	}
	d.nodes = append(d.nodes, node{
		Layer: Layer{
			Kind:        KindFolder,
			Name:        "root",
			Rect:        image.Rect(0, 0, width, height),
			Opacity:     1,
			FillOpacity: 1,
			BlendMode:   BlendPassThrough,
			Visible:     true,
		},
		parent: -1,
	})
	return d
}

// Width returns the document canvas width.
func (d *Document) Width() int { return d.width }

// Height returns the document canvas height.
func (d *Document) Height() int { return d.height }

// Root returns the ID of the root folder.
func (d *Document) Root() NodeID { return 0 }

// Len returns the number of nodes, including the root.
func (d *Document) Len() int { return len(d.nodes) }

// Valid reports whether id addresses a node of the document.
func (d *Document) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(d.nodes)
}

// AddLayer appends a layer below the existing children of parent (new
// children stack under earlier ones, matching document order where the
// first child is topmost). Returns the new node's ID.
func (d *Document) AddLayer(parent NodeID, l Layer) (NodeID, error) {
	if !d.Valid(parent) {
		return 0, fmt.Errorf("psd2x: invalid parent node %d", parent)
	}
	if d.nodes[parent].Kind != KindFolder {
		return 0, fmt.Errorf("psd2x: node %d is not a folder", parent)
	}
	if l.Kind != KindFolder && l.BlendMode == BlendPassThrough {
		return 0, fmt.Errorf("psd2x: pass-through blend mode on non-folder layer %q", l.Name)
	}
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, node{Layer: l, parent: parent})
	d.nodes[parent].children = append(d.nodes[parent].children, id)
	return id, nil
}

// Layer returns the attributes of a node, or nil for an invalid ID.
// The returned pointer aliases document storage; treat it as read-only
// while renders may be running.
func (d *Document) Layer(id NodeID) *Layer {
	if !d.Valid(id) {
		return nil
	}
	return &d.nodes[id].Layer
}

// Parent returns the parent of id, or -1 for the root or an invalid ID.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.Valid(id) {
		return -1
	}
	return d.nodes[id].parent
}

// Children returns the node's children in document order (topmost
// first). The returned slice is document storage; do not modify it.
func (d *Document) Children(id NodeID) []NodeID {
	if !d.Valid(id) {
		return nil
	}
	return d.nodes[id].children
}

// Walk visits id and its descendants depth-first in document order.
// Returning false from fn prunes the subtree below that node.
func (d *Document) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	d.walk(id, 0, fn)
}

func (d *Document) walk(id NodeID, depth int, fn func(id NodeID, depth int) bool) {
	if !d.Valid(id) {
		return
	}
	if !fn(id, depth) {
		return
	}
	for _, c := range d.nodes[id].children {
		d.walk(c, depth+1, fn)
	}
}
