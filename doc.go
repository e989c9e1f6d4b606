// Package psd2x flattens hierarchical layer trees into raster images,
// reproducing the rendering model of a layered image editor.
//
// # Overview
//
// A Document is an arena of layer nodes: image, shape and text leaves
// carrying raster payloads and optional masks, and folders grouping
// them. Render walks a subtree bottom-to-top, honoring per-layer
// opacity, fill opacity and blend mode, and the two folder compositing
// modes: pass-through folders blend their children directly against
// the enclosing canvas, while isolated folders composite their children
// privately and blend the result as a single unit.
//
// # Quick start
//
//	doc, err := psd2x.LoadManifest("design/document.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	pm := doc.Render(doc.Root())
//	if pm == nil {
//		log.Print("nothing visible")
//		return
//	}
//	if err := pm.SavePNG("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Semantics
//
// Children are stored in document order, first child topmost; painting
// proceeds in reverse so the bottommost layer lands first. Transparency
// masks supply alpha for buffers without a native alpha channel; layer
// masks scale existing alpha with truncating integer math. Missing or
// empty pixel data is never an error: the node contributes nothing and
// the render degrades gracefully.
//
// # Concurrency
//
// Rendering is synchronous and allocates all intermediate canvases
// privately, so concurrent renders of any subtrees are safe as long as
// the document is not mutated (export-hint edits are the only mutation)
// at the same time.
package psd2x

// Version is the current version of the library.
const Version = "0.1.0"
