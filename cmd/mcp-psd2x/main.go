// Command mcp-psd2x renders layer-tree documents to raster images.
//
// A document is described by a JSON manifest (see psd2x.LoadManifest).
// The tool can dump the layer tree, render a single subtree, or export
// every top-level layer concurrently.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	psd2x "github.com/signal-slot/mcp-psd2x"
)

func main() {
	var (
		docPath = flag.String("doc", "", "path to the document manifest (required)")
		tree    = flag.Bool("tree", false, "print the layer tree as JSON and exit")
		layer   = flag.Int("layer", 0, "node ID to render (0 = whole document)")
		all     = flag.Bool("all", false, "export every top-level layer instead of a single render")
		out     = flag.String("out", ".", "output directory")
		format  = flag.String("format", "png", "output format: png or jpeg")
		width   = flag.Int("width", 0, "scale output to this width (0 = original)")
		height  = flag.Int("height", 0, "scale output to this height (0 = original)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *docPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		psd2x.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := psd2x.LoadManifest(*docPath)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	switch {
	case *tree:
		err = printTree(doc)
	case *all:
		err = exportAll(doc, *out, *format, *width, *height)
	default:
		err = exportOne(doc, psd2x.NodeID(*layer), *out, *format, *width, *height)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// treeNode mirrors one document node for the -tree dump.
type treeNode struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	BlendMode string     `json:"blendMode"`
	Opacity   float64    `json:"opacity"`
	Visible   bool       `json:"visible"`
	Hint      string     `json:"hint,omitempty"`
	Children  []treeNode `json:"children,omitempty"`
}

func printTree(doc *psd2x.Document) error {
	var build func(id psd2x.NodeID) treeNode
	build = func(id psd2x.NodeID) treeNode {
		l := doc.Layer(id)
		n := treeNode{
			ID:        int(id),
			Name:      l.Name,
			Kind:      l.Kind.String(),
			BlendMode: l.BlendMode.String(),
			Opacity:   l.Opacity,
			Visible:   l.Visible,
		}
		if h := doc.Hint(id); h.Type != psd2x.HintNone {
			n.Hint = h.Type.String()
		}
		for _, c := range doc.Children(id) {
			n.Children = append(n.Children, build(c))
		}
		return n
	}

	root := build(doc.Root())
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(root.Children)
}

func exportOne(doc *psd2x.Document, id psd2x.NodeID, out, format string, width, height int) error {
	pm := doc.Render(id)
	if pm == nil {
		return fmt.Errorf("node %d: nothing visible to render", id)
	}
	path := filepath.Join(out, outputName(doc, id, format))
	return writePixmap(pm, path, format, width, height)
}

// exportAll renders every top-level layer into its own file. Renders of
// distinct subtrees are independent, so they run concurrently.
func exportAll(doc *psd2x.Document, out, format string, width, height int) error {
	var g errgroup.Group
	for _, id := range doc.Children(doc.Root()) {
		id := id
		g.Go(func() error {
			pm := doc.Render(id)
			if pm == nil {
				return nil // invisible or empty, nothing to write
			}
			path := filepath.Join(out, outputName(doc, id, format))
			return writePixmap(pm, path, format, width, height)
		})
	}
	return g.Wait()
}

func writePixmap(pm *psd2x.Pixmap, path, format string, width, height int) error {
	pm = psd2x.Resize(pm, width, height)
	f, err := os.Create(path) //nolint:gosec // output path derives from user flags
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := psd2x.Encode(f, pm, format); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", path, pm.Width(), pm.Height())
	return nil
}

// outputName derives a file name from the layer name, falling back to
// the node ID for unnamed layers.
func outputName(doc *psd2x.Document, id psd2x.NodeID, format string) string {
	name := doc.Layer(id).Name
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = fmt.Sprintf("layer%d", id)
	}
	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}
	return name + "." + ext
}
