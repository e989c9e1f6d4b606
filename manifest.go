package psd2x

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg" // manifest raster payloads may be JPEG
	_ "image/png"  // or PNG
	"os"
	"path/filepath"
)

// The manifest is a JSON description of a layer tree with raster
// payloads stored as sibling image files. It stands in for the
// proprietary document format, whose parsing happens upstream: whatever
// produces a manifest gets full compositing support here.

type manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Layers []manifestLayer `json:"layers"`
}

type manifestLayer struct {
	Kind         string          `json:"kind"`
	Name         string          `json:"name"`
	Rect         manifestRect    `json:"rect"`
	Opacity      *float64        `json:"opacity,omitempty"`     // default 1
	FillOpacity  *float64        `json:"fillOpacity,omitempty"` // default 1
	BlendMode    string          `json:"blendMode,omitempty"`
	Visible      *bool           `json:"visible,omitempty"`  // default true
	Pixels       string          `json:"pixels,omitempty"`   // image file, relative to manifest
	HasAlpha     *bool           `json:"hasAlpha,omitempty"` // default true
	Transparency string          `json:"transparencyMask,omitempty"`
	LayerMask    *manifestMask   `json:"layerMask,omitempty"`
	Children     []manifestLayer `json:"children,omitempty"` // document order, topmost first
}

type manifestRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r manifestRect) rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

type manifestMask struct {
	File         string       `json:"file"`
	Rect         manifestRect `json:"rect"`
	DefaultColor uint8        `json:"defaultColor"`
}

// LoadManifest reads a JSON layer-tree manifest and materializes a
// Document, decoding the referenced image files relative to the
// manifest's directory.
func LoadManifest(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided path
	if err != nil {
		return nil, fmt.Errorf("psd2x: read manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("psd2x: parse manifest: %w", err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("psd2x: manifest has invalid canvas size %dx%d", m.Width, m.Height)
	}

	doc := NewDocument(m.Width, m.Height)
	dir := filepath.Dir(path)
	for _, ml := range m.Layers {
		if err := addManifestLayer(doc, doc.Root(), dir, ml); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func addManifestLayer(doc *Document, parent NodeID, dir string, ml manifestLayer) error {
	l := Layer{
		Name:        ml.Name,
		Rect:        ml.Rect.rect(),
		Opacity:     1,
		FillOpacity: 1,
		Visible:     true,
		HasAlpha:    true,
	}

	switch ml.Kind {
	case "image":
		l.Kind = KindImage
	case "shape":
		l.Kind = KindShape
	case "text":
		l.Kind = KindText
	case "folder":
		l.Kind = KindFolder
	default:
		return fmt.Errorf("psd2x: layer %q: unknown kind %q", ml.Name, ml.Kind)
	}

	if ml.Opacity != nil {
		l.Opacity = clamp01(*ml.Opacity)
	}
	if ml.FillOpacity != nil {
		l.FillOpacity = clamp01(*ml.FillOpacity)
	}
	if ml.Visible != nil {
		l.Visible = *ml.Visible
	}
	if ml.HasAlpha != nil {
		l.HasAlpha = *ml.HasAlpha
	}

	// Folders default to pass-through, leaves to normal.
	if ml.BlendMode == "" {
		if l.Kind == KindFolder {
			l.BlendMode = BlendPassThrough
		} else {
			l.BlendMode = BlendNormal
		}
	} else {
		mode, err := ParseBlendMode(ml.BlendMode)
		if err != nil {
			return fmt.Errorf("psd2x: layer %q: %w", ml.Name, err)
		}
		l.BlendMode = mode
	}

	if l.Kind != KindFolder {
		if ml.Pixels != "" {
			img, err := loadImageFile(filepath.Join(dir, ml.Pixels))
			if err != nil {
				return fmt.Errorf("psd2x: layer %q: %w", ml.Name, err)
			}
			l.Pixels = FromImage(img, l.Rect.Min)
		}
		if ml.Transparency != "" {
			img, err := loadImageFile(filepath.Join(dir, ml.Transparency))
			if err != nil {
				return fmt.Errorf("psd2x: layer %q: %w", ml.Name, err)
			}
			l.TransparencyMask = NewMaskFromImage(img)
		}
		if ml.LayerMask != nil {
			img, err := loadImageFile(filepath.Join(dir, ml.LayerMask.File))
			if err != nil {
				return fmt.Errorf("psd2x: layer %q: %w", ml.Name, err)
			}
			l.LayerMask = &LayerMask{
				Mask:         NewMaskFromImage(img),
				Rect:         ml.LayerMask.Rect.rect(),
				DefaultColor: ml.LayerMask.DefaultColor,
			}
		}
	}

	id, err := doc.AddLayer(parent, l)
	if err != nil {
		return err
	}
	for _, child := range ml.Children {
		if err := addManifestLayer(doc, id, dir, child); err != nil {
			return err
		}
	}
	return nil
}

func loadImageFile(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
