package psd2x

import (
	"encoding/json"
	"fmt"
	"os"
)

// HintType selects how an exporter plugin should treat a layer.
type HintType int

const (
	// HintNone leaves the layer to the exporter's defaults.
	HintNone HintType = iota
	// HintEmbed embeds the layer's raster output directly.
	HintEmbed
	// HintMerge merges the layer into its parent's output.
	HintMerge
	// HintComponent exports the layer as a named custom component.
	HintComponent
	// HintNative maps the layer onto a native base element.
	HintNative
	// HintSkip omits the layer from export entirely.
	HintSkip
)

var hintTypeNames = map[HintType]string{
	HintNone:      "none",
	HintEmbed:     "embed",
	HintMerge:     "merge",
	HintComponent: "custom",
	HintNative:    "native",
	HintSkip:      "skip",
}

// String returns the canonical name of the hint type.
func (t HintType) String() string {
	if n, ok := hintTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("HintType(%d)", int(t))
}

// ParseHintType returns the hint type with the given canonical name.
func ParseHintType(name string) (HintType, error) {
	for t, n := range hintTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("psd2x: unknown hint type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t HintType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *HintType) UnmarshalText(text []byte) error {
	v, err := ParseHintType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ExportHint is user-authored guidance attached to a layer, persisted
// in a sidecar file next to the document rather than in the document
// itself.
type ExportHint struct {
	Type          HintType `json:"type"`
	ID            string   `json:"id,omitempty"`
	ComponentName string   `json:"componentName,omitempty"`
	BaseElement   string   `json:"baseElement,omitempty"`
	Visible       bool     `json:"visible"`
	Properties    []string `json:"properties,omitempty"`
}

// Hint returns the export hint for a node. Nodes without an explicit
// hint report the default: HintNone, visible.
func (d *Document) Hint(id NodeID) ExportHint {
	if h, ok := d.hints[id]; ok {
		return h
	}
	return ExportHint{Type: HintNone, Visible: true}
}

// SetHint stores the export hint for a node. Hint edits are the only
// document mutation after loading; callers must serialize them against
// renders of the same document.
func (d *Document) SetHint(id NodeID, h ExportHint) error {
	if !d.Valid(id) {
		return fmt.Errorf("psd2x: invalid node %d", id)
	}
	d.hints[id] = h
	return nil
}

// SaveHints writes all explicitly set hints to path as JSON, keyed by
// node ID.
func (d *Document) SaveHints(path string) error {
	data, err := json.MarshalIndent(d.hints, "", "  ")
	if err != nil {
		return fmt.Errorf("psd2x: marshal hints: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // sidecar file, not a secret
		return fmt.Errorf("psd2x: write hints: %w", err)
	}
	return nil
}

// LoadHints replaces the document's hints with the contents of the
// sidecar file at path.
func (d *Document) LoadHints(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided path
	if err != nil {
		return fmt.Errorf("psd2x: read hints: %w", err)
	}
	hints := make(map[NodeID]ExportHint)
	if err := json.Unmarshal(data, &hints); err != nil {
		return fmt.Errorf("psd2x: parse hints: %w", err)
	}
	for id := range hints {
		if !d.Valid(id) {
			return fmt.Errorf("psd2x: hint for unknown node %d", id)
		}
	}
	d.hints = hints
	return nil
}
