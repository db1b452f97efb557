// Package flow provides helpers for loading and mutating serialized flow
// documents, the JSON form the visual builder exports.
// PRINCIPLES:
// - KISS: Documents stay raw JSON; helpers read and patch paths in place
// - SRP: Document shape concerns only, no execution semantics
package flow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is a serialized flow. The raw bytes are the source of truth;
// mutation helpers rewrite them in place.
type Document struct {
	ID   string
	Name string
	raw  []byte
}

// New wraps raw flow JSON. The document id and name are read from the
// payload when present; a missing id is minted.
func New(raw []byte) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidDocument
	}
	doc := &Document{raw: raw}
	doc.ID = gjson.GetBytes(raw, "id").String()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.Name = gjson.GetBytes(raw, "name").String()
	return doc, nil
}

// LoadFromDir reads <dir>/<name>.json. Unlike physical namespace
// overrides, a missing fixture is an error: tests depend on it existing.
func LoadFromDir(name, dir string) (*Document, error) {
	path := filepath.Join(dir, name+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flow file not found: %s: %w", path, err)
	}
	return New(raw)
}

// Raw returns the current document bytes.
func (d *Document) Raw() []byte {
	return d.raw
}

// Nodes returns the component nodes of the flow.
func (d *Document) Nodes() []gjson.Result {
	return gjson.GetBytes(d.raw, "data.nodes").Array()
}

// NodeIDs lists the component node IDs in document order.
func (d *Document) NodeIDs() []string {
	nodes := d.Nodes()
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.Get("id").String())
	}
	return ids
}

// ComponentsByType returns every node whose component type matches.
func (d *Document) ComponentsByType(componentType string) []gjson.Result {
	var out []gjson.Result
	for _, n := range d.Nodes() {
		if n.Get("data.type").String() == componentType {
			out = append(out, n)
		}
	}
	return out
}

// ComponentByType returns the first node of the given type. The error
// lists the available types so a failing fixture lookup is diagnosable.
func (d *Document) ComponentByType(componentType string) (gjson.Result, error) {
	matches := d.ComponentsByType(componentType)
	if len(matches) == 0 {
		return gjson.Result{}, fmt.Errorf("%w: %s (available: %s)",
			ErrComponentNotFound, componentType, strings.Join(d.availableTypes(), ", "))
	}
	return matches[0], nil
}

// SingleComponent returns the only node of the given type, failing when
// the flow contains duplicates.
func (d *Document) SingleComponent(componentType string) (gjson.Result, error) {
	matches := d.ComponentsByType(componentType)
	switch len(matches) {
	case 0:
		return gjson.Result{}, fmt.Errorf("%w: %s (available: %s)",
			ErrComponentNotFound, componentType, strings.Join(d.availableTypes(), ", "))
	case 1:
		return matches[0], nil
	default:
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrMultipleComponents, componentType)
	}
}

// SetComponentInput patches the template value for one input of the
// identified component and clears its load_from_db flag, the same way
// test fixtures are overridden in the builder.
func (d *Document) SetComponentInput(componentID, key string, value any) error {
	for i, n := range d.Nodes() {
		if n.Get("id").String() != componentID {
			continue
		}
		if !n.Get("data.node.template." + key).Exists() {
			return fmt.Errorf("%w: component %s has no input %s", ErrInputNotFound, componentID, key)
		}
		base := fmt.Sprintf("data.nodes.%d.data.node.template.%s", i, key)
		raw, err := sjson.SetBytes(d.raw, base+".value", value)
		if err != nil {
			return fmt.Errorf("patching %s: %w", base, err)
		}
		raw, err = sjson.SetBytes(raw, base+".load_from_db", false)
		if err != nil {
			return fmt.Errorf("patching %s: %w", base, err)
		}
		d.raw = raw
		return nil
	}
	return fmt.Errorf("%w: %s", ErrComponentIDNotFound, componentID)
}

// availableTypes lists the distinct component types present, sorted.
func (d *Document) availableTypes() []string {
	seen := make(map[string]struct{})
	for _, n := range d.Nodes() {
		seen[n.Get("data.type").String()] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
