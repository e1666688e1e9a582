package graphfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathcost/core"
)

// hclDocument is the top-level HCL structure.
type hclDocument struct {
	Source   *string   `hcl:"source,optional"`
	Directed *bool     `hcl:"directed,optional"`
	Nodes    []hclNode `hcl:"node,block"`
}

type hclNode struct {
	ID    string    `hcl:"id,label"`
	Edges []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	To     string  `hcl:"to,label"`
	Weight float64 `hcl:"weight"`
}

// evalContext exposes `inf` to weight expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"inf": cty.PositiveInfinity,
		},
	}
}

// Load reads and decodes the file at path, choosing the format by extension.
// The document is returned as decoded; call Validate before trusting it.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	return decodeBytes(src, path, format)
}

// Decode reads one document of the given format from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}

	return decodeBytes(src, "<input>."+string(format), format)
}

func decodeBytes(src []byte, name string, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatHCL:
		doc, err = decodeHCL(src, name)
	case FormatYAML:
		doc, err = decodeYAML(src)
	case FormatJSON:
		doc, err = decodeJSON(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("graphfile: decode %s: %w", name, err)
	}
	if doc.Nodes == nil {
		doc.Nodes = map[string][]core.Arc{}
	}

	return doc, nil
}

func decodeHCL(src []byte, name string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, diags
	}

	var parsed hclDocument
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, diags
	}

	doc := &Document{
		Directed: true,
		Nodes:    make(map[string][]core.Arc, len(parsed.Nodes)),
	}
	if parsed.Source != nil {
		doc.Source = *parsed.Source
	}
	if parsed.Directed != nil {
		doc.Directed = *parsed.Directed
	}
	for _, n := range parsed.Nodes {
		arcs := doc.Nodes[n.ID]
		for _, e := range n.Edges {
			arcs = append(arcs, core.Arc{To: e.To, Weight: e.Weight})
		}
		if arcs == nil {
			arcs = []core.Arc{}
		}
		doc.Nodes[n.ID] = arcs
	}

	return doc, nil
}

func decodeYAML(src []byte) (*Document, error) {
	doc := &Document{Directed: true}
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func decodeJSON(src []byte) (*Document, error) {
	doc := &Document{Directed: true}
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}

	return doc, nil
}
