package graphfile

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Encode writes doc to w in the given format. Nodes are emitted in sorted
// order. JSON cannot represent infinite weights and fails on them.
func Encode(w io.Writer, doc *Document, format Format) error {
	var err error
	switch format {
	case FormatHCL:
		_, err = encodeHCL(doc).WriteTo(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("graphfile: encode %s: %w", format, err)
	}

	return nil
}

func encodeHCL(doc *Document) *hclwrite.File {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if doc.Source != "" {
		body.SetAttributeValue("source", cty.StringVal(doc.Source))
	}
	body.SetAttributeValue("directed", cty.BoolVal(doc.Directed))

	for _, id := range doc.NodeIDs() {
		body.AppendNewline()
		node := body.AppendNewBlock("node", []string{id}).Body()
		for _, a := range doc.Nodes[id] {
			edge := node.AppendNewBlock("edge", []string{a.To}).Body()
			if math.IsInf(a.Weight, 1) {
				edge.SetAttributeTraversal("weight", hcl.Traversal{hcl.TraverseRoot{Name: "inf"}})
				continue
			}
			edge.SetAttributeValue("weight", cty.NumberFloatVal(a.Weight))
		}
	}

	return f
}
