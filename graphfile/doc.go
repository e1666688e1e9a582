// Package graphfile reads and writes graph documents: a weighted adjacency
// mapping plus an optional default source vertex.
//
// Three encodings are supported, selected by file extension:
//
//	.hcl          node/edge blocks, decoded with gohcl
//	.yaml, .yml   gopkg.in/yaml.v3
//	.json         encoding/json
//
// HCL example:
//
//	source   = "A"
//	directed = true
//
//	node "A" {
//	  edge "B" { weight = 5 }
//	  edge "C" { weight = inf }   # impassable
//	}
//	node "E" {}
//
// The HCL evaluation context defines the variable inf (positive infinity).
// YAML spells it .inf; JSON cannot carry it.
//
// Directed defaults to true in every format when the field is absent.
package graphfile
