package netio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nullnet/boolnet"
)

// ErrDecode indicates the input is not a well-formed YAML document of
// the expected shape.
var ErrDecode = errors.New("netio: malformed document")

// ErrDocument indicates a syntactically valid document with no usable
// content (no nodes).
var ErrDocument = errors.New("netio: empty document")

// nodeDoc is the on-disk form of one logic-table row. Input order is
// significant: bit i of an on-set pattern refers to inputs[i].
type nodeDoc struct {
	Name   string   `yaml:"name"`
	Inputs []string `yaml:"inputs,omitempty"`
	On     []string `yaml:"on,omitempty"`
}

// document is the on-disk form of a whole logic network.
type document struct {
	Nodes []nodeDoc `yaml:"nodes"`
}

// Decode reads one YAML logic-network document from r and builds the
// network it describes. YAML-level failures wrap ErrDecode, a document
// without nodes wraps ErrDocument, and semantic violations (pattern
// width, duplicates, undeclared inputs) surface as the boolnet
// validation sentinels.
func Decode(r io.Reader) (*boolnet.LogicNetwork, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrDocument)
	}

	rows := make([]boolnet.Row, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		rows = append(rows, boolnet.Row{Node: n.Name, Inputs: n.Inputs, On: n.On})
	}

	return boolnet.NewLogicNetwork(rows)
}

// Encode writes net to w as a YAML logic-network document, rows in
// network order with their stored (sorted) on-sets. Decode of the
// produced document rebuilds an identical network.
func Encode(w io.Writer, net *boolnet.LogicNetwork) error {
	if net == nil {
		return fmt.Errorf("%w: nil network", ErrDocument)
	}

	rowList := net.Rows()
	doc := document{Nodes: make([]nodeDoc, 0, len(rowList))}
	for _, r := range rowList {
		doc.Nodes = append(doc.Nodes, nodeDoc{Name: r.Node, Inputs: r.Inputs, On: r.On})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("netio: encode: %w", err)
	}

	return enc.Close()
}

// Load reads the YAML logic-network document at path.
func Load(path string) (*boolnet.LogicNetwork, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netio: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Save writes net to path as a YAML logic-network document, creating
// or truncating the file.
func Save(path string, net *boolnet.LogicNetwork) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("netio: create %s: %w", path, err)
	}

	if err := Encode(f, net); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
