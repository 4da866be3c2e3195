// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
)

var errNoGraph = errors.New("lvtree: no graph document (use --graph or LVTREE_GRAPH)")

// decodeDocument parses one YAML graph document. Unknown keys are rejected.
func decodeDocument(r io.Reader) (*builder.Blueprint, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc builder.Blueprint
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("lvtree: empty graph document")
		}
		return nil, fmt.Errorf("lvtree: decode graph document: %w", err)
	}

	return &doc, nil
}

// encodeDocument writes b as a YAML graph document.
func encodeDocument(w io.Writer, b *builder.Blueprint) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("lvtree: encode graph document: %w", err)
	}

	return enc.Close()
}

// loadGraph reads the configured document and builds the graph with the
// invocation's logger and tracer.
func (a *app) loadGraph(stdin io.Reader) (*core.Graph[string, float64], error) {
	path := a.v.GetString(keyGraph)
	if path == "" {
		return nil, errNoGraph
	}

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("lvtree: open graph: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}
	g, err := doc.Graph(core.WithLogger(a.logger), core.WithTracer(a.tracer))
	if err != nil {
		return nil, fmt.Errorf("lvtree: build graph: %w", err)
	}

	return g, nil
}
