// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: single-document YAML map loader.

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

type yamlMap struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

type yamlNode struct {
	ID   *int    `yaml:"id"`
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type yamlEdge struct {
	From     *int     `yaml:"from"`
	To       *int     `yaml:"to"`
	Distance *float64 `yaml:"distance"`
	Oneway   bool     `yaml:"oneway"`
}

// LoadYAML decodes one YAML map document from r into g. All nodes are added
// before any edge, so edges may reference nodes listed later in the file.
// Unknown keys are a decode error. An empty document loads nothing.
func LoadYAML(r io.Reader, g *core.Graph, opts ...Option) (Report, error) {
	o := newOptions(opts...)

	var doc yamlMap
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Report{}, nil
		}
		return Report{}, fmt.Errorf("loader: yaml: %w", err)
	}

	var rep Report
	for i, n := range doc.Nodes {
		if n.ID == nil {
			o.skip(&rep, "nodes", i, "missing id")
			continue
		}
		g.AddNode(*n.ID, n.Name, n.X, n.Y)
		rep.Nodes++
	}
	for i, e := range doc.Edges {
		if e.From == nil || e.To == nil || e.Distance == nil {
			o.skip(&rep, "edges", i, "want from, to and distance")
			continue
		}
		o.road(g, &rep, "edges", i, *e.From, *e.To, *e.Distance, !(o.directed || e.Oneway))
	}

	return rep, nil
}

// LoadYAMLFile opens path and calls LoadYAML.
func LoadYAMLFile(path string, g *core.Graph, opts ...Option) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	rep, err := LoadYAML(f, g, opts...)
	if err != nil {
		return rep, fmt.Errorf("%w (%s)", err, path)
	}

	return rep, nil
}
