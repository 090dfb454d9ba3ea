// SPDX-License-Identifier: MIT
//
// File: csv.go
// Role: CSV node/edge loaders.

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

const (
	nodeFields = 4 // id,name,x,y
	edgeFields = 3 // from,to,distance
)

// LoadNodesCSV reads "id,name,x,y" rows into g. Extra columns are ignored.
// A row whose id, x or y does not parse is skipped.
func LoadNodesCSV(r io.Reader, g *core.Graph, opts ...Option) (Report, error) {
	o := newOptions(opts...)
	var rep Report

	err := eachRecord(r, func(line int, rec []string) {
		if len(rec) < nodeFields {
			o.skip(&rep, "nodes", line, "want id,name,x,y")
			return
		}
		id, err1 := strconv.Atoi(rec[0])
		x, err2 := strconv.ParseFloat(rec[2], 64)
		y, err3 := strconv.ParseFloat(rec[3], 64)
		if err := errors.Join(err1, err2, err3); err != nil {
			o.skip(&rep, "nodes", line, err.Error())
			return
		}
		g.AddNode(id, rec[1], x, y)
		rep.Nodes++
	}, o)
	if err != nil {
		return rep, fmt.Errorf("loader: nodes: %w", err)
	}

	return rep, nil
}

// LoadEdgesCSV reads "from,to,distance" rows into g.
//
// Each row is a two-way road unless WithDirected is given. If the source of
// a row is unknown the row is skipped. If only the reverse direction fails
// (the target is unknown) the forward edge stays as a dangling edge and the
// row is counted in Report.Partial.
func LoadEdgesCSV(r io.Reader, g *core.Graph, opts ...Option) (Report, error) {
	o := newOptions(opts...)
	var rep Report

	err := eachRecord(r, func(line int, rec []string) {
		if len(rec) < edgeFields {
			o.skip(&rep, "edges", line, "want from,to,distance")
			return
		}
		from, err1 := strconv.Atoi(rec[0])
		to, err2 := strconv.Atoi(rec[1])
		w, err3 := strconv.ParseFloat(rec[2], 64)
		if err := errors.Join(err1, err2, err3); err != nil {
			o.skip(&rep, "edges", line, err.Error())
			return
		}
		o.road(g, &rep, "edges", line, from, to, w, !o.directed)
	}, o)
	if err != nil {
		return rep, fmt.Errorf("loader: edges: %w", err)
	}

	return rep, nil
}

// LoadFiles loads the nodes file and then the edges file into g.
func LoadFiles(nodesPath, edgesPath string, g *core.Graph, opts ...Option) (Report, error) {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return Report{}, fmt.Errorf("loader: %w", err)
	}
	defer nf.Close()

	rep, err := LoadNodesCSV(nf, g, opts...)
	if err != nil {
		return rep, fmt.Errorf("%w (%s)", err, nodesPath)
	}

	ef, err := os.Open(edgesPath)
	if err != nil {
		return rep, fmt.Errorf("loader: %w", err)
	}
	defer ef.Close()

	erep, err := LoadEdgesCSV(ef, g, opts...)
	rep = rep.Add(erep)
	if err != nil {
		return rep, fmt.Errorf("%w (%s)", err, edgesPath)
	}

	return rep, nil
}

// eachRecord feeds every non-comment record of r to fn with its fields
// trimmed. Records csv rejects as malformed are skipped, not returned.
func eachRecord(r io.Reader, fn func(line int, rec []string), o options) error {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			o.logger.Debug("skipping row", "line", perr.Line, "err", perr.Err)
			continue
		}
		if err != nil {
			return err
		}

		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if len(rec) == 1 && rec[0] == "" {
			continue
		}
		fn(line, rec)
	}
}

func (o options) skip(rep *Report, file string, line int, reason string) {
	rep.Skipped++
	o.logger.Debug("skipping row", "file", file, "line", line, "reason", reason)
}

// road inserts from→to and, if twoWay, to→from.
func (o options) road(g *core.Graph, rep *Report, file string, line, from, to int, w float64, twoWay bool) {
	if err := g.AddEdge(from, to, w); err != nil {
		o.skip(rep, file, line, err.Error())
		return
	}
	rep.Edges++
	if !twoWay {
		return
	}
	if err := g.AddEdge(to, from, w); err != nil {
		rep.Partial++
		o.logger.Debug("one-way only", "file", file, "line", line, "err", err)
		return
	}
	rep.Edges++
}
