// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/loader"
)

const defaultConfigPath = "lvroute.yaml"

// app carries the resolved settings and streams shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgPath string
	demo    int
	seed    int64

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Plan shortest routes over a road map",
		Long: `lvroute loads a map of named locations joined by roads and finds the
shortest route between two of them with Dijkstra or A*.

Examples:
  lvroute route Home Harbour
  lvroute --astar route 1 10 --no-map
  lvroute --demo 200 serve --addr :8080`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", defaultConfigPath, "YAML config file (optional)")
	pf.String("nodes", "", "nodes CSV file (id,name,x,y)")
	pf.String("edges", "", "edges CSV file (from,to,distance)")
	pf.String("map", "", "YAML map file; overrides --nodes/--edges")
	pf.Bool("directed", false, "treat every edge row as a one-way road")
	pf.Bool("astar", false, "use the A* search with the Euclidean heuristic")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("log-format", "", "text or json")
	pf.IntVar(&a.demo, "demo", 0, "ignore map files and generate a random town of N locations")
	pf.Int64Var(&a.seed, "seed", 1, "random seed for --demo")

	root.AddCommand(
		newRouteCmd(a),
		newReplCmd(a),
		newMapCmd(a),
		newInfoCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup resolves the configuration (flags > env > file > defaults) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	str := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	boolean := func(name string, dst *bool) {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	str("nodes", &cfg.Data.Nodes)
	str("edges", &cfg.Data.Edges)
	str("map", &cfg.Data.Map)
	boolean("directed", &cfg.Data.Directed)
	boolean("astar", &cfg.Router.AStar)
	str("log-level", &cfg.Log.Level)
	str("log-format", &cfg.Log.Format)
	if flags.Lookup("addr") != nil {
		str("addr", &cfg.Server.Addr)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Logger(a.errOut)

	return nil
}

// loadGraph builds the map selected by the configuration.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.demo > 0 {
		g, err := builder.RandomTown(a.demo, builder.WithSeed(a.seed), builder.WithDetour(1.2))
		if err != nil {
			return nil, fmt.Errorf("demo town: %w", err)
		}
		a.log.Info("generated demo town", "nodes", g.Len(), "edges", g.EdgeCount(), "seed", a.seed)
		return g, nil
	}

	opts := []loader.Option{loader.WithLogger(a.log)}
	if a.cfg.Data.Directed {
		opts = append(opts, loader.WithDirected())
	}

	g := core.NewGraph()
	var (
		rep loader.Report
		err error
	)
	if a.cfg.Data.Map != "" {
		rep, err = loader.LoadYAMLFile(a.cfg.Data.Map, g, opts...)
	} else {
		rep, err = loader.LoadFiles(a.cfg.Data.Nodes, a.cfg.Data.Edges, g, opts...)
	}
	if err != nil {
		return nil, err
	}

	a.log.Info("map loaded", "nodes", rep.Nodes, "edges", rep.Edges)
	if rep.Skipped > 0 || rep.Partial > 0 {
		a.log.Warn("map rows ignored", "skipped", rep.Skipped, "one_way_only", rep.Partial)
	}

	return g, nil
}

// lookup resolves a location given by id or name.
func lookup(g *core.Graph, ref string) (int, error) {
	id := g.Resolve(ref)
	if id == core.NotFound {
		return 0, fmt.Errorf("location not found: %q", ref)
	}

	return id, nil
}
