// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/router"
	"github.com/katalvlaran/lvroute/server"
	"github.com/katalvlaran/lvroute/visual"
)

func newRouteCmd(a *app) *cobra.Command {
	var noMap bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two locations",
		Long: `Print the shortest route between two locations, given by id or by
name (case-insensitive), followed by an ASCII map of the route.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			start, err := lookup(g, args[0])
			if err != nil {
				return err
			}
			end, err := lookup(g, args[1])
			if err != nil {
				return err
			}

			res := router.New(a.cfg.RouterOptions()...).Route(g, start, end)
			a.log.Debug("route", "from", start, "to", end, "explored", res.Explored)
			if err := visual.Describe(a.out, g, res); err != nil {
				return err
			}
			if noMap || !res.Success {
				return nil
			}

			return visual.ASCII(a.out, g, res.Path)
		},
	}
	cmd.Flags().BoolVar(&noMap, "no-map", false, "print the summary only")

	return cmd
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Plan routes interactively",
		Long: `Read pairs of start and end locations from standard input and print
the route for each pair. Enter "quit" (or end the input) to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			return repl(a.in, a.out, g, router.New(a.cfg.RouterOptions()...))
		},
	}
}

func newMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Draw every location as an ASCII map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			return visual.ASCII(a.out, g, nil)
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print map statistics and data warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			s := g.Stats()
			fmt.Fprintf(a.out, "nodes:            %d\n", s.Nodes)
			fmt.Fprintf(a.out, "edges:            %d\n", s.Edges)
			fmt.Fprintf(a.out, "self-loops:       %d\n", s.SelfLoops)
			fmt.Fprintf(a.out, "dangling edges:   %d\n", s.DanglingEdges)
			fmt.Fprintf(a.out, "negative weights: %d\n", s.NegativeWeight)
			if err := reachability(a.out, g); err != nil {
				return err
			}

			for _, w := range findings(core.Validate(g)) {
				fmt.Fprintf(a.out, "warning: %s\n", w)
			}

			return nil
		},
	}
}

// reachability reports how many locations the first loaded location can
// reach by road.
func reachability(w io.Writer, g *core.Graph) error {
	var first *core.Node
	g.Nodes().Range(func(n *core.Node) bool {
		first = n
		return false
	})
	if first == nil {
		return nil
	}

	lost, err := bfs.Unreachable(g, first.ID())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "reachable from %s: %d/%d\n", first.Name(), g.Len()-len(lost), g.Len())

	return nil
}

// findings flattens an errors.Join tree into its messages.
func findings(err error) []string {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range j.Unwrap() {
			out = append(out, findings(e)...)
		}
		return out
	}

	return []string{err.Error()}
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route planner over HTTP",
		Long: `Serve the route planner over HTTP until SIGINT or SIGTERM.

Endpoints:
  GET /api/route?from=&to=   route by id or name
  GET /api/nodes             all locations
  GET /api/nodes/{id}        one location and its roads
  GET /healthz               liveness
  GET /metrics               Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if err := core.Validate(g); err != nil {
				a.log.Warn("map has data problems", "count", len(findings(err)))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(g, router.New(a.cfg.RouterOptions()...),
				server.WithLogger(a.log),
				server.WithShutdownTimeout(a.cfg.Server.ShutdownTimeout))

			return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config, :8080)")

	return cmd
}
