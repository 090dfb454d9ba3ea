// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/router"
	"github.com/katalvlaran/lvroute/visual"
)

// repl reads start/end pairs from in until "quit", "exit" or EOF and prints
// each route with its map to out.
func repl(in io.Reader, out io.Writer, g *core.Graph, r *router.Router) error {
	sc := bufio.NewScanner(in)

	// ask prompts and returns the next line; ok is false on quit or EOF.
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return "", false
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "quit", "exit":
			return "", false
		}
		return line, true
	}

	fmt.Fprintf(out, "%d locations loaded. Type 'quit' to exit.\n", g.Len())
	for {
		from, ok := ask("\nStart location: ")
		if !ok {
			break
		}
		if from == "" {
			continue
		}
		to, ok := ask("End location: ")
		if !ok {
			break
		}

		start, end := g.Resolve(from), g.Resolve(to)
		if start == core.NotFound || end == core.NotFound {
			fmt.Fprintln(out, "Error: location not found.")
			continue
		}

		res := r.Route(g, start, end)
		if err := visual.Describe(out, g, res); err != nil {
			return err
		}
		if res.Success {
			if err := visual.ASCII(out, g, res.Path); err != nil {
				return err
			}
		}
	}

	return sc.Err()
}
