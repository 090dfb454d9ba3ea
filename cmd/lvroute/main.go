// SPDX-License-Identifier: MIT
//
// Command lvroute plans routes over a road map.
//
//	lvroute route Home Harbour          shortest route and ASCII map
//	lvroute repl                        interactive route planner
//	lvroute map                         ASCII map of every location
//	lvroute info                        map statistics and warnings
//	lvroute serve --addr :8080          HTTP API with Prometheus metrics
//
// Maps come from CSV files (--nodes, --edges), a YAML map (--map) or a
// generated town (--demo N). Settings may also be given in a YAML config
// file (--config) and LVROUTE_* environment variables; flags win.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
