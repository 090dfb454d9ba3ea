// Package lvroute is a small road-network route planner: load a map of named
// locations joined by roads, then ask for the shortest route between two of
// them.
//
// What is inside?
//
//	core/        the in-memory map: locations (id, name, x, y) and weighted one-way roads
//	router/      Dijkstra and A* (Euclidean heuristic) shortest-route search
//	bfs/         fewest-road search and reachability checks
//	loader/      CSV ("id,name,x,y" / "from,to,distance") and YAML map loaders
//	builder/     synthetic maps: street grids and random towns
//	visual/      ASCII map rendering and route summaries
//	config/      YAML + environment configuration
//	server/      HTTP JSON API with Prometheus metrics
//	cmd/lvroute  the command-line front end (route, repl, map, info, serve)
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddNode(1, "Home", 0, 0)
//	g.AddNode(2, "Market", 3, 4)
//	_ = g.AddEdge(1, 2, 5)
//
//	res := router.Route(g, 1, 2, router.WithAStar())
//	// res.Path == []int{1, 2}, res.TotalDist == 5
//
// A graph is built once and then only read: any number of goroutines may
// route over it concurrently as long as nobody mutates it.
package lvroute
