// Package loader populates a core.Graph from map files.
//
// Two formats are supported:
//
//	CSV  – a nodes file with rows "id,name,x,y" and an edges file with rows
//	       "from,to,distance". Blank lines and lines starting with '#' are
//	       ignored. Edges are two-way roads by default: each row inserts
//	       from→to and to→from. WithDirected() inserts from→to only.
//	YAML – a single document:
//
//	         nodes:
//	           - {id: 1, name: Home, x: 0, y: 0}
//	         edges:
//	           - {from: 1, to: 2, distance: 3.5}
//	           - {from: 2, to: 3, distance: 1, oneway: true}
//
// Malformed rows never abort a load. They are skipped, counted in the
// Report and logged at debug level, so one bad line costs one road, not the
// whole map. Only I/O failures and YAML syntax errors are returned as errors.
//
// Nodes must be loaded before the edges that leave them: an edge whose
// source id is unknown is skipped (core.ErrNodeNotFound). Targets may be
// unknown; the resulting dangling edges are kept, as the core store allows.
package loader
