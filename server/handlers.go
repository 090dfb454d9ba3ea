// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvroute/core"
)

type nodeJSON struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type edgeJSON struct {
	To       int     `json:"to"`
	Distance float64 `json:"distance"`
}

type nodeDetailJSON struct {
	nodeJSON
	Edges []edgeJSON `json:"edges"`
}

type routeJSON struct {
	Success   bool       `json:"success"`
	Path      []nodeJSON `json:"path"`
	TotalDist float64    `json:"total_dist"`
	Explored  int        `json:"explored"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func toJSON(n *core.Node) nodeJSON {
	return nodeJSON{ID: n.ID(), Name: n.Name(), X: n.X(), Y: n.Y()}
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		s.metrics.requests.WithLabelValues(resultBadRequest).Inc()
		s.writeJSON(w, http.StatusBadRequest, errorJSON{Error: "from and to are required"})
		return
	}

	start, ok := s.resolve(from)
	if !ok {
		s.notFound(w, from)
		return
	}
	end, ok := s.resolve(to)
	if !ok {
		s.notFound(w, to)
		return
	}

	began := time.Now()
	res := s.router.Route(s.graph, start, end)
	s.metrics.duration.Observe(time.Since(began).Seconds())
	s.metrics.explored.Observe(float64(res.Explored))

	out := routeJSON{
		Success:   res.Success,
		Path:      make([]nodeJSON, 0, len(res.Path)),
		TotalDist: res.TotalDist,
		Explored:  res.Explored,
	}
	for _, id := range res.Path {
		if n, ok := s.graph.Node(id); ok {
			out.Path = append(out.Path, toJSON(n))
		}
	}

	result := resultFound
	if !res.Success {
		result = resultNoRoute
	}
	s.metrics.requests.WithLabelValues(result).Inc()
	s.log.Debug("route", "from", start, "to", end, "success", res.Success,
		"total", res.TotalDist, "explored", res.Explored)
	s.writeJSON(w, http.StatusOK, out)
}

// resolve maps a query value to a node id (see core.Graph.Resolve).
func (s *Server) resolve(v string) (int, bool) {
	id := s.graph.Resolve(v)

	return id, id != core.NotFound
}

func (s *Server) notFound(w http.ResponseWriter, v string) {
	s.metrics.requests.WithLabelValues(resultNotFound).Inc()
	s.writeJSON(w, http.StatusNotFound, errorJSON{Error: fmt.Sprintf("location not found: %q", v)})
}

func (s *Server) handleNodes(w http.ResponseWriter, _ *http.Request) {
	ids := s.graph.Nodes().IDs()
	out := make([]nodeJSON, 0, len(ids))
	for _, id := range ids {
		n, _ := s.graph.Node(id)
		out = append(out, toJSON(n))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorJSON{Error: "bad id"})
		return
	}
	n, ok := s.graph.Node(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorJSON{Error: fmt.Sprintf("node %d not found", id)})
		return
	}

	out := nodeDetailJSON{nodeJSON: toJSON(n), Edges: make([]edgeJSON, 0, n.Degree())}
	n.RangeEdges(func(e core.Edge) bool {
		out.Edges = append(out.Edges, edgeJSON{To: e.To, Distance: e.Weight})
		return true
	})
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "nodes": s.graph.Len()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", "err", err)
	}
}

// statusRecorder captures the status code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		began := time.Now()
		next.ServeHTTP(rec, r)
		s.log.Debug("http", "method", r.Method, "path", r.URL.Path,
			"status", rec.status, "duration", time.Since(began))
	})
}
