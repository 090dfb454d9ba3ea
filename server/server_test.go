package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/router"
	"github.com/katalvlaran/lvroute/server"
)

type node struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type route struct {
	Success   bool    `json:"success"`
	Path      []node  `json:"path"`
	TotalDist float64 `json:"total_dist"`
	Explored  int     `json:"explored"`
}

// town: Home(1)↔Market(2) 5, Market↔Park(3) 5, Home→Park 12, Island(4) unreachable.
func town(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddNode(3, "Park", 6, 0)
	g.AddNode(1, "Home", 0, 0)
	g.AddNode(2, "Market", 3, 4)
	g.AddNode(4, "Island", 9, 9)
	for _, e := range []struct {
		u, v int
		w    float64
	}{{1, 2, 5}, {2, 1, 5}, {2, 3, 5}, {3, 2, 5}, {1, 3, 12}} {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestRoute_ByName(t *testing.T) {
	h := server.New(town(t), router.New(router.WithAStar())).Handler()

	rec := get(t, h, "/api/route?from=home&to=%20PARK%20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got route
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 10.0, got.TotalDist)
	assert.Equal(t, []node{
		{ID: 1, Name: "Home", X: 0, Y: 0},
		{ID: 2, Name: "Market", X: 3, Y: 4},
		{ID: 3, Name: "Park", X: 6, Y: 0},
	}, got.Path)
	assert.Positive(t, got.Explored)
}

func TestRoute_ByID(t *testing.T) {
	h := server.New(town(t), nil).Handler()

	var got route
	rec := get(t, h, "/api/route?from=1&to=Market")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 5.0, got.TotalDist)
	assert.Len(t, got.Path, 2)
}

func TestRoute_NoPath(t *testing.T) {
	h := server.New(town(t), nil).Handler()

	rec := get(t, h, "/api/route?from=Home&to=Island")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"path":[],"total_dist":0,"explored":3}`, rec.Body.String())
}

func TestRoute_Errors(t *testing.T) {
	h := server.New(town(t), nil).Handler()

	rec := get(t, h, "/api/route?from=Home")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/api/route?from=Home&to=Atlantis")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Atlantis")

	rec = get(t, h, "/api/route?from=99&to=1")
	assert.Equal(t, http.StatusNotFound, rec.Code, "unknown numeric id")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/route?from=1&to=2", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNodes(t *testing.T) {
	h := server.New(town(t), nil).Handler()

	rec := get(t, h, "/api/nodes")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 4)
	for i, n := range got {
		assert.Equal(t, i+1, n.ID, "ascending ids")
	}

	rec = get(t, h, "/api/nodes/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":2,"name":"Market","x":3,"y":4,
		"edges":[{"to":1,"distance":5},{"to":3,"distance":5}]}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/nodes/99").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/nodes/abc").Code)
}

func TestHealth(t *testing.T) {
	rec := get(t, server.New(town(t), nil).Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","nodes":4}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	s := server.New(town(t), nil)
	h := s.Handler()

	get(t, h, "/api/route?from=Home&to=Park")
	get(t, h, "/api/route?from=Home&to=Park")
	get(t, h, "/api/route?from=Home&to=Island")
	get(t, h, "/api/route?from=Home&to=Nowhere")
	get(t, h, "/api/route")

	body := get(t, h, "/metrics").Body.String()
	assert.Contains(t, body, `lvroute_route_requests_total{result="found"} 2`)
	assert.Contains(t, body, `lvroute_route_requests_total{result="no_route"} 1`)
	assert.Contains(t, body, `lvroute_route_requests_total{result="not_found"} 1`)
	assert.Contains(t, body, `lvroute_route_requests_total{result="bad_request"} 1`)
	assert.Contains(t, body, "lvroute_route_duration_seconds_count 3")
	assert.Contains(t, body, "lvroute_route_explored_nodes_count 3")

	n, err := testutil.GatherAndCount(s.Registry(), "lvroute_route_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// Registries are per server: a second server starts from zero.
	other := get(t, server.New(town(t), nil).Handler(), "/metrics").Body.String()
	assert.NotContains(t, other, `result="found"`)
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s := server.New(town(t), nil, server.WithShutdownTimeout(time.Second))
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, strings.Contains(string(body), `"ok"`))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_BadAddr(t *testing.T) {
	s := server.New(nil, nil)
	err := s.ListenAndServe(context.Background(), "256.0.0.1:bogus")
	assert.Error(t, err)
}
