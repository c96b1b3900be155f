package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/metrics"
	"github.com/katalvlaran/mcflow/mincost"
	"github.com/katalvlaran/mcflow/netfile"
)

const diamondDoc = `
vertices:
- {id: A, balance: 2}
- {id: B}
- {id: C}
- {id: D, balance: -2}
edges:
- {from: A, to: C, capacity: 2, cost: 5}
- {from: C, to: D, capacity: 2, cost: 5}
- {from: A, to: B, capacity: 2, cost: 1}
- {from: B, to: D, capacity: 2, cost: 1}
`

const unbalancedDoc = `
vertices:
- {id: S, balance: 3}
- {id: T, balance: -2}
edges:
- {from: S, to: T, capacity: 5, cost: 1}
`

type ServerSuite struct {
	suite.Suite
	srv *httptest.Server
}

func (s *ServerSuite) SetupTest() {
	var reg = prometheus.NewRegistry()
	reg.MustRegister(metrics.SolverCollectors()...)

	var handler, err = newServer(SolverConfig{Algorithm: "edmonds-karp"}, 8, 1<<20, reg)
	require.NoError(s.T(), err)
	s.srv = httptest.NewServer(handler.handler())
}

func (s *ServerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ServerSuite) post(path, body string) (*http.Response, string) {
	var resp, err = http.Post(s.srv.URL+path, yamlContentType, strings.NewReader(body))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp, string(b)
}

func (s *ServerSuite) TestMinCost() {
	var resp, body = s.post("/v1/mincost", diamondDoc)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, body)
	require.Equal(s.T(), yamlContentType, resp.Header.Get("Content-Type"))
	require.NotEmpty(s.T(), resp.Header.Get(requestIDHeader))
	require.Empty(s.T(), resp.Header.Get(cacheHeader))

	n, err := netfile.Decode([]byte(body))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), *n.Cost)
	require.Equal(s.T(), int64(0), n.Edges[0].Flow)
	require.Equal(s.T(), int64(2), n.Edges[2].Flow)
	require.Len(s.T(), n.Vertices, 4, "no transient vertices in the response")

	// A repeated request is served from the cache.
	again, againBody := s.post("/v1/mincost", diamondDoc)
	require.Equal(s.T(), "hit", again.Header.Get(cacheHeader))
	require.Equal(s.T(), body, againBody)
	require.NotEqual(s.T(), resp.Header.Get(requestIDHeader), again.Header.Get(requestIDHeader))
}

func (s *ServerSuite) TestMinCostJSON() {
	var resp, body = s.post("/v1/mincost",
		`{"vertices": [{"id": "a", "balance": 1}, {"id": "b", "balance": -1}], "edges": [{"from": "a", "to": "b", "capacity": 1, "cost": 7}]}`)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, body)
	require.Contains(s.T(), body, "cost: 7")
}

func (s *ServerSuite) TestMinCostErrors() {
	var resp, body = s.post("/v1/mincost", unbalancedDoc)
	require.Equal(s.T(), http.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(s.T(), body, "balances do not sum to zero")

	resp, _ = s.post("/v1/mincost", "vertices: [{id: A, colour: red}]")
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.post("/v1/mincost", "vertices: [{id: A}]\nedges: [{from: A, to: B, capacity: 1, cost: 1}]")
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	get, err := http.Get(s.srv.URL + "/v1/mincost")
	require.NoError(s.T(), err)
	get.Body.Close()
	require.Equal(s.T(), http.StatusMethodNotAllowed, get.StatusCode)
}

func (s *ServerSuite) TestMaxFlow() {
	var resp, body = s.post("/v1/maxflow?source=A&sink=D", diamondDoc)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, body)

	var out struct {
		Value int64          `yaml:"value"`
		Edges []netfile.Edge `yaml:"edges"`
	}
	require.NoError(s.T(), yaml.Unmarshal([]byte(body), &out))
	require.Equal(s.T(), int64(4), out.Value)
	require.Len(s.T(), out.Edges, 4)

	resp, _ = s.post("/v1/maxflow?source=A&sink=Z", diamondDoc)
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
	resp, _ = s.post("/v1/maxflow?sink=D", diamondDoc)
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ServerSuite) TestMetrics() {
	s.post("/v1/mincost", diamondDoc)

	var resp, err = http.Get(s.srv.URL + "/metrics")
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Contains(s.T(), string(b), "mcflow_solves_total")
	require.Contains(s.T(), string(b), "mcflow_cycles_canceled_total")

	ready, err := http.Get(s.srv.URL + "/debug/ready")
	require.NoError(s.T(), err)
	ready.Body.Close()
	require.Equal(s.T(), http.StatusOK, ready.StatusCode)
}

func TestBodyLimit(t *testing.T) {
	var handler, err = newServer(SolverConfig{Algorithm: "dinic"}, 0, 16, prometheus.NewRegistry())
	require.NoError(t, err)
	var srv = httptest.NewServer(handler.handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/mincost", yamlContentType, strings.NewReader(diamondDoc))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestReadStatus(t *testing.T) {
	require.Equal(t, http.StatusRequestEntityTooLarge, readStatus(&http.MaxBytesError{Limit: 16}))
	require.Equal(t, http.StatusRequestEntityTooLarge,
		readStatus(fmt.Errorf("reading body: %w", &http.MaxBytesError{Limit: 16})))
	require.Equal(t, http.StatusBadRequest, readStatus(io.ErrUnexpectedEOF))
}

func TestStatusCode(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want int
	}{
		{&mincost.UnbalancedInstanceError{Sum: 1}, http.StatusUnprocessableEntity},
		{&mincost.InfeasibleFlowError{Required: 5, Achieved: 3}, http.StatusUnprocessableEntity},
		{flow.ErrSinkNotFound, http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{context.Canceled, statusClientClosedRequest},
		{fmt.Errorf("solve: %w", context.Canceled), statusClientClosedRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	} {
		require.Equal(t, tc.want, statusCode(tc.err), "%v", tc.err)
	}
}

func TestNewServerRejectsUnknownAlgorithm(t *testing.T) {
	var _, err = newServer(SolverConfig{Algorithm: "simplex"}, 0, 1, prometheus.NewRegistry())
	require.Error(t, err)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
