package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/mcflow/core"
	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/mincost"
	"github.com/katalvlaran/mcflow/netfile"
)

const (
	requestIDHeader = "X-Request-Id"
	cacheHeader     = "X-Mcflow-Cache"
	yamlContentType = "application/yaml"

	// statusClientClosedRequest answers a request whose client went away
	// before its solve finished (nginx convention).
	statusClientClosedRequest = 499
)

// server answers solver requests. cache is nil when caching is disabled.
type server struct {
	cfg      SolverConfig
	alg      flow.Algorithm
	cache    *lru.Cache
	maxBody  int64
	gatherer prometheus.Gatherer
}

// maxFlowResponse is the body returned by /v1/maxflow.
type maxFlowResponse struct {
	Value           int64 `yaml:"value"`
	netfile.Network `yaml:",inline"`
}

func newServer(cfg SolverConfig, cacheSize int, maxBody int64, gatherer prometheus.Gatherer) (*server, error) {
	var alg, err = flow.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	var s = &server{cfg: cfg, alg: alg, maxBody: maxBody, gatherer: gatherer}
	if cacheSize > 0 {
		if s.cache, err = lru.New(cacheSize); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *server) handler() http.Handler {
	var mux = http.NewServeMux()
	mux.HandleFunc("/v1/mincost", s.post(s.solveMinCost))
	mux.HandleFunc("/v1/maxflow", s.post(s.solveMaxFlow))
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/debug/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// solveFunc turns a decoded network into a response document.
type solveFunc func(ctx context.Context, r *http.Request, g *core.Graph) (interface{}, error)

// post adapts a solveFunc to a POST handler with request IDs, body limits,
// caching, and error mapping.
func (s *server) post(solve solveFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id = uuid.New().String()
		var logger = log.WithFields(log.Fields{"request": id, "path": r.URL.Path})
		w.Header().Set(requestIDHeader, id)

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
		if err != nil {
			http.Error(w, err.Error(), readStatus(err))
			return
		}

		var key = cacheKey(r, body)
		if s.cache != nil {
			if cached, ok := s.cache.Get(key); ok {
				w.Header().Set(cacheHeader, "hit")
				writeYAML(w, cached.([]byte))
				return
			}
		}

		network, err := netfile.Decode(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		g, err := network.Graph()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var ctx, cancel = s.cfg.context(r.Context())
		defer cancel()

		doc, err := solve(ctx, r, g)
		if err != nil {
			var code = statusCode(err)
			var entry = logger.WithFields(log.Fields{"err": err, "status": code})
			if code == statusClientClosedRequest {
				entry.Debug("client went away")
			} else {
				entry.Info("request failed")
			}
			http.Error(w, err.Error(), code)
			return
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if s.cache != nil {
			s.cache.Add(key, out)
		}
		logger.Debug("request solved")
		writeYAML(w, out)
	}
}

func (s *server) solveMinCost(ctx context.Context, r *http.Request, g *core.Graph) (interface{}, error) {
	var res, err = mincost.CycleCanceling(ctx, g,
		mincost.WithMaxFlowAlgorithm(s.alg),
		mincost.WithLogger(log.WithField("path", r.URL.Path)))
	if err != nil {
		return nil, err
	}
	return netfile.FromGraph(res.Graph, true), nil
}

func (s *server) solveMaxFlow(ctx context.Context, r *http.Request, g *core.Graph) (interface{}, error) {
	var q = r.URL.Query()
	var value, result, err = flow.Run(ctx, s.alg, g, q.Get("source"), q.Get("sink"),
		&flow.FlowOptions{Logger: log.WithField("path", r.URL.Path)})
	if err != nil {
		return nil, err
	}
	return maxFlowResponse{Value: value, Network: *netfile.FromGraph(result, false)}, nil
}

func cacheKey(r *http.Request, body []byte) string {
	var h = sha256.New()
	io.WriteString(h, r.URL.Path)
	io.WriteString(h, "?")
	io.WriteString(h, r.URL.RawQuery)
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// readStatus maps a request body read error to an HTTP status.
func readStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// statusCode maps a solver error to an HTTP status.
func statusCode(err error) int {
	switch {
	case errors.Is(err, mincost.ErrUnbalancedInstance),
		errors.Is(err, mincost.ErrInfeasibleFlow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, flow.ErrSourceNotFound),
		errors.Is(err, flow.ErrSinkNotFound),
		errors.Is(err, flow.ErrSameSourceSink):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeYAML(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", yamlContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
