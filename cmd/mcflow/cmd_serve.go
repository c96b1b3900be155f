package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	mbp "github.com/katalvlaran/mcflow/mainboilerplate"
	"github.com/katalvlaran/mcflow/metrics"
)

const serveLongDesc = `
Serve the solvers over HTTP:

  POST /v1/mincost                     Body: instance (YAML or JSON). Returns the solution as YAML.
  POST /v1/maxflow?source=S&sink=T     Body: network. Returns the max-flow value and edge flows.
  GET  /metrics                        Prometheus metrics.
  GET  /debug/ready                    Liveness check.

Each request is solved on its own copy of the submitted network. Recent
responses are cached by request content; --cache-size 0 disables the cache.
`

type cmdServe struct {
	SolverConfig
	Addr      string `long:"addr" env:"ADDR" default:":8080" description:"Address to listen on"`
	CacheSize int    `long:"cache-size" env:"CACHE_SIZE" default:"256" description:"Number of responses to cache"`
	MaxBody   int64  `long:"max-body" env:"MAX_BODY" default:"8388608" description:"Maximum request body size in bytes"`
}

func (cmd *cmdServe) Execute([]string) error {
	mbp.InitLog(baseCfg.Log)
	prometheus.MustRegister(metrics.SolverCollectors()...)

	var srv, err = newServer(cmd.SolverConfig, cmd.CacheSize, cmd.MaxBody, prometheus.DefaultGatherer)
	if err != nil {
		return err
	}
	var httpSrv = &http.Server{
		Addr:              cmd.Addr,
		Handler:           srv.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		var shutdownCtx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.WithField("err", err).Warn("shutdown failed")
		}
	}()

	log.WithFields(log.Fields{
		"addr":      cmd.Addr,
		"algorithm": cmd.Algorithm,
		"version":   mbp.Version,
		"buildDate": mbp.BuildDate,
	}).Info("serving")

	if err = httpSrv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	log.Info("goodbye")
	return nil
}
