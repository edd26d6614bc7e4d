package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/neonsnake/engine/api"
	"github.com/neonsnake/engine/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 2 * time.Second

func prometheus() {
	if promListen == "" {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

// spectate starts the spectator api when requested. The returned hub is nil
// when spectating is disabled; stop is always safe to call.
func spectate() (hub *api.Hub, stop func()) {
	if spectateAddr == "" {
		return nil, func() {}
	}
	hub = api.NewHub(config.SpectateRate, config.SpectateBurst)
	srv := api.New(spectateAddr, hub)
	go srv.WaitForExit()

	return hub, func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("spectator api shutdown")
		}
	}
}
