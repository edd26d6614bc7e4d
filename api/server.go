// Package api serves a running game to spectators over HTTP and websockets.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server is the spectator api server.
type Server struct {
	hs  *http.Server
	hub *Hub
}

// New creates a server on addr streaming from hub.
func New(addr string, hub *Hub) *Server {
	s := &Server{hub: hub}

	router := httprouter.New()
	router.GET("/state", s.state)
	router.GET("/socket", s.socket)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.hs = &http.Server{
		Addr: addr,
		Handler: cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet},
		}).Handler(router),
	}
	return s
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() {
	log.Infof("spectator api listening on %s", s.hs.Addr)
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.WithError(err).Error("error while listening")
	}
}

// Shutdown disconnects spectators and stops the http server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return errors.Wrap(s.hs.Shutdown(ctx), "api shutdown")
}

func (s *Server) state(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	m := s.hub.Last()
	if m == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no game in progress"})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("unable to upgrade spectator connection")
		return
	}
	c := s.hub.add(conn)
	log.WithField("remote", r.RemoteAddr).Info("spectator connected")

	// spectators never send anything useful; read until the socket closes
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.hub.unregister(c)
	log.WithField("remote", r.RemoteAddr).Info("spectator disconnected")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}
