package api

import (
	"ChiwawaRelay/internal/config"
	"ChiwawaRelay/internal/http-server/handlers/delivery"
	"ChiwawaRelay/internal/http-server/handlers/errors"
	"ChiwawaRelay/internal/http-server/handlers/message"
	"ChiwawaRelay/internal/http-server/handlers/webhook"
	"ChiwawaRelay/internal/http-server/middleware/authenticate"
	"ChiwawaRelay/internal/http-server/middleware/reqlog"
	"ChiwawaRelay/internal/http-server/middleware/timeout"
	"ChiwawaRelay/internal/lib/sl"
	"ChiwawaRelay/internal/ws"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	ws.Authenticator
	webhook.Core
	message.Core
	delivery.Core
}

// NewRouter wires every route of the relay. hub may be nil, in which case the
// live feed is not served.
func NewRouter(log *slog.Logger, handler Handler, hub *ws.Hub) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(reqlog.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Group(func(r chi.Router) {
		r.Use(timeout.Timeout(5))
		r.Post("/chiwawa/webhook", webhook.Receive(log, handler))
	})

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(timeout.Timeout(15))
		v1.Use(render.SetContentType(render.ContentTypeJSON))
		v1.Use(authenticate.New(log, handler))

		v1.Post("/messages", message.Send(log, handler))
		v1.Get("/deliveries", delivery.List(log, handler))
	})

	if hub != nil {
		router.Get("/ws", ws.Serve(hub, handler, log))
	}

	return router
}

// New starts the blocking api server.
func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:           NewRouter(log, handler, hub),
		ErrorLog:          httpLog,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
