package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/BoobaMarket_Go/docs"
	"github.com/osse101/BoobaMarket_Go/internal/database"
	"github.com/osse101/BoobaMarket_Go/internal/handler"
	"github.com/osse101/BoobaMarket_Go/internal/marketplace"
	"github.com/osse101/BoobaMarket_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port               int
	APIKey             string
	TrustedProxies     []string
	CORSAllowedOrigins []string
	Version            string
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	market     marketplace.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, market marketplace.Service) *Server {
	if opts.APIKey == "" {
		slog.Warn(LogMsgAPIKeyDisabled)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, dbPool, market),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		dbPool: dbPool,
		market: market,
	}
}

func newRouter(opts Options, dbPool database.Pool, market marketplace.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(RateLimitRequests, RateLimitWindow)

	r.Use(CORSMiddleware(opts.CORSAllowedOrigins))
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/market/listings", func(r chi.Router) {
			r.Get("/", handler.HandleListListings(market))
			r.Post("/", handler.HandleCreateListing(market))
			r.Route("/{"+handler.ParamListingID+"}", func(r chi.Router) {
				r.Delete("/", handler.HandleCancelListing(market))
				r.Post("/buy", handler.HandleBuyListing(market))
			})
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(market))
			r.Post("/items", handler.HandleAddItem(market))
			r.Put("/balance", handler.HandleSetBalance(market))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the routed middleware stack
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
