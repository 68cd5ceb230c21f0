package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/opencnc/intake/docs" // swagger spec registration
	"github.com/opencnc/intake/internal/analyzer"
	"github.com/opencnc/intake/internal/interfaces"
	"github.com/opencnc/intake/internal/logging"
)

// Server is the HTTP + WebSocket API surface for the intake service.
type Server struct {
	cfg      Config
	analyzer interfaces.Analyzer
	router   chi.Router
	upgrader websocket.Upgrader
	logger   interfaces.Logger
	feed     *feed
}

// NewServer creates a Server with its own Analyzer. A nil logger gets a
// stdout logger.
func NewServer(cfg Config, logger interfaces.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}
	if err := (&cfg).applyDefaults(); err != nil {
		return nil, err
	}

	acfg := analyzer.DefaultConfig()
	if cfg.MaxFileBytes > 0 {
		acfg.MaxFileBytes = cfg.MaxFileBytes
	}
	an, err := analyzer.NewDefaultAnalyzer(acfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating analyzer: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		analyzer: an,
		router:   chi.NewRouter(),
		logger:   logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
		feed: newFeed(logger),
	}

	s.routes()
	return s, nil
}

func (c *Config) applyDefaults() error {
	def := DefaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = def.MaxUploadBytes
	}
	return c.Validate()
}

// Analyzer returns the underlying analyzer for advanced use (tests, etc.).
func (s *Server) Analyzer() interfaces.Analyzer {
	return s.analyzer
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/analyze", s.optionsHandler("POST"))
	r.Options("/formats", s.optionsHandler("GET"))
	r.Options("/formats/{ext}", s.optionsHandler("GET"))
	r.Options("/materials", s.optionsHandler("GET"))
	r.Options("/materials/{slug}", s.optionsHandler("GET"))
	r.Options("/ws/intake", s.optionsHandler("GET"))

	// Analysis
	r.Post("/analyze", s.handleAnalyze)

	// Format knowledge base
	r.Get("/formats", s.handleListFormats)
	r.Get("/formats/{ext}", s.handleGetFormat)

	// Material knowledge base
	r.Get("/materials", s.handleListMaterials)
	r.Get("/materials/{slug}", s.handleGetMaterial)

	// WebSocket feed of completed analyses
	r.Get("/ws/intake", s.handleIntakeFeed)

	// API docs
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []interfaces.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, interfaces.Field{Key: "query", Value: q})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close shuts down the feed and the analyzer.
func (s *Server) Close() {
	if s.feed != nil {
		s.feed.Close()
	}
	if s.analyzer != nil {
		_ = s.analyzer.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}
