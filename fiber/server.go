// Package fiber serves the cover letter web API with Fiber.
package fiber

import (
	"context"
	"io"
	"net"
	"os"
	"time"

	"github.com/fwojciec/coverletter"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server limits.
const (
	DefaultBodyLimit    = 10 << 20
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 3 * time.Minute
)

// Config holds the services behind the API. Generation may be nil when no
// model provider is configured; every other service is required.
type Config struct {
	JobScraper     coverletter.JobScraper
	CompanyCrawler coverletter.CompanyCrawler
	Generation     coverletter.GenerationService
	Sessions       coverletter.SessionStore
	Renderer       coverletter.DocumentRenderer
	Profile        *coverletter.Profile

	// StaticDir, if set, is served at the root path.
	StaticDir string

	// LogOutput receives one access log line per request. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Server is the HTTP API.
type Server struct {
	app      *fiber.App
	cfg      Config
	validate *validator.Validate
}

// NewServer creates a Server and registers its routes.
func NewServer(cfg Config) *Server {
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}

	s := &Server{
		cfg:      cfg,
		validate: newValidator(),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "coverletter",
		BodyLimit:             DefaultBodyLimit,
		ReadTimeout:           DefaultReadTimeout,
		WriteTimeout:          DefaultWriteTimeout,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     cfg.LogOutput,
	}))
	s.app.Use(cors.New())

	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/status", s.handleStatus)
	api.Get("/resume", s.handleResume)
	api.Post("/scrape-job", s.handleScrapeJob)
	api.Post("/scrape-company", s.handleScrapeCompany)
	api.Post("/generate", s.handleGenerate)
	api.Get("/download/cover-letter/:sessionId", s.handleDownloadCoverLetter)
	api.Get("/download/bullets/:sessionId", s.handleDownloadBullets)

	if cfg.StaticDir != "" {
		s.app.Static("/", cfg.StaticDir)
	}
	return s
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve serves the API on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
