package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	syncDomain "gtd-task-management/internal/sync"
	"gtd-task-management/pkg/datemath"
	"gtd-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure shared by the domains
	db       *sql.DB
	dateMath *datemath.Parser
	apiKey   string

	// Remote sync webhook (optional)
	webhookHandler syncDomain.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	DateMath *datemath.Parser
	APIKey   string

	// WebhookHandler is nil when remote sync is not configured.
	WebhookHandler syncDomain.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		dateMath:       cfg.DateMath,
		apiKey:         cfg.APIKey,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}

// Run wires the routes and serves until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
