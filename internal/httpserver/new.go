package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Aashutosh2004011/TaskManagement-Backend/config"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/classifier"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/datemath"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Task domain dependencies
	postgresDB *sql.DB
	classifier *classifier.Classifier
	dateMath   *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	AppConfig   *config.Config
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Classifier *classifier.Classifier
	DateMath   *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		cfg:         cfg.AppConfig,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		classifier:  cfg.Classifier,
		dateMath:    cfg.DateMath,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.classifier == nil {
		return errors.New("classifier is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
