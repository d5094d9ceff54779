package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/middleware"
	"github.com/binguliki/IntelliLearn/internal/notes"
	"github.com/binguliki/IntelliLearn/internal/speech"
	"github.com/binguliki/IntelliLearn/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	chatUC    chat.UseCase
	speech    *speech.Loader
	notesRepo notes.Repository
	mw        middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatUC     chat.UseCase
	Speech     *speech.Loader
	NotesRepo  notes.Repository
	Middleware middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatUC:      cfg.ChatUC,
		speech:      cfg.Speech,
		notesRepo:   cfg.NotesRepo,
		mw:          cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.speech == nil {
		return errors.New("speech loader is required")
	}
	if srv.notesRepo == nil {
		return errors.New("notes repository is required")
	}
	return nil
}
