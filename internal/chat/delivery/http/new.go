package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/notes"
	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Reset(c *gin.Context)
	Transcribe(c *gin.Context)
	Notes(c *gin.Context)
}

// Transcriber is the slice of the speech loader the handler depends on.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

type handler struct {
	l      pkgLog.Logger
	uc     chat.UseCase
	speech Transcriber
	notes  notes.Repository
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase, speech Transcriber, notesRepo notes.Repository) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		speech: speech,
		notes:  notesRepo,
	}
}
