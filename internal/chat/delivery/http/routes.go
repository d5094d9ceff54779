package http

import (
	"github.com/gin-gonic/gin"

	"github.com/binguliki/IntelliLearn/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/reset", h.Reset)
	rg.POST("/transcribe", mw.RateLimit(), h.Transcribe)
	rg.GET("/notes", h.Notes)
}
