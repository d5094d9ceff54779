package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "github.com/binguliki/IntelliLearn/internal/chat/delivery/http"
	"github.com/binguliki/IntelliLearn/internal/middleware"
)

// setupChatDomain wires the chat use case into its HTTP delivery and
// registers the routes at the server root.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC, srv.speech, srv.notesRepo)

	chatHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
