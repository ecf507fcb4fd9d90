package routes

import (
	"net/http"

	"github.com/chalkboard-dev/chalkboard/internal/app"
	"github.com/chalkboard-dev/chalkboard/internal/handler"
	"github.com/chalkboard-dev/chalkboard/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	message := handler.NewMessageHandler(app.MessageService)
	attachment := handler.NewAttachmentHandler(app.AttachmentService)
	health := handler.NewHealthHandler(app.DB)

	// One limiter shared by all anonymous write endpoints
	limitWrites := middleware.RateLimitWrites(app.Cfg.RateLimitRequests, app.Cfg.RateLimitWindow)

	mux := http.NewServeMux()

	// Messages. The board id is a trailing wildcard so an empty id reaches
	// the handler (400) instead of falling through to a 404; unsupported
	// methods on these paths get the ServeMux 405.
	mux.HandleFunc("GET /api/messages/{boardId...}", message.List)
	mux.HandleFunc("POST /api/messages/{boardId...}", limitWrites(message.Create))

	// Attachment brokers (stateless, independent of the message handler)
	mux.HandleFunc("POST /api/attachments/upload", limitWrites(attachment.Upload))
	mux.HandleFunc("GET /api/attachments/download", attachment.Download)

	// Health
	mux.HandleFunc("GET /healthz", health.Health)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
