package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/lojasmm/gadgetchat/internal/logging"
)

// NewRouter mounts the page, form and API routes. allowedOrigin applies to
// the /api routes only.
func NewRouter(h *Handler, allowedOrigin string, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Requests(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", h.HandleIndex)
	r.Post("/send", h.HandleSend)
	r.Post("/reset", h.HandleReset)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{allowedOrigin},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
			ExposedHeaders:   []string{"X-Session-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Get("/transcript", h.HandleTranscript)
		r.Post("/messages", h.HandleMessage)
	})

	return r
}
