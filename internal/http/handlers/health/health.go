package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Handler отвечает на проверку доступности сервиса.
type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Проверка доступности
// @Tags Health
// @Produce  plain
// @Success 200 {string} string "Hello World"
// @Router /test [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "Hello World")
}
