// Package logout реализует HTTP-обработчик выхода: удаляет сессионную cookie.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
)

// Handler обрабатывает выход пользователя.
type Handler struct {
	log     *slog.Logger
	cookies *middlewarectx.SessionCookies
}

// New создает новый Handler.
func New(log *slog.Logger, cookies *middlewarectx.SessionCookies) *Handler {
	return &Handler{
		log:     log,
		cookies: cookies,
	}
}

// ServeHTTP godoc
// @Summary Выход
// @Description Удаляет cookie highschoolprep. Токен на сервере не отзывается.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("logout", slog.String("request_id", middleware.GetReqID(r.Context())))
	h.cookies.Clear(w)
	render.JSON(w, r, response.OKWithMessage(response.MsgLoggedOut))
}
