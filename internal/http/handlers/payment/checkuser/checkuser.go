// Package checkuser реализует проверку того, что сессия принадлежит заявленному пользователю.
package checkuser

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
)

// Request содержит заявленный id пользователя.
type Request struct {
	UserID string `json:"userId"`
}

// Service описывает сверку сессии с пользователем.
type Service interface {
	CheckUser(claimedUserID, sessionToken string) bool
}

// Handler обрабатывает запросы check-user.
type Handler struct {
	log     *slog.Logger
	service Service
	cookies *middlewarectx.SessionCookies
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, cookies *middlewarectx.SessionCookies) *Handler {
	return &Handler{
		log:     log,
		service: service,
		cookies: cookies,
	}
}

// ServeHTTP godoc
// @Summary Проверка пользователя
// @Description Сообщает, принадлежит ли cookie highschoolprep пользователю userId. Всегда отвечает 200.
// @Tags Payment
// @Accept  json
// @Produce  json
// @Param request body Request true "Заявленный пользователь"
// @Success 200 {object} response.Response
// @Router /check-user [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.checkuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info("failed to decode request body", sl.Err(err))
	}

	if !h.service.CheckUser(req.UserID, h.cookies.Token(r)) {
		render.JSON(w, r, response.Error(response.MsgUnauthorized))
		return
	}
	render.JSON(w, r, response.OKWithMessage(response.MsgUserVerified))
}
