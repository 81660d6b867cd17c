// Package currentuser реализует HTTP-обработчик получения актуального профиля.
// Профиль перечитывается из хранилища, и cookie перевыпускается, чтобы
// токен отражал текущий премиум-доступ.
package currentuser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	authservice "github.com/magabrotheeeer/highschool-prep/internal/services/auth"
)

// Service описывает получение актуальной сессии.
type Service interface {
	CurrentUser(ctx context.Context, userID string) (*authservice.Session, error)
}

// Handler обрабатывает запрос текущего пользователя.
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
// @Summary Текущий пользователь
// @Description Возвращает актуальный профиль из хранилища и перевыпускает cookie.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response "Профиль или {success:false}"
// @Failure 400 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /current-user [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.currentuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	profile, ok := middlewarectx.ProfileFromContext(r.Context())
	if !ok {
		log.Info("no session profile in context")
		h.cookies.Clear(w)
		render.JSON(w, r, response.Error(response.MsgUnauthorized))
		return
	}

	session, err := h.service.CurrentUser(r.Context(), profile.ID)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserNotFound):
			log.Info("session does not resolve to a user", sl.UserID(profile.ID))
			h.cookies.Clear(w)
			render.JSON(w, r, response.Error(response.MsgUnauthorized))
		default:
			log.Error("failed to load current user", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		}
		return
	}

	h.cookies.Set(w, session.Token)
	render.JSON(w, r, response.OKWithData(session.Profile))
}
