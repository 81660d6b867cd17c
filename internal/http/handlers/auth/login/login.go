// Package login реализует HTTP-обработчик входа по email и паролю.
//
// Неизвестный email и неверный пароль дают одинаковый ответ {success:false}
// с кодом 200. При успехе выставляется сессионная cookie.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	authservice "github.com/magabrotheeeer/highschool-prep/internal/services/auth"
)

// Request — структура входных данных для авторизации.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger                  // Логгер для записи операций и ошибок
	service  Service                       // Сервис аутентификации
	cookies  *middlewarectx.SessionCookies // Сессионная cookie
	validate *validator.Validate           // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (*authservice.Session, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, cookies *middlewarectx.SessionCookies) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookies:  cookies,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю, выставляет cookie highschoolprep.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Профиль пользователя или {success:false}"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Router /get-user [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgInvalidBody))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			log.Info("invalid credentials")
			render.JSON(w, r, response.Error(response.MsgWrongCredentials))
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		return
	}

	h.cookies.Set(w, session.Token)
	log.Info("user logged in", sl.UserID(session.Profile.ID))
	render.JSON(w, r, response.OKWithData(session.Profile))
}
