// Package register реализует HTTP-обработчик регистрации пользователя по email и паролю.
//
// При успехе выставляет сессионную cookie и возвращает 201 с публичным профилем.
// Занятый email возвращается как {success:false} с кодом 200.
package register

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

// Request входные данные для регистрации.
type Request struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Image    string `json:"image,omitempty"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, name, email, password, image string) (*authservice.Session, error)
}

// Handler обрабатывает запросы регистрации.
type Handler struct {
	log      *slog.Logger
	service  Service
	cookies  *middlewarectx.SessionCookies
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, cookies *middlewarectx.SessionCookies) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookies:  cookies,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя, выставляет cookie highschoolprep и возвращает профиль.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные пользователя"
// @Success 201 {object} response.Response "Пользователь создан"
// @Success 200 {object} response.ErrorResponse "Email уже используется"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Router /create-user [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	session, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password, req.Image)
	if err != nil {
		if errors.Is(err, authservice.ErrDuplicateEmail) {
			log.Info("email already used")
			render.JSON(w, r, response.Error(response.MsgEmailUsed))
			return
		}
		if errors.Is(err, authservice.ErrPasswordTooLong) {
			log.Info("password too long")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgPasswordTooLong))
			return
		}
		log.Error("registration failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		return
	}

	h.cookies.Set(w, session.Token)
	log.Info("user registered", sl.UserID(session.Profile.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(session.Profile))
}
