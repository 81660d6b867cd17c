// Package google реализует HTTP-обработчик входа через Google.
//
// Клиент уже прошёл аутентификацию в Google и передаёт uid, который хранится
// как секрет пользователя. Новый пользователь получает 201, существующий 200.
package google

import (
	"context"
	"encoding/json"
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

// Request данные профиля Google.
type Request struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Image string `json:"image"`
	UID   string `json:"uid" validate:"required,max=72"`
}

// Service описывает вход через Google.
type Service interface {
	LoginWithGoogle(ctx context.Context, name, email, image, uid string) (*authservice.Session, bool, error)
}

// Handler обрабатывает вход через Google.
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
// @Summary Вход через Google
// @Description Входит существующим пользователем или создаёт нового по данным Google.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Профиль Google"
// @Success 200 {object} response.Response "Существующий пользователь"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или uid не совпал"
// @Router /create-user-google [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.google"

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

	session, created, err := h.service.LoginWithGoogle(r.Context(), req.Name, req.Email, req.Image, req.UID)
	if err != nil {
		log.Error("google login failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		return
	}

	h.cookies.Set(w, session.Token)
	if created {
		log.Info("user created with google", sl.UserID(session.Profile.ID))
		render.Status(r, http.StatusCreated)
	}
	render.JSON(w, r, response.OKWithData(session.Profile))
}
