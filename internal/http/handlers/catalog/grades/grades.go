// Package grades реализует HTTP-обработчик получения дерева классов.
package grades

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

// Service описывает чтение классов.
type Service interface {
	Grades(ctx context.Context) ([]*models.Grade, error)
}

// Handler отдаёт все классы с предметами, главами и юнитами.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список классов
// @Description Возвращает классы с вложенными предметами, главами и юнитами (без подъюнитов).
// @Tags Catalog
// @Produce  json
// @Success 200 {array} models.Grade
// @Failure 400 {object} response.ErrorResponse
// @Router /getGrades [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.grades"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	grades, err := h.service.Grades(r.Context())
	if err != nil {
		log.Error("failed to load grades", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		return
	}
	if grades == nil {
		grades = []*models.Grade{}
	}

	render.JSON(w, r, grades)
}
