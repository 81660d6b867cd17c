// Package subject реализует HTTP-обработчик получения предмета по id.
package subject

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
	"github.com/magabrotheeeer/highschool-prep/internal/storage"
)

// Service описывает чтение предмета.
type Service interface {
	Subject(ctx context.Context, id string) (*models.Subject, error)
}

// Handler отдаёт предмет с главами и юнитами.
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
// @Summary Предмет по id
// @Description Возвращает предмет с главами и юнитами или null, если предмета нет.
// @Tags Catalog
// @Produce  json
// @Param subjectId path string true "ID предмета"
// @Success 200 {object} models.Subject
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Router /getGradeById/{subjectId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.subject"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "subjectId")
	subject, err := h.service.Subject(r.Context(), id)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		if errors.Is(err, storage.ErrInvalidID) {
			log.Info("invalid subject id", slog.String("id", id))
			render.JSON(w, r, response.Error(response.MsgInvalidID))
			return
		}
		log.Error("failed to load subject", sl.Err(err))
		render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		return
	}

	render.JSON(w, r, subject)
}
