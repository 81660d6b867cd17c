// Package unit реализует HTTP-обработчик получения юнита по id.
package unit

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

// Service описывает чтение юнита.
type Service interface {
	Unit(ctx context.Context, id string) (*models.Unit, error)
}

// Handler отдаёт юнит с подъюнитами.
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
// @Summary Юнит по id
// @Description Возвращает юнит с подъюнитами или null, если юнита нет.
// @Tags Catalog
// @Produce  json
// @Param unitId path string true "ID юнита"
// @Success 200 {object} models.Unit
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Router /getUnit/{unitId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.unit"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "unitId")
	unit, err := h.service.Unit(r.Context(), id)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		if errors.Is(err, storage.ErrInvalidID) {
			log.Info("invalid unit id", slog.String("id", id))
			render.JSON(w, r, response.Error(response.MsgInvalidID))
			return
		}
		log.Error("failed to load unit", sl.Err(err))
		render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		return
	}

	render.JSON(w, r, unit)
}
