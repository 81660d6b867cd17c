// Package webhook реализует приём вебхуков Stripe.
//
// Тело читается как есть: подпись проверяется по сырым байтам, поэтому
// обработчик не должен стоять за middleware, меняющими тело запроса.
package webhook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/services/payment"
)

// SignatureHeader заголовок с подписью Stripe.
const SignatureHeader = "Stripe-Signature"

// MaxBodyBytes ограничение размера тела вебхука.
const MaxBodyBytes = int64(65536)

// Service описывает обработку события шлюза.
type Service interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// Handler принимает вебхуки платёжного шлюза.
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
// @Summary Вебхук Stripe
// @Description Проверяет подпись и при checkout.session.completed активирует премиум-доступ.
// @Tags Payment
// @Accept  json
// @Param Stripe-Signature header string true "Подпись Stripe"
// @Success 200 "Событие принято"
// @Failure 400 "Неверная подпись"
// @Router /stripe-check-webhook [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.webhook"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		log.Error("failed to read webhook body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), payload, r.Header.Get(SignatureHeader)); err != nil {
		// неверная подпись уже залогирована сервисом
		if !errors.Is(err, payment.ErrInvalidSignature) {
			log.Error("failed to handle webhook", sl.Err(err))
		}
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}
