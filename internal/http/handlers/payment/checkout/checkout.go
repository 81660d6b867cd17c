// Package checkout реализует HTTP-обработчик создания сессии оплаты премиум-доступа.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/highschool-prep/internal/http/middlewarectx"
	"github.com/magabrotheeeer/highschool-prep/internal/http/response"
	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/paymentprovider"
	"github.com/magabrotheeeer/highschool-prep/internal/services/payment"
)

// Request содержит выбранный тариф.
type Request struct {
	PackageName string `json:"packageName" example:"4 Months"`
}

// Service описывает создание сессии оплаты.
type Service interface {
	CreateCheckout(ctx context.Context, tier, sessionToken string) (string, error)
}

// Handler обрабатывает запросы на оплату.
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
// @Summary Создание сессии оплаты
// @Description Создаёт сессию Stripe Checkout для выбранного тарифа. Требует cookie highschoolprep.
// @Tags Payment
// @Accept  json
// @Produce  json
// @Param request body Request true "Тариф"
// @Success 200 {object} response.CheckoutResponse "URL страницы оплаты"
// @Success 200 {object} response.ErrorResponse "Неизвестный тариф или нет сессии"
// @Failure 400 {object} response.ErrorResponse "Ошибка платёжного шлюза"
// @Router /create-checkout-session [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.checkout"

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

	url, err := h.service.CreateCheckout(r.Context(), req.PackageName, h.cookies.Token(r))
	if err != nil {
		var gwErr *paymentprovider.GatewayError
		switch {
		case errors.Is(err, payment.ErrUnknownTier):
			log.Info("unknown package", slog.String("package", req.PackageName))
			render.JSON(w, r, response.Error(response.MsgUnknownPackage))
		case errors.Is(err, payment.ErrMissingSession), errors.Is(err, payment.ErrInvalidToken):
			log.Info("checkout without valid session", sl.Err(err))
			render.JSON(w, r, response.Error(response.MsgUnauthorized))
		case errors.As(err, &gwErr):
			log.Error("payment gateway rejected checkout",
				slog.String("code", gwErr.Code), slog.Int("gateway_status", gwErr.StatusCode), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(gwErr.Message))
		default:
			log.Error("failed to create checkout session", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgSomethingWrong))
		}
		return
	}

	render.JSON(w, r, response.CheckoutResponse{URL: url})
}
