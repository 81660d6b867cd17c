// Package paymentprovider реализует адаптер платёжного шлюза Stripe:
// создание сессий оплаты и проверку подписи вебхуков.
package paymentprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const currencyUSD = "usd"

// Config параметры подключения к Stripe.
type Config struct {
	APIKey        string
	WebhookSecret string
	// BackendURL переопределяет адрес API, используется в тестах.
	BackendURL string
	HTTPClient *http.Client
}

// Client клиент Stripe.
type Client struct {
	api           *client.API
	webhookSecret string
	log           *slog.Logger
}

// NewClient создаёт новый клиент Stripe. Повторные попытки запросов отключены.
func NewClient(cfg Config, log *slog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &leveledLogger{log: log},
	}
	if cfg.BackendURL != "" {
		backendCfg.URL = stripe.String(strings.TrimRight(cfg.BackendURL, "/"))
	}
	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendCfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendCfg),
	}

	api := &client.API{}
	api.Init(cfg.APIKey, backends)

	return &Client{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		log:           log,
	}
}

// CreateCheckoutSession создаёт сессию оплаты на одну позицию и возвращает URL для редиректа.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	const op = "paymentprovider.CreateCheckoutSession"

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currencyUSD),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.PackageName),
						Description: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.Price * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata(MetadataUserID, req.UserID)
	params.AddMetadata(MetadataTier, req.PackageName)
	params.AddMetadata(MetadataPackageName, req.PackageName)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, toGatewayError(err))
	}
	if session.URL == "" {
		return "", fmt.Errorf("%s: %w", op, &GatewayError{Message: "checkout session has no url"})
	}
	return session.URL, nil
}

// ParseWebhook проверяет подпись и разбирает событие. Для событий сессии
// оплаты заполняются идентификатор сессии и метаданные.
func (c *Client) ParseWebhook(payload []byte, signature string) (*Event, error) {
	const op = "paymentprovider.ParseWebhook"

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidSignature, err)
	}

	out := &Event{ID: event.ID, Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") || event.Data == nil {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out.SessionID = session.ID
	out.Metadata = session.Metadata
	return out, nil
}

func toGatewayError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &GatewayError{
			Code:       string(stripeErr.Code),
			Message:    stripeErr.Msg,
			StatusCode: stripeErr.HTTPStatusCode,
		}
	}
	return &GatewayError{Message: err.Error()}
}

// leveledLogger направляет журнал stripe-go в slog.
type leveledLogger struct {
	log *slog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Infof(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Warnf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *leveledLogger) Errorf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}
