package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"mealplanner/config"
	deliverycontext "mealplanner/internal/delivery/context"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/metrics"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks a Google-signed OIDC token for audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes aggregate events and keeps shopping totals in sync with their details.
type PushHandler struct {
	verifyPushAuth  bool
	pushAudience    string
	allowedAccounts []string
	validateToken   TokenValidator
	shoppingUC      usecase.ShoppingUsecase
	recorder        metrics.Recorder
	logger          *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	ShoppingUC     usecase.ShoppingUsecase
	Recorder       metrics.Recorder `optional:"true"`
	TokenValidator TokenValidator   `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validateToken: params.TokenValidator,
		shoppingUC:    params.ShoppingUC,
		recorder:      params.Recorder,
		logger:        params.Logger,
	}
	if wc := params.Config.Worker; wc != nil {
		h.verifyPushAuth = wc.VerifyPushAuth
		h.pushAudience = wc.PushAudience
		h.allowedAccounts = wc.AllowedServiceAccounts
	}
	if h.validateToken == nil {
		h.validateToken = idtoken.Validate
	}
	if h.recorder == nil {
		h.recorder = metrics.Nop{}
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message, 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AggregateEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse aggregate event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing aggregate event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("aggregate_id", event.AggregateID),
	)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process aggregate event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Non-retryable failures are acknowledged to avoid redelivery loops.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AggregateEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent reconciles shopping totals; every other event is acknowledged as is.
func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.AggregateEvent) error {
	switch event.Type {
	case service.EventShoppingCreated, service.EventShoppingUpdated, service.EventShoppingDetailsChanged:
	default:
		logger.Debug("[Worker] Event needs no processing", slog.String("type", event.Type))

		return nil
	}

	logID, err := uuid.Parse(event.AggregateID)
	if err != nil {
		return errors.Wrapf(err, "invalid aggregate id %q", event.AggregateID)
	}

	changed, err := h.shoppingUC.ReconcileTotal(ctx, logID)
	h.recorder.RecordReconcile(changed, err)
	if err != nil {
		// Client-class failures will not succeed on redelivery.
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return err
		}

		return newRetryableError(err)
	}

	if changed {
		logger.Info("[Worker] Shopping total corrected", slog.String("shopping_log_id", logID.String()))
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if len(h.allowedAccounts) > 0 {
		email, _ := payload.Claims["email"].(string)
		if !slices.Contains(h.allowedAccounts, email) {
			return errors.Errorf("service account %q is not allowed", email)
		}
	}

	return nil
}
