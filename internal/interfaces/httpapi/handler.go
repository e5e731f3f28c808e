package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
	"github.com/riskibarqy/mock-draft/internal/usecase"
)

// EventSubscriber hands out per-session pick event streams.
type EventSubscriber interface {
	Subscribe(sessionID string) Subscription
}

type Subscription interface {
	Events() <-chan usecase.PickEvent
	Close()
}

type Handler struct {
	draftService      *usecase.DraftService
	customADPService  *usecase.CustomADPService
	simulationService *usecase.SimulationService
	events            EventSubscriber
	logger            *logging.Logger
	validator         *validator.Validate
	stream            StreamConfig
}

func NewHandler(
	draftService *usecase.DraftService,
	customADPService *usecase.CustomADPService,
	simulationService *usecase.SimulationService,
	events EventSubscriber,
	stream StreamConfig,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		draftService:      draftService,
		customADPService:  customADPService,
		simulationService: simulationService,
		events:            events,
		logger:            logger,
		validator:         validator.New(),
		stream:            stream.withDefaults(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.draftService.SessionCount(),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

const maxRequestBodyBytes = 1 << 20

// decodeJSON reads a strict JSON body and validates it. An empty body
// decodes to the zero value so endpoints with optional payloads work.
func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, out any) error {
	if r.Body != nil {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err)
		}
		if len(bytes.TrimSpace(raw)) > 0 {
			decoder := sonic.ConfigDefault.NewDecoder(bytes.NewReader(raw))
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(out); err != nil {
				return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
			}
		}
	}
	return h.validateRequest(ctx, out)
}

func parseIntQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func parseIntPath(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}
