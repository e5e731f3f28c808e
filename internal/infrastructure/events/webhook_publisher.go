package events

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
	"github.com/riskibarqy/mock-draft/internal/platform/resilience"
	"github.com/riskibarqy/mock-draft/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type WebhookConfig struct {
	URL            string
	Secret         string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookPublisher POSTs each pick event as JSON. Transient failures count
// against a circuit breaker so a dead endpoint stops costing a timeout per
// pick.
type WebhookPublisher struct {
	client         *http.Client
	url            string
	secret         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewWebhookPublisher(cfg WebhookConfig, clock clockwork.Clock, logger *logging.Logger) (*WebhookPublisher, error) {
	target, err := validateHTTPURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid WEBHOOK_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := cfg.CircuitBreaker.Normalized()

	return &WebhookPublisher{
		client:         &http.Client{Timeout: timeout},
		url:            target,
		secret:         strings.TrimSpace(cfg.Secret),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg, clock),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

func (p *WebhookPublisher) Publish(ctx context.Context, event usecase.PickEvent) error {
	body, err := sonic.Marshal(event)
	if err != nil {
		return crerr.Wrap(err, "marshal pick event")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("webhook.url", p.url),
			attribute.String("webhook.request_preview", p.requestPreview(event, body)),
		)
	}

	if !p.circuitEnabled {
		return p.send(ctx, body)
	}

	err = p.breaker.ExecuteIf(ctx, func(ctx context.Context) error {
		return p.send(ctx, body)
	}, isWebhookCircuitFailure)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		p.logger.WarnContext(ctx, "webhook circuit breaker rejected event",
			"state", p.breaker.State(),
			"session_id", event.SessionID,
		)
		return fmt.Errorf("webhook is temporarily unavailable: %w", err)
	}
	return err
}

func (p *WebhookPublisher) State() resilience.CircuitState {
	return p.breaker.State()
}

func (p *WebhookPublisher) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.secret != "" {
		req.Header.Set("Authorization", "Bearer "+p.secret)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: post %s: %v", errWebhookTransient, p.url, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 == 2 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if isRetryableStatus(resp.StatusCode) {
		return fmt.Errorf("%w: status=%d body=%s", errWebhookTransient, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return crerr.Newf("webhook rejected event status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
}

// requestPreview renders a redacted one-line summary for span attributes.
func (p *WebhookPublisher) requestPreview(event usecase.PickEvent, body []byte) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("POST ")
	_, _ = buf.WriteString(p.url)
	if p.secret != "" {
		_, _ = buf.WriteString(" auth=***")
	}
	_, _ = buf.WriteString(" kind=")
	_, _ = buf.WriteString(event.Kind)
	_, _ = buf.WriteString(" body=")
	_, _ = buf.WriteString(truncateForLog(string(body), 512))

	return buf.String()
}

// isWebhookCircuitFailure counts only transport errors and retryable
// statuses; a 4xx rejection says nothing about endpoint health.
func isWebhookCircuitFailure(err error) bool {
	return errors.Is(err, errWebhookTransient)
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return candidate, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
