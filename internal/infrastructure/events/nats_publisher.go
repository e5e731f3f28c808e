package events

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/nats-io/nats.go"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
	"github.com/riskibarqy/mock-draft/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultSubjectPrefix = "draft.events"

type NATSConfig struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

// natsConn is the subset of *nats.Conn the publisher needs.
type natsConn interface {
	PublishMsg(msg *nats.Msg) error
}

// NATSPublisher publishes each pick event to
// <prefix>.<session id>.<kind>.
type NATSPublisher struct {
	conn   natsConn
	closer func()
	prefix string
	logger *logging.Logger
}

func NewNATSPublisher(cfg NATSConfig, logger *logging.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = logging.Default()
	}
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = nats.DefaultURL
	}
	maxReconnects := cfg.MaxReconnects
	if maxReconnects == 0 {
		maxReconnects = -1
	}
	reconnectWait := cfg.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = 2 * time.Second
	}

	nc, err := nats.Connect(url,
		nats.Name("mock-draft"),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "connect nats %s", url)
	}

	p := newNATSPublisher(nc, cfg.SubjectPrefix, logger)
	p.closer = nc.Close
	return p, nil
}

func newNATSPublisher(conn natsConn, prefix string, logger *logging.Logger) *NATSPublisher {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &NATSPublisher{conn: conn, prefix: prefix, logger: logger}
}

func (p *NATSPublisher) Subject(event usecase.PickEvent) string {
	return p.prefix + "." + subjectToken(event.SessionID) + "." + subjectToken(event.Kind)
}

func (p *NATSPublisher) Publish(ctx context.Context, event usecase.PickEvent) error {
	body, err := sonic.Marshal(event)
	if err != nil {
		return crerr.Wrap(err, "marshal pick event")
	}

	msg := nats.NewMsg(p.Subject(event))
	msg.Data = body
	msg.Header.Set("Content-Type", "application/json")
	msg.Header.Set(nats.MsgIdHdr, messageID(event))

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("nats.subject", msg.Subject),
			attribute.String("nats.msg_id", msg.Header.Get(nats.MsgIdHdr)),
		)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return crerr.Wrapf(err, "publish nats subject=%s", msg.Subject)
	}
	p.logger.DebugContext(ctx, "pick event published to nats", "subject", msg.Subject)
	return nil
}

func (p *NATSPublisher) Close() {
	if p.closer != nil {
		p.closer()
	}
}

// messageID lets JetStream consumers drop duplicates of the same change.
func messageID(event usecase.PickEvent) string {
	return event.SessionID + ":" + event.Kind + ":" + strconv.Itoa(event.Pick) + ":" + strconv.FormatInt(event.OccurredAt.UnixNano(), 10)
}

// subjectToken keeps ids from introducing extra subject levels or wildcards.
func subjectToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, raw)
}
