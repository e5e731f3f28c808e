package events

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/mock-draft/internal/platform/logging"
	"github.com/riskibarqy/mock-draft/internal/usecase"
)

const defaultSubscriberBuffer = 64

// Broker fans pick events out to in-process subscribers, keyed by session.
// A subscriber that falls behind loses events rather than blocking the
// draft; the dropped count is reported on the subscription.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	buffer int
	logger *logging.Logger
}

type Subscription struct {
	SessionID string
	events    chan usecase.PickEvent
	dropped   atomic.Int64
	once      sync.Once
	broker    *Broker
}

func NewBroker(buffer int, logger *logging.Logger) *Broker {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Broker{
		subs:   make(map[string]map[*Subscription]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func (b *Broker) Subscribe(sessionID string) *Subscription {
	sub := &Subscription{
		SessionID: sessionID,
		events:    make(chan usecase.PickEvent, b.buffer),
		broker:    b,
	}

	b.mu.Lock()
	set, ok := b.subs[sessionID]
	if !ok {
		set = make(map[*Subscription]struct{})
		b.subs[sessionID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Events is closed once the subscription is closed.
func (s *Subscription) Events() <-chan usecase.PickEvent {
	return s.events
}

func (s *Subscription) Dropped() int64 {
	return s.dropped.Load()
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		b := s.broker
		b.mu.Lock()
		if set, ok := b.subs[s.SessionID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(b.subs, s.SessionID)
			}
		}
		close(s.events)
		b.mu.Unlock()
	})
}

func (b *Broker) Publish(ctx context.Context, event usecase.PickEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[event.SessionID] {
		select {
		case sub.events <- event:
		default:
			n := sub.dropped.Add(1)
			b.logger.WarnContext(ctx, "subscriber buffer full, dropping pick event",
				"session_id", event.SessionID,
				"kind", event.Kind,
				"pick", event.Pick,
				"dropped_total", n,
			)
		}
	}
	return nil
}

// CloseSession ends every subscription of a deleted or evicted session.
func (b *Broker) CloseSession(sessionID string) {
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subs[sessionID]))
	for sub := range b.subs[sessionID] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.Close()
	}
}

func (b *Broker) SubscriberCount(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[sessionID])
}
