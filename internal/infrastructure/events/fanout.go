package events

import (
	"context"

	"github.com/riskibarqy/mock-draft/internal/usecase"
	"github.com/sourcegraph/conc/pool"
)

type namedPublisher struct {
	name string
	pub  usecase.EventPublisher
}

// Fanout delivers each event to every sink concurrently and joins their
// errors. The in-process broker should be registered first; it never fails.
type Fanout struct {
	sinks []namedPublisher
}

func NewFanout() *Fanout {
	return &Fanout{}
}

func (f *Fanout) Add(name string, pub usecase.EventPublisher) *Fanout {
	if pub != nil {
		f.sinks = append(f.sinks, namedPublisher{name: name, pub: pub})
	}
	return f
}

func (f *Fanout) Len() int {
	return len(f.sinks)
}

func (f *Fanout) Publish(ctx context.Context, event usecase.PickEvent) error {
	switch len(f.sinks) {
	case 0:
		return nil
	case 1:
		return wrapSink(f.sinks[0].name, f.sinks[0].pub.Publish(ctx, event))
	}

	p := pool.New().WithErrors().WithMaxGoroutines(len(f.sinks))
	for _, sink := range f.sinks {
		p.Go(func() error {
			return wrapSink(sink.name, sink.pub.Publish(ctx, event))
		})
	}
	return p.Wait()
}

type sinkError struct {
	sink string
	err  error
}

func (e *sinkError) Error() string {
	return e.sink + ": " + e.err.Error()
}

func (e *sinkError) Unwrap() error {
	return e.err
}

func wrapSink(name string, err error) error {
	if err == nil {
		return nil
	}
	return &sinkError{sink: name, err: err}
}
