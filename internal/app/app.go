package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/mock-draft/internal/config"
	"github.com/riskibarqy/mock-draft/internal/domain/draft"
	"github.com/riskibarqy/mock-draft/internal/infrastructure/events"
	"github.com/riskibarqy/mock-draft/internal/interfaces/httpapi"
	"github.com/riskibarqy/mock-draft/internal/platform/logging"
	"github.com/riskibarqy/mock-draft/internal/platform/resilience"
	"github.com/riskibarqy/mock-draft/internal/usecase"
	"github.com/sourcegraph/conc"
)

const streamBuffer = 256

// App is the assembled API process: HTTP server plus the background work
// and connections that must be released on shutdown.
type App struct {
	Server *http.Server

	drafts        *usecase.DraftService
	evictInterval time.Duration
	logger        *logging.Logger
	background    conc.WaitGroup
	closers       []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{evictInterval: cfg.SessionEvictInterval, logger: logger}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, repos.Close)

	broker := events.NewBroker(streamBuffer, logger)
	publisher, err := a.buildPublisher(cfg, broker, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	serviceCfg := draftServiceConfig(cfg)
	a.drafts = usecase.NewDraftService(
		repos.players,
		repos.customADP,
		repos.saved,
		repos.presets,
		serviceCfg,
		usecase.WithLogger(logger),
		usecase.WithPublisher(publisher),
		usecase.WithSessionClosedHook(broker.CloseSession),
	)
	customADPSvc := usecase.NewCustomADPService(repos.players, repos.customADP, logger)
	simulationSvc := usecase.NewSimulationService(
		repos.players,
		repos.customADP,
		repos.presets,
		serviceCfg,
		cfg.SimulationWorkers,
		logger,
	)

	stream := httpapi.DefaultStreamConfig()
	stream.AllowedOrigins = cfg.CORSAllowedOrigins

	handler := httpapi.NewHandler(a.drafts, customADPSvc, simulationSvc, brokerSubscriber{broker: broker}, stream, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
	}, logger)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return a, nil
}

func (a *App) buildPublisher(cfg config.Config, broker *events.Broker, logger *logging.Logger) (usecase.EventPublisher, error) {
	fanout := events.NewFanout().Add("stream", broker)

	if cfg.NATSEnabled {
		nats, err := events.NewNATSPublisher(events.NATSConfig{
			URL:           cfg.NATSURL,
			SubjectPrefix: cfg.NATSSubjectPrefix,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		a.closers = append(a.closers, func() error {
			nats.Close()
			return nil
		})
		fanout.Add("nats", nats)
	}

	if cfg.WebhookEnabled {
		webhook, err := events.NewWebhookPublisher(events.WebhookConfig{
			URL:     cfg.WebhookURL,
			Secret:  cfg.WebhookSecret,
			Timeout: cfg.WebhookTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WebhookCircuitEnabled,
				FailureThreshold: cfg.WebhookCircuitFailureCount,
				OpenTimeout:      cfg.WebhookCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WebhookCircuitHalfOpenMaxReq,
			},
		}, clockwork.NewRealClock(), logger)
		if err != nil {
			return nil, err
		}
		fanout.Add("webhook", webhook)
	}

	logger.Info("event sinks ready", "sinks", fanout.Len())
	return fanout, nil
}

func draftServiceConfig(cfg config.Config) usecase.DraftServiceConfig {
	out := usecase.DefaultDraftServiceConfig()
	out.Settings.NumTeams = cfg.DraftNumTeams
	out.Settings.NumRounds = cfg.DraftNumRounds
	out.Settings.ThirdRoundReversal = cfg.DraftThirdRoundReversal
	out.Settings.StrictTurns = cfg.DraftStrictTurns
	out.Settings.TimerSeconds = cfg.DraftTimerSeconds
	if len(cfg.DraftTeamNames) > 0 {
		out.Settings.TeamNames = cfg.DraftTeamNames
	} else {
		out.Settings.TeamNames = draft.DefaultTeamNames()
	}
	out.SessionIdleTTL = cfg.SessionIdleTTL
	out.Seed = cfg.DraftSeed
	return out
}

// Start launches background work bound to ctx.
func (a *App) Start(ctx context.Context) {
	if a.evictInterval > 0 {
		a.background.Go(func() {
			a.drafts.RunSessionEvictor(ctx, a.evictInterval)
		})
	}
}

// Close waits for background work, which must already have been canceled
// through the Start context, and releases connections in reverse order.
func (a *App) Close() error {
	a.background.Wait()

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

type brokerSubscriber struct {
	broker *events.Broker
}

func (s brokerSubscriber) Subscribe(sessionID string) httpapi.Subscription {
	return s.broker.Subscribe(sessionID)
}
