package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/config"
	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/metrics"
	"github.com/KirkDiggler/dance-battle/internal/notify"
	"github.com/KirkDiggler/dance-battle/internal/orchestrators/duel"
	"github.com/KirkDiggler/dance-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dance-battle/internal/pkg/rng"
	"github.com/KirkDiggler/dance-battle/internal/repositories/dancers"
)

// app wires the duel service with its presentation for one CLI run
type app struct {
	service  duel.Service
	registry *prometheus.Registry
	bus      events.EventBus

	mu    sync.Mutex
	names map[string]string
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	return cfg, nil
}

func newApp(cfg *config.Config) (*app, error) {
	random := rng.New()
	if cfg.Seed != 0 {
		random = rng.NewSeeded(cfg.Seed)
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(metrics.WithPrometheusRegistry(registry))
	bus := events.NewBus()
	tuning := cfg.Tuning()

	service, err := duel.NewOrchestrator(&duel.Config{
		DancerRepo:        dancers.NewInMemory(),
		IDGenerator:       idgen.NewUUID("dancer"),
		BattleIDGenerator: idgen.NewUUID("battle"),
		Random:            random,
		Tuning:            &tuning,
		LossRatio:         cfg.LossRatio,
		EventBus:          bus,
		DancerSinks: []duel.SinkFactory{
			func(string) notify.DancerSink { return recorder.Dancer() },
		},
		BattleSinks:       []battle.EffectsSink{recorder},
		WinChanceObserver: recorder,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create duel service")
	}

	return &app{
		service:  service,
		registry: registry,
		bus:      bus,
		names:    map[string]string{},
	}, nil
}

// printLevelUps writes a line to w for every level-up on the bus. Names
// come from the local cache because the handler runs while the service
// holds its lock.
func (a *app) printLevelUps(w io.Writer) {
	a.bus.SubscribeFunc(notify.EventLevelUp, 0, func(_ context.Context, e events.Event) error {
		level, _ := e.Context().Get(notify.KeyLevel)
		fmt.Fprintf(w, "  * %s reached level %v\n", a.name(e.Source().GetID()), level)
		return nil
	})
}

func (a *app) createDancer(ctx context.Context, name string) (string, error) {
	out, err := a.service.CreateDancer(ctx, &duel.CreateDancerInput{Name: name})
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.names[out.Dancer.ID] = out.Dancer.Name
	a.mu.Unlock()

	return out.Dancer.ID, nil
}

func (a *app) name(id string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if name, ok := a.names[id]; ok {
		return name
	}
	return id
}

func (a *app) printMetrics(w io.Writer) error {
	samples, err := metrics.Summarize(a.registry)
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	fmt.Fprintln(w, "metrics:")
	for _, s := range samples {
		fmt.Fprintf(w, "  %s %g\n", s.Name, s.Value)
	}
	return nil
}
