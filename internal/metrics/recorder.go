package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

const resultLabel = "result"

var defaultWinChanceBuckets = []float64{10, 25, 50, 75, 90, 100}

// Recorder counts progression and battle activity. The Recorder itself is
// a battle.EffectsSink; Dancer returns the per-dancer progression sink.
type Recorder struct {
	namespace        string
	subsystem        string
	winChanceBuckets []float64
	registry         prometheus.Registerer

	levelUps      prometheus.Counter
	statsChanges  prometheus.Counter
	xpUpdates     prometheus.Counter
	highestLevel  prometheus.Gauge
	battleStarts  prometheus.Counter
	battleResults *prometheus.CounterVec
	winChance     prometheus.Histogram

	mu      sync.Mutex
	highest int
}

// NewRecorder creates a recorder and registers its metrics
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace:        "dance",
		subsystem:        "battle",
		winChanceBuckets: defaultWinChanceBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.initializeMetrics()

	return r
}

func (r *Recorder) initializeMetrics() {
	auto := promauto.With(r.registry)

	r.levelUps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "level_ups_total",
		Help:      "Total number of completed level-ups",
	})

	r.statsChanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "stats_changes_total",
		Help:      "Total number of stats-changed notifications",
	})

	r.xpUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "xp_updates_total",
		Help:      "Total number of XP awards shown",
	})

	r.highestLevel = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "highest_level",
		Help:      "Highest level reached by any dancer",
	})

	r.battleStarts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "battles_started_total",
		Help:      "Total number of battles started",
	})

	r.battleResults = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "battle_results_total",
		Help:      "Total number of resolved battles by result",
	}, []string{resultLabel})

	r.winChance = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "win_chance_percent",
		Help:      "Previewed win chances",
		Buckets:   r.winChanceBuckets,
	})
}

// ShowBattleStart counts a started battle
func (r *Recorder) ShowBattleStart(_, _ string) {
	r.battleStarts.Inc()
}

// ShowBattleResult counts a resolved battle under party A's result
func (r *Recorder) ShowBattleResult(_, _ string, outcomeSignal float64) {
	r.battleResults.WithLabelValues(resultFromSignal(outcomeSignal).String()).Inc()
}

// ObserveWinChance records a previewed win chance
func (r *Recorder) ObserveWinChance(percentage float64) {
	r.winChance.Observe(percentage)
}

// Dancer returns a progression sink that records into r
func (r *Recorder) Dancer() *DancerRecorder {
	return &DancerRecorder{recorder: r}
}

func (r *Recorder) observeLevel(level int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if level > r.highest {
		r.highest = level
		r.highestLevel.Set(float64(level))
	}
}

func resultFromSignal(signal float64) battle.Result {
	switch {
	case signal > 0:
		return battle.PartyAWins
	case signal < 0:
		return battle.PartyBWins
	default:
		return battle.Draw
	}
}

// DancerRecorder is one dancer's view of a Recorder
type DancerRecorder struct {
	recorder *Recorder
}

// Notify counts the change and tracks the highest level
func (d *DancerRecorder) Notify(snapshot progression.Snapshot) {
	d.recorder.statsChanges.Inc()
	d.recorder.observeLevel(snapshot.Level)
}

// ShowXP counts an XP award
func (d *DancerRecorder) ShowXP(_ int) {
	d.recorder.xpUpdates.Inc()
}

// ShowLevelUp counts a level-up
func (d *DancerRecorder) ShowLevelUp() {
	d.recorder.levelUps.Inc()
}
