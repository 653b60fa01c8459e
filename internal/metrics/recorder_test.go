package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/KirkDiggler/dance-battle/internal/progression"
)

func TestRecorderProgression(t *testing.T) {
	Convey("Given a recorder on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		recorder := NewRecorder(WithPrometheusRegistry(registry))
		dancer := recorder.Dancer()

		Convey("When a dancer levels up", func() {
			dancer.ShowXP(12)
			dancer.Notify(progression.Snapshot{Level: 2})
			dancer.ShowLevelUp()

			Convey("Then each notification is counted", func() {
				So(testutil.ToFloat64(recorder.xpUpdates), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.statsChanges), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.levelUps), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.highestLevel), ShouldEqual, 2)
			})
		})

		Convey("When dancers report different levels", func() {
			recorder.Dancer().Notify(progression.Snapshot{Level: 7})
			recorder.Dancer().Notify(progression.Snapshot{Level: 3})

			Convey("Then the highest level is kept", func() {
				So(testutil.ToFloat64(recorder.highestLevel), ShouldEqual, 7)
			})
		})
	})
}

func TestRecorderBattles(t *testing.T) {
	Convey("Given a recorder on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		recorder := NewRecorder(
			WithPrometheusRegistry(registry),
			WithNamespace("test"),
			WithSubsystem("arena"),
		)

		Convey("When battles are resolved", func() {
			recorder.ShowBattleStart("a", "b")
			recorder.ShowBattleResult("a", "b", 1)
			recorder.ShowBattleStart("a", "b")
			recorder.ShowBattleResult("a", "b", -1)
			recorder.ShowBattleStart("a", "b")
			recorder.ShowBattleResult("a", "b", 0)
			recorder.ObserveWinChance(51.85)

			Convey("Then results are counted per label", func() {
				So(testutil.ToFloat64(recorder.battleStarts), ShouldEqual, 3)
				So(testutil.ToFloat64(recorder.battleResults.WithLabelValues("party_a_wins")), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.battleResults.WithLabelValues("party_b_wins")), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.battleResults.WithLabelValues("draw")), ShouldEqual, 1)
			})

			Convey("Then the summary lists every sample", func() {
				samples, err := Summarize(registry)
				So(err, ShouldBeNil)

				values := map[string]float64{}
				for _, s := range samples {
					values[s.Name] = s.Value
				}
				So(values["test_arena_battles_started_total"], ShouldEqual, 3)
				So(values[`test_arena_battle_results_total{result="draw"}`], ShouldEqual, 1)
				So(values["test_arena_win_chance_percent_count"], ShouldEqual, 1)
			})
		})
	})
}

func TestRecorderOptions(t *testing.T) {
	Convey("Given recorder options", t, func() {
		Convey("When empty values are passed", func() {
			r := &Recorder{namespace: "dance", subsystem: "battle", winChanceBuckets: defaultWinChanceBuckets}
			WithNamespace("")(r)
			WithSubsystem("")(r)
			WithWinChanceBuckets(nil)(r)
			WithPrometheusRegistry(nil)(r)

			Convey("Then the defaults are kept", func() {
				So(r.namespace, ShouldEqual, "dance")
				So(r.subsystem, ShouldEqual, "battle")
				So(r.winChanceBuckets, ShouldResemble, defaultWinChanceBuckets)
				So(r.registry, ShouldBeNil)
			})
		})
	})
}
