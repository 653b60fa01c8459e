package battle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/pkg/clock"
	"github.com/KirkDiggler/dance-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dance-battle/internal/testutils/builders"
)

func TestResolve_WithDancers(t *testing.T) {
	resolver, err := battle.NewResolver(&battle.Config{
		LossRatio:   battle.DefaultLossRatio,
		Clock:       &clock.Fixed{At: time.Unix(0, 0)},
		IDGenerator: idgen.NewSequential("battle"),
	})
	require.NoError(t, err)

	player := builders.NewDancerBuilder().WithID("player").WithSeed(11).WithAttributes(3, 3, 2).MustBuild()
	npc := builders.NewDancerBuilder().WithID("npc").WithSeed(12).MustBuild()

	for i := 0; i < 25; i++ {
		levelA, levelB := player.Level(), npc.Level()
		xpA, xpB := player.CurrentXP(), npc.CurrentXP()

		outcome, err := resolver.Resolve(player, npc)
		require.NoError(t, err)

		assert.Equal(t, levelA, outcome.LevelA)
		assert.Equal(t, levelB, outcome.LevelB)
		assert.Equal(t, xpA+outcome.XPAwardA, player.CurrentXP())
		assert.Equal(t, xpB+outcome.XPAwardB, npc.CurrentXP())

		// one level-up at most per award
		assert.LessOrEqual(t, player.Level(), levelA+1)
		assert.LessOrEqual(t, npc.Level(), levelB+1)

		switch {
		case outcome.PowerA > outcome.PowerB:
			assert.Equal(t, battle.PartyAWins, outcome.Result)
		case outcome.PowerA < outcome.PowerB:
			assert.Equal(t, battle.PartyBWins, outcome.Result)
		default:
			assert.Equal(t, battle.Draw, outcome.Result)
		}
	}

	assert.Greater(t, player.Level(), 1)
	assert.Greater(t, npc.Level(), 1)
}

func TestEstimateWinProbability_WithDancers(t *testing.T) {
	resolver, err := battle.NewResolver(&battle.Config{
		Clock:       clock.New(),
		IDGenerator: idgen.NewSequential("battle"),
	})
	require.NoError(t, err)

	a := builders.NewDancerBuilder().WithID("a").WithSeed(3).MustBuild()
	b := builders.NewDancerBuilder().WithID("b").WithSeed(4).WithXPAwards(20).MustBuild()

	chance, err := resolver.EstimateWinProbability(a, b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, chance, 0.0)
	assert.LessOrEqual(t, chance, 100.0)

	assert.Equal(t, 0, a.CurrentXP())
	assert.Equal(t, 20, b.CurrentXP())
}
