package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dance-battle/internal/battle"
	"github.com/KirkDiggler/dance-battle/internal/config"
	"github.com/KirkDiggler/dance-battle/internal/errors"
	"github.com/KirkDiggler/dance-battle/internal/orchestrators/duel"
	duelmock "github.com/KirkDiggler/dance-battle/internal/orchestrators/duel/mock"
	"github.com/KirkDiggler/dance-battle/internal/progression"
)

func TestRunRounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := duelmock.NewMockService(ctrl)
	ctx := context.Background()

	player := progression.Snapshot{ID: "p", Name: "Kid Groove", Level: 2, WinChance: 52}
	npc := progression.Snapshot{ID: "n", Name: "Mr Moves", Level: 1, WinChance: 52}

	gomock.InOrder(
		mockService.EXPECT().
			PreviewBattle(ctx, &duel.PreviewBattleInput{ChallengerID: "p", OpponentID: "n"}).
			Return(&duel.PreviewBattleOutput{WinChance: 51.85, Challenger: player, Opponent: npc}, nil),
		mockService.EXPECT().
			Battle(ctx, &duel.BattleInput{ChallengerID: "p", OpponentID: "n"}).
			Return(&duel.BattleOutput{
				Outcome: &battle.Outcome{
					Result:   battle.PartyAWins,
					PowerA:   27,
					PowerB:   14,
					XPAwardA: 67,
					XPAwardB: 15,
				},
				Challenger: player,
				Opponent:   npc,
			}, nil),
		mockService.EXPECT().
			ListDancers(ctx, &duel.ListDancersInput{}).
			Return(&duel.ListDancersOutput{Dancers: []progression.Snapshot{player, npc}}, nil),
	)

	var buf bytes.Buffer
	require.NoError(t, runRounds(ctx, mockService, &buf, "p", "n", 1))

	out := buf.String()
	assert.Contains(t, out, "round 1: match closeness 52%")
	assert.Contains(t, out, "round 1: Kid Groove wins (power 27 vs 14)")
	assert.Contains(t, out, "Kid Groove +67 xp, Mr Moves +15 xp")
	assert.Contains(t, out, "Mr Moves (level 1, xp 0/0)")
}

func TestRunRounds_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := duelmock.NewMockService(ctrl)
	ctx := context.Background()

	mockService.EXPECT().
		PreviewBattle(ctx, gomock.Any()).
		Return(nil, errors.NotFound("dancer n not found"))

	var buf bytes.Buffer
	err := runRounds(ctx, mockService, &buf, "p", "n", 3)
	require.Error(t, err)
	assert.Equal(t, 4, errors.GetCode(err).ExitCode())
}

func TestApp_SeededBattleRun(t *testing.T) {
	cfg := config.New()
	cfg.Seed = 42
	cfg.Rounds = 3

	a, err := newApp(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	a.printLevelUps(&buf)

	ctx := context.Background()
	playerID, err := a.createDancer(ctx, "Kid Groove")
	require.NoError(t, err)
	npcID, err := a.createDancer(ctx, "Mr Moves")
	require.NoError(t, err)

	require.NoError(t, runRounds(ctx, a.service, &buf, playerID, npcID, cfg.Rounds))
	require.NoError(t, a.printMetrics(&buf))

	out := buf.String()
	// the first battle always levels both dancers up
	assert.Contains(t, out, "Kid Groove reached level 2")
	assert.Contains(t, out, "Mr Moves reached level 2")
	assert.Contains(t, out, "round 3:")
	assert.Contains(t, out, "dance_battle_battles_started_total 3")
}

func TestDescribeResult(t *testing.T) {
	assert.Equal(t, "A wins", describeResult(battle.PartyAWins, "A", "B"))
	assert.Equal(t, "B wins", describeResult(battle.PartyBWins, "A", "B"))
	assert.Equal(t, "draw", describeResult(battle.Draw, "A", "B"))
}
