package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triqui/internal/entity"
	"github.com/rocketscienceinc/triqui/internal/tictactoe"
	"github.com/rocketscienceinc/triqui/testing/suite"
)

func TestResultRepository_Save(t *testing.T) {
	ctx, db := suite.NewSQLite(t)

	resultRepo := NewResultRepository(db.Connection)

	// Given: a finished round
	result := &entity.Result{
		PlayerID:   "p1",
		Outcome:    entity.OutcomeHuman,
		Difficulty: tictactoe.Expert,
		Board:      [9]int{1, 1, 1, 2, 2, 0, 0, 0, 0},
		FinishedAt: time.Now(),
	}

	// When: Save is called
	err := resultRepo.Save(ctx, result)

	// Then: the result gets an ID
	require.NoError(t, err)
	assert.Positive(t, result.ID)
}

func TestResultRepository_ListByPlayer(t *testing.T) {
	t.Run("Lists newest first up to the limit", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)

		resultRepo := NewResultRepository(db.Connection)

		// Given: three rounds of one player and one of another
		start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		outcomes := []entity.Outcome{entity.OutcomeHuman, entity.OutcomeDraw, entity.OutcomeOpponent}
		for i, outcome := range outcomes {
			err := resultRepo.Save(ctx, &entity.Result{
				PlayerID:   "p1",
				Outcome:    outcome,
				Difficulty: tictactoe.Harder,
				Board:      [9]int{1, 2, 1, 2, 1, 2, 2, 1, 2},
				FinishedAt: start.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		err := resultRepo.Save(ctx, &entity.Result{PlayerID: "p2", Outcome: entity.OutcomeDraw, FinishedAt: start})
		require.NoError(t, err)

		// When: listing two results of the first player
		results, err := resultRepo.ListByPlayer(ctx, "p1", 2)

		// Then: the two latest rounds come back, newest first
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, entity.OutcomeOpponent, results[0].Outcome)
		assert.Equal(t, entity.OutcomeDraw, results[1].Outcome)
		assert.Equal(t, tictactoe.Harder, results[0].Difficulty)
		assert.Equal(t, [9]int{1, 2, 1, 2, 1, 2, 2, 1, 2}, results[0].Board)
		assert.True(t, start.Add(2*time.Minute).Equal(results[0].FinishedAt))
	})

	t.Run("Empty for unknown players", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)

		resultRepo := NewResultRepository(db.Connection)

		// When: listing results of a player without rounds
		results, err := resultRepo.ListByPlayer(ctx, "nobody", 10)

		// Then: an empty list is returned
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
