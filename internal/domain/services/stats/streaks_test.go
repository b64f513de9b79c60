package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockgame-service/stockgame_service/internal/domain/entities"
)

func returnsFromChanges(changes ...float64) []entities.DailyReturn {
	returns := make([]entities.DailyReturn, len(changes))
	for i, c := range changes {
		returns[i] = entities.DailyReturn{Date: day(i + 1), Change: c}
	}
	return returns
}

func TestStreaks(t *testing.T) {
	got := Streaks(returnsFromChanges(1, 1, -1, -1, -1, 1))

	assert.Equal(t, 2, got.LongestWinStreak)
	assert.Equal(t, 3, got.LongestLoseStreak)
	assert.Equal(t, entities.StreakWin, got.CurrentStreak.Type)
	assert.Equal(t, 1, got.CurrentStreak.Count)
}

func TestStreaksFlatDaysAreNeutral(t *testing.T) {
	// A flat day neither extends nor breaks a run.
	got := Streaks(returnsFromChanges(1, 0, 1, 1))

	assert.Equal(t, 3, got.LongestWinStreak)
	assert.Equal(t, 0, got.LongestLoseStreak)
	assert.Equal(t, entities.StreakWin, got.CurrentStreak.Type)
	assert.Equal(t, 3, got.CurrentStreak.Count)
}

func TestStreaksAllFlat(t *testing.T) {
	got := Streaks(returnsFromChanges(0, 0, 0))

	assert.Equal(t, 0, got.LongestWinStreak)
	assert.Equal(t, 0, got.LongestLoseStreak)
	assert.Equal(t, entities.StreakNone, got.CurrentStreak.Type)
	assert.Equal(t, 0, got.CurrentStreak.Count)
}

func TestStreaksEmpty(t *testing.T) {
	got := Streaks(nil)

	assert.Equal(t, entities.StreakNone, got.CurrentStreak.Type)
	assert.Equal(t, 0, got.LongestWinStreak)
	assert.Equal(t, 0, got.LongestLoseStreak)
}

func TestStreaksEndingOnLoss(t *testing.T) {
	got := Streaks(returnsFromChanges(1, -1, -1))

	assert.Equal(t, 1, got.LongestWinStreak)
	assert.Equal(t, 2, got.LongestLoseStreak)
	assert.Equal(t, entities.StreakLose, got.CurrentStreak.Type)
	assert.Equal(t, 2, got.CurrentStreak.Count)
}
