package stats

import "github.com/stockgame-service/stockgame_service/internal/domain/entities"

// Streaks walks the return series once, maintaining running win/lose
// counters. A positive change extends the win counter and resets the
// lose counter, and vice versa. Flat days are streak-neutral: they
// neither extend nor reset either counter.
func Streaks(returns []entities.DailyReturn) entities.Streaks {
	var longestWin, longestLose, currentWin, currentLose int

	for _, day := range returns {
		switch {
		case day.Change > 0:
			currentWin++
			currentLose = 0
			if currentWin > longestWin {
				longestWin = currentWin
			}
		case day.Change < 0:
			currentLose++
			currentWin = 0
			if currentLose > longestLose {
				longestLose = currentLose
			}
		}
	}

	current := entities.StreakState{Type: entities.StreakNone}
	if len(returns) > 0 {
		if currentWin > 0 {
			current = entities.StreakState{Type: entities.StreakWin, Count: currentWin}
		} else if currentLose > 0 {
			current = entities.StreakState{Type: entities.StreakLose, Count: currentLose}
		}
	}

	return entities.Streaks{
		LongestWinStreak:  longestWin,
		LongestLoseStreak: longestLose,
		CurrentStreak:     current,
	}
}
