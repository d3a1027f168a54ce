package gamificationController

import (
	"elimu/models"
	"elimu/utils"
	"math"
)

// LevelThreshold is one row of the static level table. Thresholds are
// ascending cumulative XP; NeuronReward is credited once when the level is
// first crossed.
type LevelThreshold struct {
	Level        int
	XP           int
	NeuronReward int
}

// Levels is the monotonic XP → level lookup table
var Levels = []LevelThreshold{
	{Level: 1, XP: 0, NeuronReward: 0},
	{Level: 2, XP: 100, NeuronReward: 10},
	{Level: 3, XP: 250, NeuronReward: 15},
	{Level: 4, XP: 500, NeuronReward: 20},
	{Level: 5, XP: 1000, NeuronReward: 30},
	{Level: 6, XP: 1750, NeuronReward: 40},
	{Level: 7, XP: 2750, NeuronReward: 50},
	{Level: 8, XP: 4000, NeuronReward: 65},
	{Level: 9, XP: 5500, NeuronReward: 80},
	{Level: 10, XP: 7500, NeuronReward: 100},
}

// LevelForXP scans the ascending level table for the highest level whose
// threshold is not above xp
func LevelForXP(xp int) int {
	level := 1
	for _, row := range Levels {
		if xp >= row.XP {
			level = row.Level
		}
	}
	return level
}

// NeuronsForLevels sums the configured reward of every level crossed when
// moving from oldLevel to newLevel. Supports multi-level jumps in one award.
func NeuronsForLevels(oldLevel, newLevel int) int {
	total := 0
	for _, row := range Levels {
		if row.Level > oldLevel && row.Level <= newLevel {
			total += row.NeuronReward
		}
	}
	return total
}

// ApplyXP computes the new XP total for one award:
// newTotal = previous + floor(amount * multiplier), clamped to >= 0.
// A zero multiplier means "absent" and defaults to 1.
func ApplyXP(previousXP, amount int, multiplier float64) (newTotal, awarded int) {
	if multiplier == 0 {
		multiplier = 1
	}
	awarded = int(math.Floor(float64(amount) * multiplier))
	newTotal = previousXP + awarded
	if newTotal < 0 {
		newTotal = 0
	}
	return newTotal, awarded
}

// StreakUpdate is the outcome of one daily streak check
type StreakUpdate struct {
	Current           int    `json:"current"`
	Longest           int    `json:"longest"`
	LastActiveDate    string `json:"last_active_date"`
	FreezesRemaining  int    `json:"freezes_remaining"`
	DailyBonusAwarded bool   `json:"daily_bonus_awarded"`
	BonusXP           int    `json:"bonus_xp"`
}

const streakLoginBonus = 10

// streakTierBonus rewards longer streaks with a bigger daily bonus
func streakTierBonus(current int) int {
	switch {
	case current >= 30:
		return 50
	case current >= 14:
		return 30
	case current >= 7:
		return 20
	case current >= 3:
		return 10
	default:
		return 0
	}
}

// ComputeStreak applies the three streak branches against today's ISO date:
// same day is a no-op, exactly yesterday increments and pays the login+tier
// bonus, anything else resets to 1 and restores one weekly freeze. Freezes
// are never spent here; there is no consuming endpoint.
func ComputeStreak(g *models.UserGamification, today string, weeklyAllowance int) StreakUpdate {
	update := StreakUpdate{
		Current:          g.CurrentStreak,
		Longest:          g.LongestStreak,
		LastActiveDate:   g.LastActiveDate,
		FreezesRemaining: g.FreezesRemaining,
	}

	switch g.LastActiveDate {
	case today:
		// Second call in the same day: unchanged
		return update

	case utils.YesterdayISO(today):
		update.Current = g.CurrentStreak + 1
		if update.Current > update.Longest {
			update.Longest = update.Current
		}
		update.LastActiveDate = today
		update.DailyBonusAwarded = true
		update.BonusXP = streakLoginBonus + streakTierBonus(update.Current)
		return update

	default:
		update.Current = 1
		if update.Longest < 1 {
			update.Longest = 1
		}
		update.LastActiveDate = today
		if update.FreezesRemaining < weeklyAllowance {
			update.FreezesRemaining++
		}
		return update
	}
}
