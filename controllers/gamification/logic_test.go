package gamificationController

import (
	"elimu/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
	assert.Equal(t, 2, LevelForXP(249))
	assert.Equal(t, 3, LevelForXP(250))
	assert.Equal(t, 5, LevelForXP(1000))
	assert.Equal(t, 10, LevelForXP(7500))
	assert.Equal(t, 10, LevelForXP(999999))
}

func TestNeuronsForLevels_SingleLevel(t *testing.T) {
	assert.Equal(t, 10, NeuronsForLevels(1, 2))
	assert.Equal(t, 15, NeuronsForLevels(2, 3))
}

func TestNeuronsForLevels_MultiLevelJump(t *testing.T) {
	// One large award crossing levels 2, 3 and 4 pays all three rewards
	assert.Equal(t, 10+15+20, NeuronsForLevels(1, 4))
}

func TestNeuronsForLevels_NoCrossing(t *testing.T) {
	assert.Equal(t, 0, NeuronsForLevels(3, 3))
	assert.Equal(t, 0, NeuronsForLevels(5, 4))
}

func TestApplyXP_DefaultMultiplier(t *testing.T) {
	newTotal, awarded := ApplyXP(100, 50, 0)

	assert.Equal(t, 150, newTotal)
	assert.Equal(t, 50, awarded)
}

func TestApplyXP_MultiplierFloors(t *testing.T) {
	newTotal, awarded := ApplyXP(0, 75, 0.5)

	assert.Equal(t, 37, awarded)
	assert.Equal(t, 37, newTotal)
}

func TestApplyXP_ClampsAtZero(t *testing.T) {
	newTotal, awarded := ApplyXP(10, -50, 1)

	assert.Equal(t, -50, awarded)
	assert.Equal(t, 0, newTotal)
}

func TestComputeStreak_SameDayIsNoOp(t *testing.T) {
	g := &models.UserGamification{
		CurrentStreak:    4,
		LongestStreak:    9,
		LastActiveDate:   "2026-09-01",
		FreezesRemaining: 1,
	}

	update := ComputeStreak(g, "2026-09-01", 1)

	assert.Equal(t, 4, update.Current)
	assert.Equal(t, 9, update.Longest)
	assert.Equal(t, "2026-09-01", update.LastActiveDate)
	assert.False(t, update.DailyBonusAwarded)
	assert.Equal(t, 0, update.BonusXP)
}

func TestComputeStreak_YesterdayIncrements(t *testing.T) {
	g := &models.UserGamification{
		CurrentStreak:    4,
		LongestStreak:    9,
		LastActiveDate:   "2026-08-31",
		FreezesRemaining: 1,
	}

	update := ComputeStreak(g, "2026-09-01", 1)

	require.True(t, update.DailyBonusAwarded)
	assert.Equal(t, 5, update.Current)
	assert.Equal(t, 9, update.Longest)
	assert.Equal(t, "2026-09-01", update.LastActiveDate)
	// 5-day streak: login bonus plus the 3+ day tier
	assert.Equal(t, 10+10, update.BonusXP)
}

func TestComputeStreak_IncrementExtendsLongest(t *testing.T) {
	g := &models.UserGamification{
		CurrentStreak:  9,
		LongestStreak:  9,
		LastActiveDate: "2026-08-31",
	}

	update := ComputeStreak(g, "2026-09-01", 1)

	assert.Equal(t, 10, update.Current)
	assert.Equal(t, 10, update.Longest)
	// 10-day streak hits the 7+ day tier
	assert.Equal(t, 10+20, update.BonusXP)
}

func TestComputeStreak_GapResets(t *testing.T) {
	g := &models.UserGamification{
		CurrentStreak:    12,
		LongestStreak:    15,
		LastActiveDate:   "2026-08-20",
		FreezesRemaining: 0,
	}

	update := ComputeStreak(g, "2026-09-01", 1)

	assert.Equal(t, 1, update.Current)
	assert.Equal(t, 15, update.Longest)
	assert.Equal(t, "2026-09-01", update.LastActiveDate)
	assert.False(t, update.DailyBonusAwarded)
	// One weekly freeze restored, capped at the allowance
	assert.Equal(t, 1, update.FreezesRemaining)
}

func TestComputeStreak_FreezeRestoreCapped(t *testing.T) {
	g := &models.UserGamification{
		CurrentStreak:    3,
		LongestStreak:    3,
		LastActiveDate:   "2026-08-20",
		FreezesRemaining: 1,
	}

	update := ComputeStreak(g, "2026-09-01", 1)

	assert.Equal(t, 1, update.FreezesRemaining)
}

func TestComputeStreak_FirstEverCheck(t *testing.T) {
	g := &models.UserGamification{}

	update := ComputeStreak(g, "2026-09-01", 1)

	assert.Equal(t, 1, update.Current)
	assert.Equal(t, 1, update.Longest)
	assert.False(t, update.DailyBonusAwarded)
}

func TestStreakTierBonus(t *testing.T) {
	assert.Equal(t, 0, streakTierBonus(1))
	assert.Equal(t, 10, streakTierBonus(3))
	assert.Equal(t, 20, streakTierBonus(7))
	assert.Equal(t, 30, streakTierBonus(14))
	assert.Equal(t, 50, streakTierBonus(30))
}
