package utils

import (
	"elimu/config"
	"elimu/database"
	"elimu/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STREAK-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// restoreWeeklyFreezes tops every user's streak freezes back up to the weekly
// allowance. Freezes are restored weekly but never spent by any endpoint.
func restoreWeeklyFreezes() {
	db := database.Database.Db
	allowance := config.AppConfig.WeeklyFreezeAllowance

	result := db.Model(&models.UserGamification{}).
		Where("freezes_remaining < ? AND is_deleted = false", allowance).
		Update("freezes_remaining", allowance)
	if result.Error != nil {
		logScheduler("Error restoring weekly freezes: " + result.Error.Error())
		return
	}

	logScheduler("Weekly freeze restore completed")
}

// StartStreakScheduler runs the weekly freeze restore every Monday at midnight
func StartStreakScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 0 * * 1", restoreWeeklyFreezes); err != nil {
		log.Fatalf("Failed to schedule weekly freeze restore: %v", err)
	}

	c.Start()
	logScheduler("Streak scheduler started")
}
