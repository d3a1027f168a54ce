package gamificationController

import (
	"elimu/config"
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	"elimu/utils"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// getOrCreateGamification loads the user's gamification record, creating it
// with defaults on first access
func getOrCreateGamification(db *gorm.DB, userID uint) (*models.UserGamification, error) {
	var record models.UserGamification
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record = models.UserGamification{
		UserID:           userID,
		Level:            1,
		FreezesRemaining: config.AppConfig.WeeklyFreezeAllowance,
		Badges:           datatypes.JSON([]byte("[]")),
	}
	if err := db.Create(&record).Error; err != nil {
		// A concurrent first access may have created it already
		if lookupErr := db.Where("user_id = ?", userID).First(&record).Error; lookupErr == nil {
			return &record, nil
		}
		return nil, err
	}
	return &record, nil
}

// GetProfile returns the user's gamification state, creating defaults on first access
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	record, err := getOrCreateGamification(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error loading gamification profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load gamification profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gamification profile fetched successfully!", record)
}

// AwardXP applies one XP award and any level-ups it causes
func AwardXP(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedXP").(*XPAwardRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	record, err := getOrCreateGamification(db, userID)
	if err != nil {
		log.Printf("Error loading gamification record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award XP!", nil)
	}

	result, err := applyXPAward(db, record, reqData.Amount, reqData.Multiplier, reqData.Source)
	if err != nil {
		log.Printf("Error applying XP award: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award XP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "XP awarded successfully!", result)
}

// XPAwardRequest is the validated XP award body
type XPAwardRequest struct {
	Amount     int     `json:"amount"`
	Multiplier float64 `json:"multiplier"`
	Source     string  `json:"source"`
}

// XPAwardResult is the response body of one XP award
type XPAwardResult struct {
	Awarded        int  `json:"awarded"`
	NewTotalXP     int  `json:"new_total_xp"`
	OldLevel       int  `json:"old_level"`
	NewLevel       int  `json:"new_level"`
	LeveledUp      bool `json:"leveled_up"`
	NeuronsAwarded int  `json:"neurons_awarded"`
}

// applyXPAward mutates the gamification record for one award and records the
// ledger entry. Neuron credit uses an atomic increment so concurrent awards
// never lose currency.
func applyXPAward(db *gorm.DB, record *models.UserGamification, amount int, multiplier float64, source string) (*XPAwardResult, error) {
	oldLevel := record.Level
	newTotal, awarded := ApplyXP(record.TotalXP, amount, multiplier)
	newLevel := LevelForXP(newTotal)
	neurons := NeuronsForLevels(oldLevel, newLevel)

	updates := map[string]interface{}{
		"total_xp": newTotal,
		"level":    newLevel,
	}
	if neurons > 0 {
		updates["neurons"] = gorm.Expr("neurons + ?", neurons)
	}
	if newLevel > oldLevel {
		updates["badges"] = appendLevelBadges(record.Badges, oldLevel, newLevel)
	}

	if err := db.Model(&models.UserGamification{}).
		Where("id = ?", record.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	ledger := models.XPTransaction{
		UserID:     record.UserID,
		Amount:     amount,
		Multiplier: multiplier,
		Awarded:    awarded,
		Source:     source,
		AwardedAt:  time.Now(),
	}
	if err := db.Create(&ledger).Error; err != nil {
		return nil, err
	}

	record.TotalXP = newTotal
	record.Level = newLevel

	if newLevel > oldLevel {
		notifyLevelUp(db, record.UserID, newLevel, neurons)
	}

	return &XPAwardResult{
		Awarded:        awarded,
		NewTotalXP:     newTotal,
		OldLevel:       oldLevel,
		NewLevel:       newLevel,
		LeveledUp:      newLevel > oldLevel,
		NeuronsAwarded: neurons,
	}, nil
}

// appendLevelBadges adds one badge id per crossed level to the stored list
func appendLevelBadges(badges datatypes.JSON, oldLevel, newLevel int) datatypes.JSON {
	var ids []string
	if len(badges) > 0 {
		if err := json.Unmarshal(badges, &ids); err != nil {
			ids = []string{}
		}
	}
	for level := oldLevel + 1; level <= newLevel; level++ {
		ids = append(ids, fmt.Sprintf("level-%d", level))
	}
	out, err := json.Marshal(ids)
	if err != nil {
		return badges
	}
	return datatypes.JSON(out)
}

// notifyLevelUp records an in-app notification and emails the user, fire-and-forget
func notifyLevelUp(db *gorm.DB, userID uint, level, neurons int) {
	notification := models.Notification{
		UserID: userID,
		Title:  fmt.Sprintf("Level %d reached!", level),
		Body:   fmt.Sprintf("Hongera! You reached level %d and earned %d neurons.", level, neurons),
		Kind:   "LEVEL_UP",
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Error creating level-up notification: %v", err)
	}

	go func() {
		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return
		}
		utils.SendLevelUpEmail(user.Email, user.Name, level, neurons)
	}()
}

// AwardQuizXP is called by the quiz submission handler to pay out a graded
// attempt without going through the HTTP award endpoint
func AwardQuizXP(db *gorm.DB, userID uint, score int, multiplier float64) (*XPAwardResult, error) {
	record, err := getOrCreateGamification(db, userID)
	if err != nil {
		return nil, err
	}
	return applyXPAward(db, record, score, multiplier, "QUIZ")
}

// CheckStreak applies the daily streak rules and pays the daily bonus when due
func CheckStreak(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	record, err := getOrCreateGamification(db, userID)
	if err != nil {
		log.Printf("Error loading gamification record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check streak!", nil)
	}

	update := ComputeStreak(record, utils.TodayISO(), config.AppConfig.WeeklyFreezeAllowance)

	if err := db.Model(&models.UserGamification{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"current_streak":    update.Current,
			"longest_streak":    update.Longest,
			"last_active_date":  update.LastActiveDate,
			"freezes_remaining": update.FreezesRemaining,
		}).Error; err != nil {
		log.Printf("Error saving streak update: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check streak!", nil)
	}

	var xpResult *XPAwardResult
	if update.DailyBonusAwarded && update.BonusXP > 0 {
		record.CurrentStreak = update.Current
		xpResult, err = applyXPAward(db, record, update.BonusXP, 1, "STREAK")
		if err != nil {
			log.Printf("Error awarding streak bonus: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to award streak bonus!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Streak checked successfully!", fiber.Map{
		"streak":              update,
		"daily_bonus_awarded": update.DailyBonusAwarded,
		"bonus_xp":            update.BonusXP,
		"xp_result":           xpResult,
	})
}

// GetXPHistory returns the user's XP ledger, newest first
func GetXPHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var transactions []models.XPTransaction
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Limit(50).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch XP history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "XP history fetched successfully!", transactions)
}
