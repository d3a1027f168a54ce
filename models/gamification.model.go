package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserGamification holds XP, level, neuron currency and streak state for a user.
// Created on first access with defaults.
type UserGamification struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalXP          int            `json:"total_xp" gorm:"default:0"`
	Level            int            `json:"level" gorm:"default:1"`
	Neurons          int            `json:"neurons" gorm:"default:0"`
	CurrentStreak    int            `json:"current_streak" gorm:"default:0"`
	LongestStreak    int            `json:"longest_streak" gorm:"default:0"`
	LastActiveDate   string         `json:"last_active_date" gorm:"default:''"` // ISO day, e.g. 2026-09-01
	FreezesRemaining int            `json:"freezes_remaining" gorm:"default:1"`
	Badges           datatypes.JSON `json:"badges"` // JSON array of badge ids
	IsDeleted        bool           `gorm:"default:false"`
}

// XPTransaction is the ledger of every XP award
type XPTransaction struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Amount     int       `json:"amount"`
	Multiplier float64   `json:"multiplier" gorm:"default:1"`
	Awarded    int       `json:"awarded"` // floor(amount * multiplier)
	Source     string    `json:"source" gorm:"type:varchar(50)"` // QUIZ, STREAK, LESSON, LOGIN
	AwardedAt  time.Time `json:"awarded_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
