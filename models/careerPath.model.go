package models

import (
	"time"

	"gorm.io/gorm"
)

// CareerPath is owned by the generating user but globally readable
type CareerPath struct {
	ID          string `json:"id" gorm:"primaryKey"` // uuid
	OwnerID     uint   `json:"owner_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Field       string `json:"field"` // e.g. engineering, medicine, agriculture
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDeleted   bool `gorm:"default:false"`
}

// CareerCourse is one step of a career path's ordered course list
type CareerCourse struct {
	gorm.Model
	CareerPathID string `json:"career_path_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

// SavedCareerPath links a user to a career path they bookmarked
type SavedCareerPath struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	CareerPathID string `json:"career_path_id" gorm:"index;not null"`
	IsDeleted    bool   `gorm:"default:false"`
}
