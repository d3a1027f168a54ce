package models

import "gorm.io/gorm"

// Notification is an in-app message for a user
type Notification struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	Kind      string `json:"kind" gorm:"type:varchar(50);default:'GENERAL'"` // GENERAL, LEVEL_UP, CONTENT_READY
	IsRead    bool   `json:"is_read" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}
