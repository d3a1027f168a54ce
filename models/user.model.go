package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string    `gorm:"default:''"`
	Name         string    `gorm:"default:''"`
	Email        string    `gorm:"unique;not null"`
	Role         string    `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	Password     string    `gorm:"not null"`
	GradeLevel   string    `gorm:"default:''"` // grade1 .. grade9 (CBC)
	School       string    `gorm:"default:''"`
	County       string    `gorm:"default:''"`
	IsOnboarded  bool      `gorm:"default:false"`
	LastLogin    time.Time `gorm:"default:NULL"`
	IsDeleted    bool      `gorm:"default:false"`
}
