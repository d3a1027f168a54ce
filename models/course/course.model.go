package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a generated learning course
type Course struct {
	gorm.Model
	OwnerID      uint           `json:"owner_id" gorm:"index;not null"`
	Title        string         `json:"title"`
	Description  string         `json:"description" gorm:"type:text"`
	Topic        string         `json:"topic"`
	Subject      string         `json:"subject"`
	GradeLevel   string         `json:"grade_level"`
	Difficulty   string         `json:"difficulty" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Tags         datatypes.JSON `json:"tags"`
	ThumbnailURL string         `json:"thumbnail_url"`
	IsPublic     bool           `json:"is_public" gorm:"default:true"`
	IsDeleted    bool           `gorm:"default:false"`
}
