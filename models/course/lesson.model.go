package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson is one section of a generated course
type Lesson struct {
	gorm.Model
	CourseID   uint           `json:"course_id" gorm:"index;not null"`
	Title      string         `json:"title"`
	Content    string         `json:"content" gorm:"type:text"`
	Objectives datatypes.JSON `json:"objectives"` // JSON array of learning objectives
	OrderIndex int            `json:"order_index" gorm:"default:0"`
	IsDeleted  bool           `gorm:"default:false"`
}
