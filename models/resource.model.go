package models

import "gorm.io/gorm"

// Resource is a learning resource surfaced on the dashboard, generated
// lazily when a filtered listing comes back empty
type Resource struct {
	gorm.Model
	GradeLevel   string `json:"grade_level" gorm:"index"`
	Subject      string `json:"subject" gorm:"index"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	ResourceType string `json:"resource_type" gorm:"type:varchar(50)"` // ARTICLE, VIDEO, EXERCISE
	URL          string `json:"url"`
	IsDeleted    bool   `gorm:"default:false"`
}
