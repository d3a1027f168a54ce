package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is a teacher-owned assessment document
type Assessment struct {
	gorm.Model
	TeacherID   uint           `json:"teacher_id" gorm:"index;not null"`
	Title       string         `json:"title"`
	Subject     string         `json:"subject"`
	GradeLevel  string         `json:"grade_level"`
	Description string         `json:"description" gorm:"type:text"`
	Questions   datatypes.JSON `json:"questions"`
	IsDeleted   bool           `gorm:"default:false"`
}

// UploadedMaterial is a file attached to an assessment, stored in the bucket
type UploadedMaterial struct {
	gorm.Model
	AssessmentID uint   `json:"assessment_id" gorm:"index;not null"`
	TeacherID    uint   `json:"teacher_id" gorm:"index;not null"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url"`
	MimeType     string `json:"mime_type" gorm:"type:varchar(100)"`
	SizeBytes    int64  `json:"size_bytes"`
	IsDeleted    bool   `gorm:"default:false"`
}
