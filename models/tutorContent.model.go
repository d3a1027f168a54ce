package models

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TutorContent caches generated tutor content per curriculum leaf.
// The cache key is grade_subject_strand_substrand_contentType and is
// write-once: the first writer wins, later writes are skipped.
type TutorContent struct {
	gorm.Model
	CacheKey    string         `json:"cache_key" gorm:"uniqueIndex;not null"`
	GradeLevel  string         `json:"grade_level"`
	Subject     string         `json:"subject"`
	Strand      string         `json:"strand"`
	Substrand   string         `json:"substrand"`
	ContentType string         `json:"content_type" gorm:"type:varchar(30)"` // read, podcast, immersive, quiz
	Body        datatypes.JSON `json:"body"`
	IsDeleted   bool           `gorm:"default:false"`
}

// TutorCacheKey builds the composite cache key for a substrand + content type
func TutorCacheKey(grade, subject, strand, substrand, contentType string) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s", grade, subject, strand, substrand, contentType)
}
