package textbook

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Textbook is a generated textbook for one curriculum strand.
// Its primary key is the composite id grade_subject_strand.
type Textbook struct {
	ID         string `json:"id" gorm:"primaryKey"`
	OwnerID    uint   `json:"owner_id" gorm:"index"`
	GradeLevel string `json:"grade_level"`
	Subject    string `json:"subject"`
	Strand     string `json:"strand"`
	Title      string `json:"title"`
	Summary    string `json:"summary" gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsDeleted  bool `gorm:"default:false"`
}

// CompositeID builds the textbook document id from its curriculum key
func CompositeID(grade, subject, strand string) string {
	return fmt.Sprintf("%s_%s_%s", grade, subject, strand)
}

// Chapter is one generated chapter of a textbook
type Chapter struct {
	gorm.Model
	TextbookID string         `json:"textbook_id" gorm:"index;not null"`
	Title      string         `json:"title"`
	Content    string         `json:"content" gorm:"type:text"`
	Activities datatypes.JSON `json:"activities"` // JSON array of classroom activities
	OrderIndex int            `json:"order_index" gorm:"default:0"`
	IsDeleted  bool           `gorm:"default:false"`
}
