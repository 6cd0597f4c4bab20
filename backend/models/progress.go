package models

import (
	"time"

	"gorm.io/datatypes"
)

type Enrollment struct {
	UserID        string    `gorm:"primaryKey" json:"userId"`
	CourseID      string    `gorm:"primaryKey" json:"courseId"`
	EnrolledAt    time.Time `json:"enrolledAt"`
	Progress      float64   `json:"progress"`
	CurrentLesson int       `json:"currentLesson"`
	Completed     bool      `json:"completed"`
}

// ProgressRecord is the per-user-per-course ledger of completed lectures.
// Progress percentage and the enrollment's completed flag are derived from it.
type ProgressRecord struct {
	UserID              string                      `gorm:"primaryKey" json:"userId"`
	CourseID            string                      `gorm:"primaryKey" json:"courseId"`
	CompletedLectures   datatypes.JSONSlice[string] `json:"completedLectures"`
	CompletedSubCourses datatypes.JSONSlice[string] `json:"completedSubCourses"`
	Progress            float64                     `json:"progress"`
	LastAccessedAt      time.Time                   `json:"lastAccessedAt"`
}

// HasLecture reports membership in the completed-lecture set.
func (p *ProgressRecord) HasLecture(lectureID string) bool {
	for _, id := range p.CompletedLectures {
		if id == lectureID {
			return true
		}
	}
	return false
}
