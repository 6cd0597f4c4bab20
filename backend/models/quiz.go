package models

import (
	"time"

	"gorm.io/datatypes"
)

type Quiz struct {
	ID           string         `gorm:"primaryKey" json:"id"` // owning lecture id
	PassingScore float64        `json:"passingScore"`
	MaxAttempts  int            `json:"maxAttempts"`
	Questions    []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
}

type QuizQuestion struct {
	ID            uint                        `gorm:"primaryKey" json:"-"`
	QuizID        string                      `gorm:"index" json:"-"`
	Question      string                      `json:"question"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer int                         `json:"correctAnswer"`
	SequenceOrder int                         `json:"-"`
}

// QuizAttempt keeps only the latest submission per (user, lecture).
// Each new submission overwrites the previous one.
type QuizAttempt struct {
	UserID        string    `gorm:"primaryKey" json:"userId"`
	LectureID     string    `gorm:"primaryKey" json:"lectureId"`
	CourseID      string    `json:"courseId"`
	SubCourseID   string    `json:"subCourseId"`
	Attempts      int       `json:"attempts"`
	LastScore     float64   `json:"lastScore"`
	Passed        bool      `json:"passed"`
	LastAttemptAt time.Time `json:"lastAttemptAt"`
}
