package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	ID          string                      `gorm:"primaryKey" json:"id"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Difficulty  string                      `json:"difficulty"` // Beginner, Intermediate, Advanced
	Duration    string                      `json:"duration"`
	Lessons     int                         `json:"lessons"`
	Image       string                      `json:"image,omitempty"`
	Topics      datatypes.JSONSlice[string] `json:"topics"`
	IsPopular   bool                        `json:"isPopular"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

type SubCourse struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CourseID      string    `gorm:"index" json:"courseId"`
	Title         string    `json:"title"`
	Duration      string    `json:"duration"`
	SequenceOrder int       `json:"order"`
	Lectures      []Lecture `gorm:"foreignKey:SubCourseID" json:"lectures"`

	// Derived from the progress ledger, never persisted
	Completed bool `gorm:"-" json:"completed"`
	IsLocked  bool `gorm:"-" json:"isLocked"`
}

type Lecture struct {
	ID            string `gorm:"primaryKey" json:"id"`
	SubCourseID   string `gorm:"index" json:"subCourseId"`
	CourseID      string `gorm:"index" json:"courseId"`
	Title         string `json:"title"`
	Duration      string `json:"duration"`
	Content       string `json:"content,omitempty"`
	VideoURL      string `json:"videoUrl,omitempty"`
	SequenceOrder int    `json:"order"`
	HasQuiz       bool   `json:"hasQuiz"`

	Completed bool `gorm:"-" json:"completed"`
	IsLocked  bool `gorm:"-" json:"isLocked"`
}

// DifficultyRank orders Beginner < Intermediate < Advanced for catalog sorting.
func DifficultyRank(d string) int {
	switch d {
	case "Beginner":
		return 1
	case "Intermediate":
		return 2
	case "Advanced":
		return 3
	}
	return 4
}
