package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"project/backend/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidQuiz    = errors.New("quiz has no questions")
	ErrNoAttemptsLeft = errors.New("no attempts left")
)

// SubmitResult is the outcome of one quiz submission.
type SubmitResult struct {
	Passed   bool    `json:"passed"`
	Score    float64 `json:"score"`
	Attempts int     `json:"attempts"`
	CanRetry bool    `json:"canRetry"`
}

// QuizService grades submissions and tracks attempts. Only the latest
// attempt per (user, lecture) is kept.
type QuizService struct {
	DB       *gorm.DB
	Log      *log.Logger
	Content  ContentProvider
	Progress *ProgressService
}

func NewQuizService(db *gorm.DB, logger *log.Logger, content ContentProvider, progress *ProgressService) *QuizService {
	return &QuizService{DB: db, Log: logger, Content: content, Progress: progress}
}

// Quiz loads the quiz for a lecture, falling back to the content provider's
// default when the store has none.
func (qs *QuizService) Quiz(ctx context.Context, lectureID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := qs.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		First(&quiz, "id = ?", lectureID).Error
	if err == nil {
		return &quiz, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		qs.Log.Printf("quiz: loading %s: %v", lectureID, err)
	}

	if fallback := qs.Content.DefaultQuiz(lectureID); fallback != nil {
		return fallback, nil
	}
	return nil, ErrNotFound
}

// Submit grades an answer set against the quiz, records the attempt
// (overwriting the previous one) and, on a pass, marks the lecture
// completed in the progress ledger.
//
// Answers are matched to questions by position; missing positions count as
// incorrect. A submission after the attempt budget is exhausted is
// rejected.
func (qs *QuizService) Submit(ctx context.Context, userID, courseID, subCourseID, lectureID string, answers []int, quiz *models.Quiz) (*SubmitResult, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, ErrInvalidQuiz
	}

	var prior models.QuizAttempt
	priorAttempts := 0
	err := qs.DB.WithContext(ctx).
		First(&prior, "user_id = ? AND lecture_id = ?", userID, lectureID).Error
	if err == nil {
		priorAttempts = prior.Attempts
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if quiz.MaxAttempts > 0 && priorAttempts >= quiz.MaxAttempts {
		return nil, ErrNoAttemptsLeft
	}

	questions := make([]models.QuizQuestion, len(quiz.Questions))
	copy(questions, quiz.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].SequenceOrder < questions[j].SequenceOrder
	})

	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}

	score := float64(correct) / float64(len(questions)) * 100
	passed := score >= quiz.PassingScore

	attempt := models.QuizAttempt{
		UserID:        userID,
		LectureID:     lectureID,
		CourseID:      courseID,
		SubCourseID:   subCourseID,
		Attempts:      priorAttempts + 1,
		LastScore:     score,
		Passed:        passed,
		LastAttemptAt: time.Now(),
	}
	if err := qs.DB.WithContext(ctx).Save(&attempt).Error; err != nil {
		return nil, err
	}

	if passed {
		if _, err := qs.Progress.MarkLectureComplete(ctx, userID, courseID, lectureID, true); err != nil {
			return nil, err
		}
	}

	return &SubmitResult{
		Passed:   passed,
		Score:    score,
		Attempts: attempt.Attempts,
		CanRetry: attempt.Attempts < quiz.MaxAttempts && !passed,
	}, nil
}

// Attempts returns the latest attempt record, or nil when the user has not
// submitted this quiz yet.
func (qs *QuizService) Attempts(ctx context.Context, userID, lectureID string) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	err := qs.DB.WithContext(ctx).
		First(&attempt, "user_id = ? AND lecture_id = ?", userID, lectureID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}
