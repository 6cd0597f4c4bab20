package services

import (
	"time"

	"project/backend/models"

	"gorm.io/datatypes"
)

// ContentProvider supplies default catalog content: the courses seeded into
// an empty store and the fallback structure served when a course has no
// sub-course rows yet. Injected so tests can tell "no data" apart from
// "fallback data".
type ContentProvider interface {
	DefaultCourses() []models.Course
	DefaultSubCourses(courseID string) []models.SubCourse
	DefaultQuiz(lectureID string) *models.Quiz
}

// StaticContent is the built-in ContentProvider.
type StaticContent struct{}

func (StaticContent) DefaultCourses() []models.Course {
	now := time.Now()
	return []models.Course{
		{
			ID:          "python-basics",
			Title:       "Python Fundamentals",
			Description: "Master the building blocks of Python programming with hands-on exercises and real-world projects.",
			Difficulty:  "Beginner",
			Duration:    "4 weeks",
			Lessons:     24,
			Topics:      datatypes.NewJSONSlice([]string{"Variables", "Functions", "Data Structures", "Control Flow"}),
			IsPopular:   true,
			CreatedAt:   now,
		},
		{
			ID:          "python-intermediate",
			Title:       "Object-Oriented Python",
			Description: "Deep dive into OOP concepts, design patterns, and advanced Python features for scalable applications.",
			Difficulty:  "Intermediate",
			Duration:    "6 weeks",
			Lessons:     32,
			Topics:      datatypes.NewJSONSlice([]string{"Classes", "Inheritance", "Polymorphism", "Decorators"}),
			IsPopular:   false,
			CreatedAt:   now,
		},
		{
			ID:          "python-advanced",
			Title:       "Advanced Python Mastery",
			Description: "Explore metaclasses, async programming, and performance optimization techniques.",
			Difficulty:  "Advanced",
			Duration:    "8 weeks",
			Lessons:     28,
			Topics:      datatypes.NewJSONSlice([]string{"Metaclasses", "Async/Await", "Memory Management", "Profiling"}),
			IsPopular:   false,
			CreatedAt:   now,
		},
		{
			ID:          "python-ml-ai",
			Title:       "Python for AI & Machine Learning",
			Description: "Build intelligent applications using NumPy, Pandas, Scikit-learn, and TensorFlow.",
			Difficulty:  "Advanced",
			Duration:    "12 weeks",
			Lessons:     45,
			Topics:      datatypes.NewJSONSlice([]string{"NumPy", "Pandas", "ML Algorithms", "Deep Learning"}),
			IsPopular:   true,
			CreatedAt:   now,
		},
	}
}

func (StaticContent) DefaultSubCourses(courseID string) []models.SubCourse {
	if courseID != "python-basics" {
		return nil
	}

	return []models.SubCourse{
		{
			ID:            "intro-python",
			CourseID:      courseID,
			Title:         "Introduction to Python",
			Duration:      "45 min",
			SequenceOrder: 1,
			Lectures: []models.Lecture{
				{
					ID:            "what-is-python",
					SubCourseID:   "intro-python",
					CourseID:      courseID,
					Title:         "What is Python?",
					Duration:      "8 min",
					Content:       "Python is a high-level programming language...",
					SequenceOrder: 1,
					HasQuiz:       true,
				},
				{
					ID:            "python-uses",
					SubCourseID:   "intro-python",
					CourseID:      courseID,
					Title:         "Where is Python used?",
					Duration:      "12 min",
					Content:       "Python is used in web development, data science...",
					SequenceOrder: 2,
					HasQuiz:       true,
				},
			},
		},
		{
			ID:            "first-program",
			CourseID:      courseID,
			Title:         "Your First Python Program",
			Duration:      "30 min",
			SequenceOrder: 2,
			Lectures: []models.Lecture{
				{
					ID:            "hello-world",
					SubCourseID:   "first-program",
					CourseID:      courseID,
					Title:         "Hello, World!",
					Duration:      "10 min",
					Content:       "Every Python journey starts with print(\"Hello, World!\")...",
					SequenceOrder: 1,
					HasQuiz:       false,
				},
				{
					ID:            "running-scripts",
					SubCourseID:   "first-program",
					CourseID:      courseID,
					Title:         "Running Python Scripts",
					Duration:      "20 min",
					Content:       "Scripts run through the interpreter with python script.py...",
					SequenceOrder: 2,
					HasQuiz:       false,
				},
			},
		},
	}
}

func (StaticContent) DefaultQuiz(lectureID string) *models.Quiz {
	return &models.Quiz{
		ID:           lectureID,
		PassingScore: 80,
		MaxAttempts:  3,
		Questions: []models.QuizQuestion{
			{
				QuizID:        lectureID,
				Question:      "Who created Python?",
				Options:       datatypes.NewJSONSlice([]string{"Guido van Rossum", "Dennis Ritchie", "James Gosling", "Bjarne Stroustrup"}),
				CorrectAnswer: 0,
				SequenceOrder: 1,
			},
			{
				QuizID:        lectureID,
				Question:      "In what year was Python first released?",
				Options:       datatypes.NewJSONSlice([]string{"1989", "1991", "1995", "2000"}),
				CorrectAnswer: 1,
				SequenceOrder: 2,
			},
		},
	}
}
