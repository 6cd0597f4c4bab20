package services

import (
	"sort"

	"project/backend/models"
)

// ApplyProgress derives completion and lock state for a course structure
// from the set of completed lecture IDs. Pure function: the input slice is
// not modified, and the result depends only on its arguments.
//
// A lecture unlocks when the lecture before it (in course-wide ordinal
// order, crossing sub-course boundaries) is completed; the very first
// lecture is always unlocked. A sub-course is completed when every lecture
// in it is completed, and unlocks when the previous sub-course is completed.
func ApplyProgress(subCourses []models.SubCourse, completedLectures []string) []models.SubCourse {
	completed := make(map[string]bool, len(completedLectures))
	for _, id := range completedLectures {
		completed[id] = true
	}

	out := make([]models.SubCourse, len(subCourses))
	copy(out, subCourses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SequenceOrder < out[j].SequenceOrder
	})

	prevLectureCompleted := true // первая лекция курса всегда открыта
	for si := range out {
		lectures := make([]models.Lecture, len(out[si].Lectures))
		copy(lectures, out[si].Lectures)
		sort.SliceStable(lectures, func(i, j int) bool {
			return lectures[i].SequenceOrder < lectures[j].SequenceOrder
		})

		allCompleted := len(lectures) > 0
		for li := range lectures {
			lectures[li].Completed = completed[lectures[li].ID]
			lectures[li].IsLocked = !prevLectureCompleted
			prevLectureCompleted = lectures[li].Completed
			if !lectures[li].Completed {
				allCompleted = false
			}
		}

		out[si].Lectures = lectures
		out[si].Completed = allCompleted
		if si == 0 {
			out[si].IsLocked = false
		} else {
			out[si].IsLocked = !out[si-1].Completed
		}
	}

	return out
}
