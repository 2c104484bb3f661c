package entity

import "time"

// Question is a single quiz item. CorrectAnswer is stored and returned in
// plaintext; any caller with quiz read access sees it.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Quiz is an ordered list of questions attached to a course. No grading
// logic lives server-side.
type Quiz struct {
	ID        string     `json:"id"`
	CourseID  string     `json:"courseId"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// QuizUpdate carries a partial quiz mutation. Nil fields are left
// untouched.
type QuizUpdate struct {
	CourseID  *string
	Questions *[]Question
}
