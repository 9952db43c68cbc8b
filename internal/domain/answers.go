package domain

// AnswerSubmission is a free-form answer sent for feedback.
type AnswerSubmission struct {
	QuestionNumber FlexInt    `json:"question_number"`
	Question       string     `json:"question"`
	Answer         FlexString `json:"answer"`
}

// UserAnswer is the answer given to one question of a generated quiz.
type UserAnswer struct {
	QuestionNumber FlexInt    `json:"question_number"`
	Answer         FlexString `json:"answer"`
}
