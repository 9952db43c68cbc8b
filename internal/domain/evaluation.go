package domain

// Evaluation is the model's grading of a completed quiz.
type Evaluation struct {
	Evaluations []QuestionEvaluation `json:"evaluations"`
	Summary     EvaluationSummary    `json:"summary"`
}

type QuestionEvaluation struct {
	QuestionNumber FlexInt    `json:"question_number"`
	Correct        FlexBool   `json:"correct"`
	Score          FlexFloat  `json:"score"`
	Feedback       string     `json:"feedback"`
	CorrectAnswer  FlexString `json:"correct_answer"`
}

type EvaluationSummary struct {
	TotalScore       FlexFloat `json:"total_score"`
	CorrectCount     FlexInt   `json:"correct_count"`
	TotalQuestions   FlexInt   `json:"total_questions"`
	PerformanceLevel string    `json:"performance_level"`
	GeneralFeedback  string    `json:"general_feedback"`
}
