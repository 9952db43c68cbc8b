package domain

// Feedback is the model's assessment of a list of free-form answers.
type Feedback struct {
	IndividualFeedback []AnswerFeedback `json:"individual_feedback"`
	Overall            OverallFeedback  `json:"overall"`
}

type AnswerFeedback struct {
	QuestionNumber FlexInt   `json:"question_number"`
	Evaluation     string    `json:"evaluation"`
	Score          FlexFloat `json:"score"`
	Comments       string    `json:"comments"`
	Suggestions    string    `json:"suggestions"`
}

type OverallFeedback struct {
	TotalScore      FlexFloat `json:"total_score"`
	Strengths       []string  `json:"strengths"`
	AreasToImprove  []string  `json:"areas_to_improve"`
	Recommendations []string  `json:"recommendations"`
}
