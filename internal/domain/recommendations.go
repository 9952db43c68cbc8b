package domain

// Recommendations is the personalised study plan produced by the model.
type Recommendations struct {
	Resources         []Resource `json:"resources"`
	Exercises         []Exercise `json:"exercises"`
	Strategies        []string   `json:"strategies"`
	TopicsToReinforce []string   `json:"topics_to_reinforce"`
	ShortTermGoals    []string   `json:"short_term_goals"`
}

type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

type Exercise struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime string `json:"estimated_time"`
}
