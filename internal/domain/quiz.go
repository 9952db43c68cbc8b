package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// QuestionType is the discriminator the model attaches to each question.
// The set is open: any value outside the known constants is QuestionTypeUnknown.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeOpenEnded      QuestionType = "open_ended"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeUnknown        QuestionType = "unknown"
)

// Kind folds unrecognised values into QuestionTypeUnknown.
func (t QuestionType) Kind() QuestionType {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeOpenEnded, QuestionTypeTrueFalse:
		return t
	default:
		return QuestionTypeUnknown
	}
}

// FlexString accepts a JSON string, number or boolean and keeps it as text.
// Models are inconsistent about quoting answers such as true/false.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = FlexString(strconv.FormatBool(b))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// Quiz is the quiz structure generated by the model and echoed back by the
// client when it asks for an evaluation.
type Quiz struct {
	Topic          string     `json:"topic"`
	TotalQuestions FlexInt    `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

// Question is a single quiz item. Options is only present for multiple choice.
type Question struct {
	Number        FlexInt      `json:"number"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer FlexString   `json:"correct_answer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
}

// IsEmpty reports whether the quiz carries nothing worth evaluating.
func (q *Quiz) IsEmpty() bool {
	return q == nil || (q.Topic == "" && len(q.Questions) == 0)
}

// TypeCounts partitions the questions by their kind.
func (q *Quiz) TypeCounts() map[QuestionType]int {
	counts := map[QuestionType]int{
		QuestionTypeMultipleChoice: 0,
		QuestionTypeOpenEnded:      0,
		QuestionTypeTrueFalse:      0,
		QuestionTypeUnknown:        0,
	}
	for _, question := range q.Questions {
		counts[question.Type.Kind()]++
	}
	return counts
}
