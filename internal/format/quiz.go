// Package format renders generated content for display in the client.
package format

import (
	"fmt"
	"strings"

	"edubridge/internal/domain"
)

var questionLabels = map[domain.QuestionType]string{
	domain.QuestionTypeMultipleChoice: "Opción Múltiple",
	domain.QuestionTypeOpenEnded:      "Respuesta Abierta",
	domain.QuestionTypeTrueFalse:      "Verdadero/Falso",
	domain.QuestionTypeUnknown:        "Otro Tipo",
}

// QuizFormatter renders quizzes as markdown.
type QuizFormatter struct {
	defaultTopic string
}

// NewQuizFormatter returns a formatter that titles topic-less quizzes with defaultTopic.
func NewQuizFormatter(defaultTopic string) *QuizFormatter {
	return &QuizFormatter{defaultTopic: defaultTopic}
}

// QuestionLabel returns the display label for a question type.
func QuestionLabel(t domain.QuestionType) string {
	return questionLabels[t.Kind()]
}

// Display renders the quiz header, the per-type distribution and one block
// per question in the order and numbering supplied.
func (f *QuizFormatter) Display(quiz *domain.Quiz) string {
	if quiz == nil {
		quiz = &domain.Quiz{}
	}
	topic := quiz.Topic
	if topic == "" {
		topic = f.defaultTopic
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Cuestionario de %s**\n\n", topic)
	sb.WriteString("**Nota sobre la distribución de preguntas:**\n")
	fmt.Fprintf(&sb, "Con un total de %d preguntas, se ha distribuido:\n", quiz.TotalQuestions)

	counts := quiz.TypeCounts()
	fmt.Fprintf(&sb, "- %d preguntas de %s\n", counts[domain.QuestionTypeMultipleChoice], questionLabels[domain.QuestionTypeMultipleChoice])
	fmt.Fprintf(&sb, "- %d preguntas de %s\n", counts[domain.QuestionTypeOpenEnded], questionLabels[domain.QuestionTypeOpenEnded])
	fmt.Fprintf(&sb, "- %d preguntas de %s\n", counts[domain.QuestionTypeTrueFalse], questionLabels[domain.QuestionTypeTrueFalse])
	if unknown := counts[domain.QuestionTypeUnknown]; unknown > 0 {
		fmt.Fprintf(&sb, "- %d preguntas de %s\n", unknown, questionLabels[domain.QuestionTypeUnknown])
	}
	sb.WriteString("\n---\n\n")

	for _, q := range quiz.Questions {
		fmt.Fprintf(&sb, "**Pregunta %d** - %s\n\n", q.Number, QuestionLabel(q.Type))
		fmt.Fprintf(&sb, "%s\n\n", q.Question)

		if len(q.Options) > 0 {
			for i, option := range q.Options {
				fmt.Fprintf(&sb, "%s. %s\n", optionLetter(i), option)
			}
			sb.WriteString("\n")
		}

		sb.WriteString("---\n\n")
	}

	return sb.String()
}

// optionLetter maps 0, 1, 2... to A, B, C... and continues past Z as AA, AB...
func optionLetter(i int) string {
	letter := string(rune('A' + i%26))
	if i < 26 {
		return letter
	}
	return optionLetter(i/26-1) + letter
}
