package prompt

import (
	"fmt"
	"strings"
)

const quizTemplate = `Genera un cuestionario de %[1]d preguntas sobre "%[2]s" enfocado en el área de %[3]s.

Distribuye los tipos de preguntas de la siguiente manera:
- 40%% opción múltiple (4 opciones cada una)
- 30%% respuesta abierta
- 30%% verdadero/falso

Devuelve el resultado en formato JSON con la siguiente estructura:
{
    "topic": "%[2]s",
    "total_questions": %[1]d,
    "questions": [
        {
            "number": 1,
            "type": "multiple_choice|open_ended|true_false",
            "question": "texto de la pregunta",
            "options": ["opción 1", "opción 2", "opción 3", "opción 4"] (solo para multiple_choice),
            "correct_answer": "respuesta correcta",
            "explanation": "explicación breve"
        }
    ]
}

Asegúrate de que las preguntas sean de nivel universitario y relacionadas con la %[4]s.`

// Quiz asks for a quiz of numQuestions mixed-type questions about topic.
func (b *Builder) Quiz(topic string, numQuestions int) string {
	if strings.TrimSpace(topic) == "" {
		topic = b.defaultTopic
	}
	if numQuestions <= 0 {
		numQuestions = DefaultNumQuestions
	}
	return fmt.Sprintf(quizTemplate, numQuestions, topic, b.subjectArea, b.subjectLower())
}
