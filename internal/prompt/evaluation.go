package prompt

import (
	"fmt"

	"edubridge/internal/domain"
)

const evaluationTemplate = `Evalúa las siguientes respuestas del quiz sobre "%s":

PREGUNTAS Y RESPUESTAS CORRECTAS:
%s

RESPUESTAS DEL USUARIO:
%s

Evalúa cada respuesta y proporciona:
1. Puntuación por pregunta
2. Feedback específico
3. Puntuación total
4. Nivel de desempeño

Devuelve el resultado en formato JSON:
{
    "evaluations": [
        {
            "question_number": 1,
            "correct": true|false,
            "score": 0-100,
            "feedback": "feedback específico",
            "correct_answer": "respuesta correcta"
        }
    ],
    "summary": {
        "total_score": 0-100,
        "correct_count": 0,
        "total_questions": 0,
        "performance_level": "excelente|bueno|regular|necesita mejorar",
        "general_feedback": "comentarios generales"
    }
}`

// EvaluateQuiz asks the model to grade userAnswers against quiz.
func (b *Builder) EvaluateQuiz(quiz *domain.Quiz, userAnswers []domain.UserAnswer) string {
	topic := b.subjectArea
	questions := []domain.Question{}
	if quiz != nil {
		if quiz.Topic != "" {
			topic = quiz.Topic
		}
		if quiz.Questions != nil {
			questions = quiz.Questions
		}
	}
	return fmt.Sprintf(evaluationTemplate, topic, indentJSON(questions), indentJSON(userAnswers))
}
