package prompt

import (
	"fmt"

	"edubridge/internal/domain"
)

const feedbackTemplate = `Como experto en %s, evalúa las siguientes respuestas y proporciona retroalimentación constructiva:

%s

Para cada respuesta proporciona:
1. Evaluación de la respuesta (correcta, parcialmente correcta, incorrecta)
2. Comentarios constructivos específicos
3. Sugerencias de mejora
4. Puntuación (0-100)

Luego proporciona:
- Puntuación total
- Fortalezas generales
- Áreas de mejora
- Recomendaciones personalizadas

Devuelve el resultado en formato JSON:
{
    "individual_feedback": [
        {
            "question_number": 1,
            "evaluation": "correcta|parcial|incorrecta",
            "score": 0-100,
            "comments": "comentarios específicos",
            "suggestions": "sugerencias"
        }
    ],
    "overall": {
        "total_score": 0-100,
        "strengths": ["fortaleza 1", "fortaleza 2"],
        "areas_to_improve": ["área 1", "área 2"],
        "recommendations": ["recomendación 1", "recomendación 2"]
    }
}`

// Feedback asks for per-answer and overall feedback as JSON.
func (b *Builder) Feedback(answers []domain.AnswerSubmission) string {
	return fmt.Sprintf(feedbackTemplate, b.subjectArea, indentJSON(answers))
}
