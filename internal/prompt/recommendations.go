package prompt

import "fmt"

var studentLevels = map[string]string{
	"beginner":     "principiante",
	"intermediate": "intermedio",
	"advanced":     "avanzado",
}

const recommendationsTemplate = `Como asistente educativo en %s, genera recomendaciones personalizadas:

Nivel del estudiante: %s
Dificultades específicas: %s
Intereses: %s

Proporciona recomendaciones en las siguientes categorías:
1. Recursos de estudio (libros, artículos, videos)
2. Ejercicios prácticos específicos
3. Estrategias de aprendizaje
4. Temas a reforzar
5. Objetivos de corto plazo

Devuelve el resultado en formato JSON:
{
    "resources": [
        {
            "type": "libro|artículo|video|curso",
            "title": "título",
            "description": "descripción breve",
            "relevance": "por qué es relevante"
        }
    ],
    "exercises": [
        {
            "title": "título del ejercicio",
            "description": "descripción",
            "difficulty": "fácil|medio|difícil",
            "estimated_time": "tiempo estimado"
        }
    ],
    "strategies": ["estrategia 1", "estrategia 2"],
    "topics_to_reinforce": ["tema 1", "tema 2"],
    "short_term_goals": ["objetivo 1", "objetivo 2"]
}`

// Recommendations asks for a study plan tailored to level, difficulties and interests.
func (b *Builder) Recommendations(level, difficulties, interests string) string {
	if level == "" {
		level = DefaultStudentLevel
	}
	return fmt.Sprintf(recommendationsTemplate,
		b.subjectArea,
		lookup(studentLevels, level, studentLevels[DefaultStudentLevel]),
		difficulties,
		interests,
	)
}
