package prompt

import "fmt"

var summaryStyles = map[string]string{
	"academic":  "académico con estructura formal",
	"executive": "ejecutivo con puntos clave",
	"simple":    "simple y fácil de entender",
}

const summaryTemplate = `Crea un resumen %s del siguiente texto:

%s

El resumen debe:
- Ser claro y conciso
- Mantener las ideas principales
- Usar formato profesional
- Incluir estructura con secciones si es académico
- Ser apropiado para el área de %s

Presenta el resumen en formato markdown con secciones bien definidas.`

// Summary asks for a markdown summary of text in the given style
// (academic, executive or simple).
func (b *Builder) Summary(text, summaryType string) string {
	if summaryType == "" {
		summaryType = DefaultSummaryType
	}
	style := lookup(summaryStyles, summaryType, "académico")
	return fmt.Sprintf(summaryTemplate, style, text, b.subjectArea)
}
