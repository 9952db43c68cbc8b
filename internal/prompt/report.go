package prompt

import (
	"fmt"
	"strings"
)

var reportTypes = map[string]string{
	"textual":     "Análisis Textual",
	"comparative": "Análisis Comparativo",
	"critical":    "Análisis Crítico",
}

const reportTemplate = `Genera un informe profesional detallado sobre: %s

Tipo de informe: %s
Descripción y objetivos: %s
Datos/Fuentes: %s

El informe debe incluir:
1. Introducción: Contexto y objetivos
2. Desarrollo: Análisis detallado con subtemas
3. Conclusiones: Hallazgos principales
4. Referencias (si aplica)

Usa formato académico profesional con:
- Estructura clara en markdown
- Secciones y subsecciones
- Lenguaje formal y técnico apropiado para %s
- Análisis profundo y fundamentado

Genera un informe completo y bien estructurado.`

// Report asks for a four-section markdown report.
func (b *Builder) Report(topic, reportType, description, dataSources string) string {
	if reportType == "" {
		reportType = DefaultReportType
	}
	label := lookup(reportTypes, reportType, reportTypes[DefaultReportType])
	if strings.TrimSpace(dataSources) == "" {
		dataSources = noDataSourcesMessage
	}
	return fmt.Sprintf(reportTemplate, topic, label, description, dataSources, b.subjectArea)
}
