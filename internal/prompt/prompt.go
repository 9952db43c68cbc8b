// Package prompt builds the natural-language instructions sent to the
// generation model. Every builder is a pure function of its inputs.
package prompt

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	DefaultSubjectArea   = "Comunicación"
	DefaultNumQuestions  = 5
	DefaultSummaryType   = "academic"
	DefaultReportType    = "textual"
	DefaultStudentLevel  = "intermediate"
	noDataSourcesMessage = "No especificados"
)

// Builder holds the deployment-wide wording shared by all prompts.
type Builder struct {
	subjectArea  string
	defaultTopic string
}

// New returns a Builder for the given subject area. Empty values fall back
// to DefaultSubjectArea, and an empty defaultTopic to the subject area.
func New(subjectArea, defaultTopic string) *Builder {
	if strings.TrimSpace(subjectArea) == "" {
		subjectArea = DefaultSubjectArea
	}
	if strings.TrimSpace(defaultTopic) == "" {
		defaultTopic = subjectArea
	}
	return &Builder{subjectArea: subjectArea, defaultTopic: defaultTopic}
}

// SubjectArea returns the area every prompt is framed in.
func (b *Builder) SubjectArea() string {
	return b.subjectArea
}

// DefaultTopic returns the topic used when a request does not name one.
func (b *Builder) DefaultTopic() string {
	return b.defaultTopic
}

func (b *Builder) subjectLower() string {
	return strings.ToLower(b.subjectArea)
}

// indentJSON renders v as two-space indented JSON without HTML escaping,
// leaving non-ASCII text readable for the model.
func indentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "[]"
	}
	return strings.TrimRight(buf.String(), "\n")
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}
