package httpapi

import "quiz-topics/internal/topic"

// FormView is everything the form template needs.
type FormView struct {
	Fields     []FieldView
	FormErrors []string
	Success    bool
	Flashes    []string
}

// FieldView is one input of the form with its submitted value and error.
type FieldView struct {
	Name      string
	Label     string
	Value     string
	Error     string
	Required  bool
	Integer   bool
	Multiline bool
}

func newFormView(values map[string]string, errs topic.FieldErrors) FormView {
	view := FormView{Fields: make([]FieldView, 0, len(topic.Fields))}
	for _, field := range topic.Fields {
		view.Fields = append(view.Fields, FieldView{
			Name:      field.Name,
			Label:     field.Label,
			Value:     values[field.Name],
			Error:     errs[field.Name],
			Required:  field.Required,
			Integer:   field.Integer(),
			Multiline: field.Name == topic.FieldTopicName || field.Name == topic.FieldExplanation,
		})
	}
	return view
}
