package forms

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field is a named, typed input of a form.
type Field struct {
	Name        string
	Kind        Kind
	Label       string
	Description string
	Rules       []Rule

	// Choices holds the values of a static select.
	Choices []any
	// Query supplies the options of query_select and query_select_multiple.
	Query ChoiceQuery
	// Form is the inner form of a nested form field.
	Form *Form
	// Coordinate is "latitude" or "longitude" on the halves of a split point.
	Coordinate string
}

// DisplayLabel returns the label, falling back to the title-cased name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return LabelFromName(f.Name)
}

// LabelFromName turns snake_case names into "Snake Case" labels.
func LabelFromName(name string) string {
	replaced := strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.English).String(replaced)
}

// RulesByKind collapses the rules into a lookup keyed by kind. When a kind
// occurs more than once the last rule wins.
func (f Field) RulesByKind() map[RuleKind]Rule {
	out := make(map[RuleKind]Rule, len(f.Rules))
	for _, rule := range f.Rules {
		out[rule.Kind] = rule
	}
	return out
}

// IsRequired reports whether any required flavoured rule is present.
func (f Field) IsRequired() bool {
	for _, rule := range f.Rules {
		switch rule.Kind {
		case RuleRequired, RuleInputRequired, RuleDataRequired:
			return true
		}
	}
	return false
}

// Form is an ordered collection of fields.
type Form struct {
	Name   string
	Fields []Field
}

func NewForm(name string, fields ...Field) *Form {
	return &Form{Name: name, Fields: fields}
}

// Field looks a field up by name.
func (f *Form) Field(name string) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// WithFields returns a copy of the form holding fields instead of its own.
func (f *Form) WithFields(fields []Field) *Form {
	return &Form{Name: f.Name, Fields: fields}
}
