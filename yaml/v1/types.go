package v1

import (
	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/yaml/core"
)

type Config struct {
	core.Config `yaml:",inline"`

	Models []Model  `yaml:"models,omitempty"`
	Forms  []Form   `yaml:"forms,omitempty"`
	Views  []View   `yaml:"views"            jsonschema:"required,minItems=1"`
	Roots  []string `yaml:"roots,omitempty"`
}

type Model struct {
	Name      string     `yaml:"name"                jsonschema:"required"`
	Relations []Relation `yaml:"relations,omitempty"`
}

type Relation struct {
	Field  string             `yaml:"field"  jsonschema:"required"`
	Target string             `yaml:"target" jsonschema:"required"`
	Kind   forms.RelationKind `yaml:"kind"   jsonschema:"required"`
}

// Form is a named field list nested forms refer to.
type Form struct {
	Name   string  `yaml:"name"   jsonschema:"required"`
	Fields []Field `yaml:"fields" jsonschema:"required"`
}

type View struct {
	Name   string `yaml:"name"             jsonschema:"required"`
	Model  string `yaml:"model,omitempty"`
	Titles Titles `yaml:"titles,omitempty"`

	AddForm    string  `yaml:"add_form,omitempty"`
	AddFields  []Field `yaml:"add_fields,omitempty"`
	EditForm   string  `yaml:"edit_form,omitempty"`
	EditFields []Field `yaml:"edit_fields,omitempty"`

	Related    []string    `yaml:"related,omitempty"`
	Conditions []Condition `yaml:"conditions,omitempty"`
}

type Titles struct {
	Add  string `yaml:"add,omitempty"`
	Edit string `yaml:"edit,omitempty"`
	Show string `yaml:"show,omitempty"`
	List string `yaml:"list,omitempty"`
}

type Condition struct {
	OneOf []Branch `yaml:"one_of" jsonschema:"required,minItems=1"`
}

type Branch struct {
	View string  `yaml:"view" jsonschema:"required"`
	When []Match `yaml:"when" jsonschema:"required,minItems=1"`
}

// Match selects a branch when Field holds Value or one of Values.
type Match struct {
	Field  string `yaml:"field"            jsonschema:"required"`
	Value  any    `yaml:"value,omitempty"`
	Values []any  `yaml:"values,omitempty"`
}
