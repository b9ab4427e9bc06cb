package v1

import (
	"fmt"

	schemautils "github.com/getsynq/formschema/schema_utils"
	"github.com/invopop/jsonschema"
	goyaml "go.yaml.in/yaml/v3"
)

type ValidatorInline interface {
	isValidator()
	GetType() string
}

var validatorBuilder = schemautils.DiscriminatedUnionBuilder[ValidatorInline]{
	Reflector:     schemautils.NewReflector(),
	Discriminator: "type",
	Registry: map[string]ValidatorInline{
		"required":       RequiredValidator{},
		"input_required": InputRequiredValidator{},
		"data_required":  DataRequiredValidator{},
		"email":          EmailValidator{},
		"length":         LengthValidator{},
		"number_range":   NumberRangeValidator{},
		"value_required": ValueRequiredValidator{},
	},
	RequireDiscriminator: true,
}

// Validator is a field rule. Rules without arguments may be written as a
// plain scalar, e.g. `- required`.
type Validator struct {
	Validator ValidatorInline
}

func (Validator) JSONSchema() *jsonschema.Schema {
	schema := validatorBuilder.Build()
	schema.AnyOf = append(schema.AnyOf, &jsonschema.Schema{
		Type: "string",
		Enum: []any{"required", "input_required", "data_required", "email"},
	})
	return schema
}

func decodeValidator[T ValidatorInline](n *goyaml.Node) (ValidatorInline, error) {
	var t T
	err := n.Decode(&t)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (w *Validator) UnmarshalYAML(n *goyaml.Node) error {
	type Typed struct {
		Type string `yaml:"type"`
	}

	var t Typed
	if n.Kind == goyaml.ScalarNode {
		t.Type = n.Value
		switch t.Type {
		case "required":
			w.Validator = &RequiredValidator{Type: t.Type}
		case "input_required":
			w.Validator = &InputRequiredValidator{Type: t.Type}
		case "data_required":
			w.Validator = &DataRequiredValidator{Type: t.Type}
		case "email":
			w.Validator = &EmailValidator{Type: t.Type}
		default:
			return fmt.Errorf("line %d: validator %q needs arguments or is not supported", n.Line, t.Type)
		}
		return nil
	}

	err := n.Decode(&t)
	if err != nil {
		return err
	}

	var validator ValidatorInline
	switch t.Type {
	case "required":
		validator, err = decodeValidator[*RequiredValidator](n)
	case "input_required":
		validator, err = decodeValidator[*InputRequiredValidator](n)
	case "data_required":
		validator, err = decodeValidator[*DataRequiredValidator](n)
	case "email":
		validator, err = decodeValidator[*EmailValidator](n)
	case "length":
		validator, err = decodeValidator[*LengthValidator](n)
	case "number_range":
		validator, err = decodeValidator[*NumberRangeValidator](n)
	case "value_required":
		validator, err = decodeValidator[*ValueRequiredValidator](n)
	default:
		return fmt.Errorf("line %d: unsupported validator type: %q", n.Line, t.Type)
	}
	if err != nil {
		return err
	}

	w.Validator = validator
	return nil
}

func (w Validator) MarshalYAML() (any, error) {
	switch w.Validator.(type) {
	case *RequiredValidator, *InputRequiredValidator, *DataRequiredValidator, *EmailValidator:
		return w.Validator.GetType(), nil
	}
	return w.Validator, nil
}

type ValidatorBase struct {
	Type string `yaml:"type" jsonschema:"required"`
}

func (ValidatorBase) isValidator() {}

func (b ValidatorBase) GetType() string {
	return b.Type
}

type (
	RequiredValidator      ValidatorBase
	InputRequiredValidator ValidatorBase
	DataRequiredValidator  ValidatorBase
	EmailValidator         ValidatorBase
	LengthValidator        struct {
		ValidatorBase `     yaml:",inline"`
		Min           *int `yaml:"min,omitempty"`
		Max           *int `yaml:"max,omitempty"`
	}
	NumberRangeValidator struct {
		ValidatorBase `         yaml:",inline"`
		Min           *float64 `yaml:"min,omitempty"`
		Max           *float64 `yaml:"max,omitempty"`
	}
	ValueRequiredValidator struct {
		ValidatorBase `    yaml:",inline"`
		Value         any `yaml:"value" jsonschema:"required"`
	}
)

func (RequiredValidator) isValidator()      {}
func (InputRequiredValidator) isValidator() {}
func (DataRequiredValidator) isValidator()  {}
func (EmailValidator) isValidator()         {}

func (v RequiredValidator) GetType() string      { return v.Type }
func (v InputRequiredValidator) GetType() string { return v.Type }
func (v DataRequiredValidator) GetType() string  { return v.Type }
func (v EmailValidator) GetType() string         { return v.Type }
