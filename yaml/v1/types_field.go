package v1

import (
	"fmt"

	"github.com/getsynq/formschema/forms"
	schemautils "github.com/getsynq/formschema/schema_utils"
	"github.com/invopop/jsonschema"
	goyaml "go.yaml.in/yaml/v3"
)

type FieldInline interface {
	isField()
	GetBase() FieldBase
}

var fieldBuilder = schemautils.DiscriminatedUnionBuilder[FieldInline]{
	Reflector:     schemautils.NewReflector(),
	Discriminator: "kind",
	Registry: map[string]FieldInline{
		string(forms.KindText):                TextField{},
		string(forms.KindParagraph):           ParagraphField{},
		string(forms.KindInteger):             IntegerField{},
		string(forms.KindDecimal):             DecimalField{},
		string(forms.KindBoolean):             BooleanField{},
		string(forms.KindDateTime):            DateTimeField{},
		string(forms.KindSelect):              SelectField{},
		string(forms.KindQuerySelect):         QuerySelectField{},
		string(forms.KindQuerySelectMultiple): QuerySelectMultipleField{},
		string(forms.KindImage):               ImageField{},
		string(forms.KindForm):                FormField{},
		string(forms.KindPoint):               PointField{},
	},
	RequireDiscriminator: true,
}

type Field struct {
	Field FieldInline
}

func (Field) JSONSchema() *jsonschema.Schema {
	return fieldBuilder.Build()
}

func decodeField[T FieldInline](n *goyaml.Node) (FieldInline, error) {
	var t T
	err := n.Decode(&t)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (w *Field) UnmarshalYAML(n *goyaml.Node) error {
	type Kinded struct {
		Kind string `yaml:"kind"`
	}

	var k Kinded
	err := n.Decode(&k)
	if err != nil {
		return err
	}

	var field FieldInline
	switch forms.Kind(k.Kind) {
	case forms.KindText:
		field, err = decodeField[*TextField](n)
	case forms.KindParagraph:
		field, err = decodeField[*ParagraphField](n)
	case forms.KindInteger:
		field, err = decodeField[*IntegerField](n)
	case forms.KindDecimal:
		field, err = decodeField[*DecimalField](n)
	case forms.KindBoolean:
		field, err = decodeField[*BooleanField](n)
	case forms.KindDateTime:
		field, err = decodeField[*DateTimeField](n)
	case forms.KindSelect:
		field, err = decodeField[*SelectField](n)
	case forms.KindQuerySelect:
		field, err = decodeField[*QuerySelectField](n)
	case forms.KindQuerySelectMultiple:
		field, err = decodeField[*QuerySelectMultipleField](n)
	case forms.KindImage:
		field, err = decodeField[*ImageField](n)
	case forms.KindForm:
		field, err = decodeField[*FormField](n)
	case forms.KindPoint:
		field, err = decodeField[*PointField](n)
	default:
		return fmt.Errorf("line %d: unsupported field kind: %q", n.Line, k.Kind)
	}
	if err != nil {
		return err
	}

	w.Field = field
	return nil
}

func (w Field) MarshalYAML() (any, error) {
	return w.Field, nil
}

type FieldBase struct {
	Name        string      `yaml:"name"                  jsonschema:"required"`
	Kind        string      `yaml:"kind"                  jsonschema:"required"`
	Label       string      `yaml:"label,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Validators  []Validator `yaml:"validators,omitempty"`
}

func (FieldBase) isField() {}

func (b FieldBase) GetBase() FieldBase {
	return b
}

// Choice is one option of a query select. A plain scalar is shorthand for a
// choice whose id and label are both that value.
type Choice struct {
	ID    string `yaml:"id"              jsonschema:"required"`
	Label string `yaml:"label,omitempty"`
}

func (c *Choice) UnmarshalYAML(n *goyaml.Node) error {
	if n.Kind == goyaml.ScalarNode {
		c.ID = n.Value
		c.Label = n.Value
		return nil
	}

	type plain Choice
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*c = Choice(p)
	return nil
}

func (Choice) JSONSchema() *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	properties.Set("id", &jsonschema.Schema{Type: "string"})
	properties.Set("label", &jsonschema.Schema{Type: "string"})

	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{
				Type:                 "object",
				Properties:           properties,
				Required:             []string{"id"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
	}
}

type (
	TextField struct {
		FieldBase `yaml:",inline"`
	}
	ParagraphField struct {
		FieldBase `yaml:",inline"`
	}
	IntegerField struct {
		FieldBase `yaml:",inline"`
	}
	DecimalField struct {
		FieldBase `yaml:",inline"`
	}
	BooleanField struct {
		FieldBase `yaml:",inline"`
	}
	DateTimeField struct {
		FieldBase `yaml:",inline"`
	}
	SelectField struct {
		FieldBase `       yaml:",inline"`
		Choices   []any `yaml:"choices" jsonschema:"required,minItems=1"`
	}
	QuerySelectField struct {
		FieldBase  `         yaml:",inline"`
		Choices    []Choice `yaml:"choices"               jsonschema:"required"`
		AllowBlank bool     `yaml:"allow_blank,omitempty"`
	}
	QuerySelectMultipleField struct {
		FieldBase  `         yaml:",inline"`
		Choices    []Choice `yaml:"choices"               jsonschema:"required"`
		AllowBlank bool     `yaml:"allow_blank,omitempty"`
	}
	ImageField struct {
		FieldBase `yaml:",inline"`
	}
	// FormField nests the named form.
	FormField struct {
		FieldBase `       yaml:",inline"`
		Form      string `yaml:"form"    jsonschema:"required"`
	}
	PointField struct {
		FieldBase `yaml:",inline"`
	}
)
