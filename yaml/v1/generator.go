package v1

import (
	"fmt"

	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/yaml/core"
	"github.com/samber/lo"
	"go.yaml.in/yaml/v3"
)

type YAMLGenerator struct {
	configId string
	defs     *core.Definitions
}

func (p *YAMLGenerator) GetConfigID() string {
	return p.configId
}

func (p *YAMLGenerator) GetVersion() string {
	return core.Version_V1
}

func NewYAMLGenerator(configId string, defs *core.Definitions) core.Generator {
	return &YAMLGenerator{
		configId: configId,
		defs:     defs,
	}
}

// GenerateYAML writes the definitions back as a v1 file. View fields are
// written inline; nested forms become named forms.
func (p *YAMLGenerator) GenerateYAML() ([]byte, error) {
	if p.defs == nil {
		return nil, fmt.Errorf("no definitions to generate")
	}

	g := &generation{
		names: make(map[*forms.Form]string),
		taken: make(map[string]bool),
	}

	config := &Config{
		Config: core.Config{
			Version: core.Version_V1,
			ID:      p.configId,
		},
	}

	if p.defs.Relations != nil {
		for _, model := range p.defs.Relations.Models() {
			yamlModel := Model{Name: model}
			for _, relation := range p.defs.Relations.Relations(model) {
				yamlModel.Relations = append(yamlModel.Relations, Relation{
					Field:  relation.Field,
					Target: relation.Target,
					Kind:   relation.Kind,
				})
			}
			config.Models = append(config.Models, yamlModel)
		}
	}

	for _, view := range p.defs.Views {
		yamlView, err := g.generateView(view)
		if err != nil {
			return nil, err
		}
		config.Views = append(config.Views, yamlView)
	}

	config.Forms = g.forms
	config.Roots = lo.Map(p.defs.Roots, func(v *forms.View, _ int) string {
		return v.Name
	})

	return yaml.Marshal(config)
}

type generation struct {
	forms []Form
	names map[*forms.Form]string
	taken map[string]bool
}

func (g *generation) generateView(view *forms.View) (View, error) {
	yamlView := View{
		Name:  view.Name,
		Model: view.Model,
		Titles: Titles{
			Add:  view.Titles.Add,
			Edit: view.Titles.Edit,
			Show: view.Titles.Show,
			List: view.Titles.List,
		},
		Related: lo.Map(view.Related, func(v *forms.View, _ int) string {
			return v.Name
		}),
	}

	var errs ConversionErrors

	if view.AddForm != nil {
		fields, fieldErrs := g.generateFields(view.AddForm.Fields)
		errs = append(errs, withView(fieldErrs, view.Name)...)
		yamlView.AddFields = fields
	}
	if view.EditForm != nil && view.EditForm != view.AddForm {
		fields, fieldErrs := g.generateFields(view.EditForm.Fields)
		errs = append(errs, withView(fieldErrs, view.Name)...)
		yamlView.EditFields = fields
	}

	for _, condition := range view.Conditions {
		yamlCondition := Condition{}
		for _, branch := range condition.Branches {
			yamlBranch := Branch{View: branch.View.Name}
			for _, match := range branch.When {
				// values is used even for one value, value: false would be
				// dropped by omitempty.
				yamlBranch.When = append(yamlBranch.When, Match{Field: match.Field, Values: match.Values})
			}
			yamlCondition.OneOf = append(yamlCondition.OneOf, yamlBranch)
		}
		yamlView.Conditions = append(yamlView.Conditions, yamlCondition)
	}

	if errs.HasErrors() {
		return View{}, errs
	}
	return yamlView, nil
}

func (g *generation) generateFields(fields []forms.Field) ([]Field, ConversionErrors) {
	var errs ConversionErrors
	var out []Field

	for _, field := range fields {
		base := FieldBase{
			Name:        field.Name,
			Kind:        string(field.Kind),
			Label:       field.Label,
			Description: field.Description,
		}
		for _, rule := range field.Rules {
			validator, err := generateValidator(rule)
			if err != nil {
				errs = append(errs, ConversionError{Field: field.Name, Message: err.Error()})
				continue
			}
			base.Validators = append(base.Validators, validator)
		}

		var inline FieldInline
		switch field.Kind {
		case forms.KindText:
			inline = &TextField{FieldBase: base}
		case forms.KindParagraph:
			inline = &ParagraphField{FieldBase: base}
		case forms.KindInteger:
			inline = &IntegerField{FieldBase: base}
		case forms.KindDecimal:
			inline = &DecimalField{FieldBase: base}
		case forms.KindBoolean:
			inline = &BooleanField{FieldBase: base}
		case forms.KindDateTime:
			inline = &DateTimeField{FieldBase: base}
		case forms.KindSelect:
			inline = &SelectField{FieldBase: base, Choices: field.Choices}
		case forms.KindQuerySelect:
			choices, allowBlank := generateChoices(field.Query)
			inline = &QuerySelectField{FieldBase: base, Choices: choices, AllowBlank: allowBlank}
		case forms.KindQuerySelectMultiple:
			choices, allowBlank := generateChoices(field.Query)
			inline = &QuerySelectMultipleField{FieldBase: base, Choices: choices, AllowBlank: allowBlank}
		case forms.KindImage:
			inline = &ImageField{FieldBase: base}
		case forms.KindPoint:
			inline = &PointField{FieldBase: base}
		case forms.KindForm:
			if field.Form == nil {
				errs = append(errs, ConversionError{Field: field.Name, Message: "nested form is missing"})
				continue
			}
			name, formErrs := g.generateNamedForm(field)
			if formErrs.HasErrors() {
				errs = append(errs, formErrs...)
				continue
			}
			inline = &FormField{FieldBase: base, Form: name}
		default:
			errs = append(errs, ConversionError{
				Field:   field.Name,
				Message: fmt.Sprintf("unsupported field kind: %q", field.Kind),
			})
			continue
		}

		out = append(out, Field{Field: inline})
	}

	return out, errs
}

// generateNamedForm writes each nested form once. Distinct forms sharing a
// name get a numeric suffix, e.g. "address2".
func (g *generation) generateNamedForm(field forms.Field) (string, ConversionErrors) {
	if name, ok := g.names[field.Form]; ok {
		return name, nil
	}

	base := field.Form.Name
	if base == "" {
		base = field.Name
	}
	name := base
	for i := 2; g.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	g.names[field.Form] = name
	g.taken[name] = true

	fields, errs := g.generateFields(field.Form.Fields)
	for i := range errs {
		errs[i].Form = name
	}
	if errs.HasErrors() {
		return "", errs
	}

	g.forms = append(g.forms, Form{Name: name, Fields: fields})
	return name, nil
}

// generateChoices snapshots the query. A leading blank choice turns into
// allow_blank.
func generateChoices(query forms.ChoiceQuery) ([]Choice, bool) {
	if query == nil {
		return []Choice{}, false
	}

	choices := query.Choices()
	allowBlank := len(choices) > 0 && choices[0].ID == forms.BlankChoiceID
	if allowBlank {
		choices = choices[1:]
	}

	return lo.Map(choices, func(c forms.Choice, _ int) Choice {
		return Choice{ID: c.ID, Label: c.Label}
	}), allowBlank
}

func generateValidator(rule forms.Rule) (Validator, error) {
	switch rule.Kind {
	case forms.RuleRequired:
		return Validator{Validator: &RequiredValidator{Type: string(rule.Kind)}}, nil
	case forms.RuleInputRequired:
		return Validator{Validator: &InputRequiredValidator{Type: string(rule.Kind)}}, nil
	case forms.RuleDataRequired:
		return Validator{Validator: &DataRequiredValidator{Type: string(rule.Kind)}}, nil
	case forms.RuleEmail:
		return Validator{Validator: &EmailValidator{Type: string(rule.Kind)}}, nil
	case forms.RuleLength:
		validator := &LengthValidator{ValidatorBase: ValidatorBase{Type: string(rule.Kind)}}
		if rule.Min != nil {
			validator.Min = lo.ToPtr(int(*rule.Min))
		}
		if rule.Max != nil {
			validator.Max = lo.ToPtr(int(*rule.Max))
		}
		return Validator{Validator: validator}, nil
	case forms.RuleNumberRange:
		return Validator{Validator: &NumberRangeValidator{
			ValidatorBase: ValidatorBase{Type: string(rule.Kind)},
			Min:           rule.Min,
			Max:           rule.Max,
		}}, nil
	case forms.RuleValueRequired:
		return Validator{Validator: &ValueRequiredValidator{
			ValidatorBase: ValidatorBase{Type: string(rule.Kind)},
			Value:         rule.Value,
		}}, nil
	default:
		return Validator{}, fmt.Errorf("unsupported rule: %q", rule.Kind)
	}
}
