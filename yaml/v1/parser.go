package v1

import (
	"fmt"
	"strings"

	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/yaml/core"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	goyaml "go.yaml.in/yaml/v3"
)

type YAMLParser struct {
	yamlConfig *Config
}

func NewYAMLParser(config *Config) core.Parser {
	return &YAMLParser{
		yamlConfig: config,
	}
}

func (p *YAMLParser) GetConfigID() string {
	return p.yamlConfig.ID
}

func (p *YAMLParser) GetVersion() string {
	return core.Version_V1
}

func NewYAMLParserFromBytes(bytes []byte) (core.Parser, error) {
	var config *Config
	err := goyaml.Unmarshal(bytes, &config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}
	if config == nil {
		return nil, errors.New("failed to parse YAML: document is empty")
	}

	return NewYAMLParser(config), nil
}

func (p *YAMLParser) GetYAMLConfig() *Config {
	return p.yamlConfig
}

// conversion carries the state of one ConvertToDefinitions call.
type conversion struct {
	config *Config

	forms     map[string]*Form
	resolved  map[string]*forms.Form
	resolving map[string]bool

	views map[string]*forms.View
}

func (p *YAMLParser) ConvertToDefinitions() (*core.Definitions, error) {
	var errs ConversionErrors

	c := &conversion{
		config:    p.yamlConfig,
		forms:     make(map[string]*Form),
		resolved:  make(map[string]*forms.Form),
		resolving: make(map[string]bool),
		views:     make(map[string]*forms.View),
	}

	relations, relationErrs := c.convertModels()
	errs = append(errs, relationErrs...)

	for i := range c.config.Forms {
		form := &c.config.Forms[i]
		name := strings.TrimSpace(form.Name)
		if name == "" {
			errs = append(errs, ConversionError{Field: "name", Message: "must be set"})
			continue
		}
		if _, exists := c.forms[name]; exists {
			errs = append(errs, ConversionError{Field: "name", Message: "must be unique", Form: name})
			continue
		}
		c.forms[name] = form
	}

	defs := &core.Definitions{Relations: relations}

	type pendingView struct {
		yaml *View
		view *forms.View
	}
	var pending []pendingView

	for i := range c.config.Views {
		yamlView := &c.config.Views[i]
		name := strings.TrimSpace(yamlView.Name)
		if name == "" {
			errs = append(errs, ConversionError{Field: "name", Message: "must be set"})
			continue
		}
		if _, exists := c.views[name]; exists {
			errs = append(errs, ConversionError{Field: "name", Message: "must be unique", View: name})
			continue
		}

		view := &forms.View{
			Name:  name,
			Model: defaultModel(name, yamlView.Model),
			Titles: forms.Titles{
				Add:  yamlView.Titles.Add,
				Edit: yamlView.Titles.Edit,
				Show: yamlView.Titles.Show,
				List: yamlView.Titles.List,
			},
		}
		c.views[name] = view
		defs.Views = append(defs.Views, view)
		pending = append(pending, pendingView{yaml: yamlView, view: view})
	}

	// Views may relate to views declared after them.
	for _, p := range pending {
		errs = append(errs, c.convertView(p.yaml, p.view)...)
	}

	roots, rootErrs := c.resolveRoots(defs.Views)
	errs = append(errs, rootErrs...)
	defs.Roots = roots

	if errs.HasErrors() {
		return nil, errs
	}

	return defs, nil
}

// defaultModel names the model after the view when none is given, so
// "PersonView" is backed by "Person".
func defaultModel(viewName, model string) string {
	if model = strings.TrimSpace(model); model != "" {
		return model
	}
	if trimmed := strings.TrimSuffix(viewName, "View"); trimmed != "" {
		return trimmed
	}
	return viewName
}

func (c *conversion) convertModels() (*forms.RelationRegistry, ConversionErrors) {
	var errs ConversionErrors
	registry := forms.NewRelationRegistry()

	for _, model := range c.config.Models {
		name := strings.TrimSpace(model.Name)
		if name == "" {
			errs = append(errs, ConversionError{Field: "name", Message: "must be set"})
			continue
		}

		for _, relation := range model.Relations {
			if relation.Field == "" || relation.Target == "" {
				errs = append(errs, ConversionError{
					Field:   "relations",
					Message: "field and target must be set",
					Model:   name,
				})
				continue
			}

			kind, err := forms.ParseRelationKind(string(relation.Kind))
			if err != nil {
				errs = append(errs, ConversionError{
					Field:   relation.Field,
					Message: err.Error(),
					Model:   name,
				})
				continue
			}

			registry.Add(name, forms.Relation{
				Field:  relation.Field,
				Target: relation.Target,
				Kind:   kind,
			})
		}
	}

	return registry, errs
}

func (c *conversion) convertView(yamlView *View, view *forms.View) ConversionErrors {
	var errs ConversionErrors

	switch {
	case yamlView.AddForm != "" && len(yamlView.AddFields) > 0:
		errs = append(errs, ConversionError{
			Field:   "add_form",
			Message: "add_form and add_fields are mutually exclusive",
			View:    view.Name,
		})
	case yamlView.AddForm != "":
		form, formErrs := c.resolveForm(yamlView.AddForm)
		errs = append(errs, withView(formErrs, view.Name)...)
		view.AddForm = form
	case len(yamlView.AddFields) > 0:
		fields, fieldErrs := c.convertFields(yamlView.AddFields)
		errs = append(errs, withView(fieldErrs, view.Name)...)
		view.AddForm = forms.NewForm(view.Name+"AddForm", fields...)
	default:
		errs = append(errs, ConversionError{
			Field:   "add_form",
			Message: "add_form or add_fields must be set",
			View:    view.Name,
		})
	}

	switch {
	case yamlView.EditForm != "" && len(yamlView.EditFields) > 0:
		errs = append(errs, ConversionError{
			Field:   "edit_form",
			Message: "edit_form and edit_fields are mutually exclusive",
			View:    view.Name,
		})
	case yamlView.EditForm != "":
		form, formErrs := c.resolveForm(yamlView.EditForm)
		errs = append(errs, withView(formErrs, view.Name)...)
		view.EditForm = form
	case len(yamlView.EditFields) > 0:
		fields, fieldErrs := c.convertFields(yamlView.EditFields)
		errs = append(errs, withView(fieldErrs, view.Name)...)
		view.EditForm = forms.NewForm(view.Name+"EditForm", fields...)
	}

	for _, relatedName := range yamlView.Related {
		related, ok := c.views[relatedName]
		if !ok {
			errs = append(errs, ConversionError{
				Field:   "related",
				Message: fmt.Sprintf("view %q is not declared", relatedName),
				View:    view.Name,
			})
			continue
		}
		view.Related = append(view.Related, related)
	}

	for _, yamlCondition := range yamlView.Conditions {
		condition, conditionErrs := c.convertCondition(yamlCondition, view)
		errs = append(errs, conditionErrs...)
		if !conditionErrs.HasErrors() {
			view.Conditions = append(view.Conditions, condition)
		}
	}

	return errs
}

func (c *conversion) convertCondition(yamlCondition Condition, view *forms.View) (forms.Condition, ConversionErrors) {
	var errs ConversionErrors
	var condition forms.Condition

	if len(yamlCondition.OneOf) == 0 {
		errs = append(errs, ConversionError{
			Field:   "one_of",
			Message: "must list at least one branch",
			View:    view.Name,
		})
	}

	for _, yamlBranch := range yamlCondition.OneOf {
		branchView, ok := c.views[yamlBranch.View]
		if !ok || !lo.Contains(view.Related, branchView) {
			errs = append(errs, ConversionError{
				Field:   "one_of",
				Message: fmt.Sprintf("view %q must be one of the related views", yamlBranch.View),
				View:    view.Name,
			})
			continue
		}

		if len(yamlBranch.When) == 0 {
			errs = append(errs, ConversionError{
				Field:   "when",
				Message: fmt.Sprintf("branch %q must match at least one field", yamlBranch.View),
				View:    view.Name,
			})
			continue
		}

		branch := forms.Branch{View: branchView}
		for _, yamlMatch := range yamlBranch.When {
			values := yamlMatch.Values
			if yamlMatch.Value != nil {
				values = append([]any{yamlMatch.Value}, values...)
			}
			if len(values) == 0 {
				errs = append(errs, ConversionError{
					Field:   yamlMatch.Field,
					Message: "value or values must be set",
					View:    view.Name,
				})
				continue
			}
			if _, ok := view.AddForm.Field(yamlMatch.Field); !ok {
				errs = append(errs, ConversionError{
					Field:   yamlMatch.Field,
					Message: "discriminator is not a field of the add form",
					View:    view.Name,
				})
				continue
			}
			branch.When = append(branch.When, forms.Match{Field: yamlMatch.Field, Values: values})
		}
		condition.Branches = append(condition.Branches, branch)
	}

	return condition, errs
}

// resolveRoots picks the configured roots, or else every view no other view
// relates to. When every view is related somewhere all views are roots.
func (c *conversion) resolveRoots(views []*forms.View) ([]*forms.View, ConversionErrors) {
	var errs ConversionErrors

	if len(c.config.Roots) > 0 {
		var roots []*forms.View
		for _, name := range c.config.Roots {
			view, ok := c.views[name]
			if !ok {
				errs = append(errs, ConversionError{
					Field:   "roots",
					Message: fmt.Sprintf("view %q is not declared", name),
				})
				continue
			}
			roots = append(roots, view)
		}
		return lo.Uniq(roots), errs
	}

	referenced := make(map[*forms.View]bool)
	for _, view := range views {
		for _, related := range view.Related {
			if related != view {
				referenced[related] = true
			}
		}
	}

	roots := lo.Filter(views, func(view *forms.View, _ int) bool {
		return !referenced[view]
	})
	if len(roots) == 0 {
		return views, errs
	}
	return roots, errs
}

// resolveForm converts a named form once and hands out the same instance on
// every later reference.
func (c *conversion) resolveForm(name string) (*forms.Form, ConversionErrors) {
	if form, ok := c.resolved[name]; ok {
		return form, nil
	}

	yamlForm, ok := c.forms[name]
	if !ok {
		return nil, ConversionErrors{{Field: "form", Message: fmt.Sprintf("form %q is not declared", name)}}
	}
	if c.resolving[name] {
		return nil, ConversionErrors{{Field: "form", Message: "form nests itself", Form: name}}
	}

	c.resolving[name] = true
	defer delete(c.resolving, name)

	fields, errs := c.convertFields(yamlForm.Fields)
	for i := range errs {
		if errs[i].Form == "" {
			errs[i].Form = name
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	form := forms.NewForm(name, fields...)
	c.resolved[name] = form
	return form, nil
}

func (c *conversion) convertFields(yamlFields []Field) ([]forms.Field, ConversionErrors) {
	var errs ConversionErrors
	var fields []forms.Field
	seen := make(map[string]bool)

	for _, wrapper := range yamlFields {
		if wrapper.Field == nil {
			errs = append(errs, ConversionError{Field: "kind", Message: "must be set"})
			continue
		}

		base := wrapper.Field.GetBase()
		name := strings.TrimSpace(base.Name)
		if name == "" {
			errs = append(errs, ConversionError{Field: "name", Message: "must be set"})
			continue
		}
		if seen[name] {
			errs = append(errs, ConversionError{Field: name, Message: "must be unique within the form"})
			continue
		}
		seen[name] = true

		field := forms.Field{
			Name:        name,
			Kind:        forms.Kind(base.Kind),
			Label:       base.Label,
			Description: base.Description,
		}

		for _, validator := range base.Validators {
			rule, err := convertValidator(validator)
			if err != nil {
				errs = append(errs, ConversionError{Field: name, Message: err.Error()})
				continue
			}
			field.Rules = append(field.Rules, rule)
		}

		switch t := wrapper.Field.(type) {
		case *SelectField:
			field.Choices = t.Choices
		case *QuerySelectField:
			field.Query = queryChoices(t.Choices, t.AllowBlank)
		case *QuerySelectMultipleField:
			field.Query = queryChoices(t.Choices, t.AllowBlank)
		case *FormField:
			form, formErrs := c.resolveForm(t.Form)
			if formErrs.HasErrors() {
				errs = append(errs, formErrs...)
				continue
			}
			field.Form = form
		}

		fields = append(fields, field)
	}

	return fields, errs
}

func queryChoices(choices []Choice, allowBlank bool) forms.StaticChoices {
	out := make(forms.StaticChoices, 0, len(choices)+1)
	if allowBlank {
		out = append(out, forms.Choice{ID: forms.BlankChoiceID, Label: ""})
	}
	for _, choice := range choices {
		label := choice.Label
		if label == "" {
			label = choice.ID
		}
		out = append(out, forms.Choice{ID: choice.ID, Label: label})
	}
	return out
}

func convertValidator(validator Validator) (forms.Rule, error) {
	switch t := validator.Validator.(type) {
	case *RequiredValidator:
		return forms.Required(), nil
	case *InputRequiredValidator:
		return forms.InputRequired(), nil
	case *DataRequiredValidator:
		return forms.DataRequired(), nil
	case *EmailValidator:
		return forms.Email(), nil
	case *LengthValidator:
		rule := forms.Rule{Kind: forms.RuleLength}
		if t.Min != nil {
			rule.Min = lo.ToPtr(float64(*t.Min))
		}
		if t.Max != nil {
			rule.Max = lo.ToPtr(float64(*t.Max))
		}
		return rule, nil
	case *NumberRangeValidator:
		return forms.Rule{Kind: forms.RuleNumberRange, Min: t.Min, Max: t.Max}, nil
	case *ValueRequiredValidator:
		if t.Value == nil {
			return forms.Rule{}, errors.New("value_required needs a value")
		}
		return forms.ValueRequired(t.Value), nil
	default:
		return forms.Rule{}, fmt.Errorf("unsupported validator: %T", t)
	}
}

func withView(errs ConversionErrors, view string) ConversionErrors {
	for i := range errs {
		errs[i].View = view
	}
	return errs
}
