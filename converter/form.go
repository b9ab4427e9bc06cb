package converter

import (
	"fmt"

	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
)

// ConvertForm converts a form into an object schema. Properties follow the
// field order; skipped fields are left out entirely.
func (c *Converter) ConvertForm(form *forms.Form) (*node.Node, error) {
	if form == nil {
		return nil, fmt.Errorf("no form to convert")
	}
	if c.options.SplitPoints {
		form = SplitPoints(form)
	}

	properties := node.New()
	schema := node.New("type", "object", "properties", properties)

	required := []string{}
	expected := node.New()

	for _, field := range form.Fields {
		if c.skip[field.Name] {
			continue
		}

		if field.Kind == forms.KindForm {
			if field.Form == nil {
				return nil, fmt.Errorf("field '%s': nested form is missing", field.Name)
			}
			nested, err := c.ConvertForm(field.Form)
			if err != nil {
				return nil, err
			}
			nested.Set("title", field.DisplayLabel())
			properties.Set(field.Name, nested)
			continue
		}

		fieldSchema, isRequired, err := c.convertField(field)
		if err != nil {
			return nil, err
		}
		properties.Set(field.Name, fieldSchema)
		if isRequired {
			required = append(required, field.Name)
		}

		if rule, ok := field.RulesByKind()[forms.RuleValueRequired]; ok {
			expected.Set(field.Name, node.New("enum", []any{rule.Value}))
		}
	}

	if len(required) > 0 {
		schema.Set("required", required)
	}
	if expected.Len() > 0 {
		schema.Set("allOf", []any{node.New("properties", expected)})
	}

	return schema, nil
}

// convertField renders a non-nested field as {type, ...options, title,
// description}.
func (c *Converter) convertField(field forms.Field) (*node.Node, bool, error) {
	mapping, err := c.MapField(field)
	if err != nil {
		return nil, false, err
	}

	out := node.New()
	if mapping.Type != "" {
		out.Set("type", mapping.Type)
	}
	mapping.Options.Each(func(key string, value any) {
		out.Set(key, value)
	})
	out.Set("title", field.DisplayLabel())
	if field.Description != "" {
		out.Set("description", field.Description)
	}

	return out, mapping.Required, nil
}
