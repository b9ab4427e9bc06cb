package converter

import (
	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
	"github.com/samber/lo"
)

// Free text without a length rule is capped at this many characters.
const defaultMaxLength = 255

// MapField maps a single field through the handler registered for its kind.
func (c *Converter) MapField(field forms.Field) (Mapping, error) {
	handler, ok := c.handlers[field.Kind]
	if !ok {
		return Mapping{}, &UnsupportedFieldKindError{Field: field.Name, Kind: field.Kind}
	}
	mapping, err := handler(field)
	if err != nil {
		return Mapping{}, err
	}
	if mapping.Options == nil {
		mapping.Options = node.New()
	}
	return mapping, nil
}

func mapText(field forms.Field) (Mapping, error) {
	rules := field.RulesByKind()
	options := node.New()

	if _, ok := rules[forms.RuleEmail]; ok {
		options.Set("format", "email")
	} else if length, ok := rules[forms.RuleLength]; ok {
		if length.Min != nil {
			options.Set("minLength", int(*length.Min))
		}
		if length.Max != nil {
			options.Set("maxLength", int(*length.Max))
		}
	} else {
		options.Set("maxLength", defaultMaxLength)
	}

	return Mapping{Type: "string", Options: options, Required: field.IsRequired()}, nil
}

func mapParagraph(field forms.Field) (Mapping, error) {
	return Mapping{Type: "string", Required: field.IsRequired()}, nil
}

func mapDateTime(field forms.Field) (Mapping, error) {
	return Mapping{
		Type:     "string",
		Options:  node.New("format", "date-time"),
		Required: field.IsRequired(),
	}, nil
}

func mapBoolean(field forms.Field) (Mapping, error) {
	return Mapping{Type: "boolean", Required: field.IsRequired()}, nil
}

func mapNumber(schemaType string) Handler {
	return func(field forms.Field) (Mapping, error) {
		options := node.New()
		if numberRange, ok := field.RulesByKind()[forms.RuleNumberRange]; ok {
			if numberRange.Min != nil {
				options.Set("minimum", *numberRange.Min)
			}
			if numberRange.Max != nil {
				options.Set("maximum", *numberRange.Max)
			}
		}
		return Mapping{Type: schemaType, Options: options, Required: field.IsRequired()}, nil
	}
}

func mapSelect(field forms.Field) (Mapping, error) {
	choices := field.Choices
	if choices == nil {
		choices = []any{}
	}

	schemaType := "string"
	switch {
	case lo.EveryBy(choices, isInteger):
		schemaType = "integer"
	case lo.EveryBy(choices, isNumber):
		schemaType = "number"
	}

	return Mapping{
		Type:     schemaType,
		Options:  node.New("enum", choices),
		Required: field.IsRequired(),
	}, nil
}

func isInteger(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isNumber(value any) bool {
	switch value.(type) {
	case float32, float64:
		return true
	}
	return isInteger(value)
}

func mapQuerySelect(field forms.Field) (Mapping, error) {
	return Mapping{
		Type:     "object",
		Options:  node.New("enum", choiceEnum(field)),
		Required: field.IsRequired(),
	}, nil
}

func mapQuerySelectMultiple(field forms.Field) (Mapping, error) {
	items := node.New("type", "object", "enum", choiceEnum(field))
	return Mapping{
		Type:     "array",
		Options:  node.New("items", []any{items}),
		Required: field.IsRequired(),
	}, nil
}

// choiceEnum queries the field's choices and renders them as {id, label}
// objects, leaving out the blank choice.
func choiceEnum(field forms.Field) []any {
	if field.Query == nil {
		return []any{}
	}
	choices := lo.Filter(field.Query.Choices(), func(choice forms.Choice, _ int) bool {
		return choice.ID != forms.BlankChoiceID
	})
	return lo.Map(choices, func(choice forms.Choice, _ int) any {
		return node.New("id", choice.ID, "label", choice.Label)
	})
}

func mapImage(field forms.Field) (Mapping, error) {
	return Mapping{
		Type: "string",
		Options: node.New(
			"contentEncoding", "base64",
			"contentMediaType", "image/jpeg",
		),
		Required: field.IsRequired(),
	}, nil
}

func mapPoint(field forms.Field) (Mapping, error) {
	if field.Coordinate == "" {
		return Mapping{}, &UnsupportedFieldKindError{Field: field.Name, Kind: field.Kind}
	}
	return Mapping{
		Type:     "string",
		Options:  node.New("format", "coordinate_point_"+field.Coordinate),
		Required: field.IsRequired(),
	}, nil
}
