package converter

import (
	"fmt"

	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
)

const oneOfKey = "oneOf"

// BuildCondition renders a condition of owner as the branches of a oneOf.
// Each branch pins the discriminator fields to the values selecting it and
// requires the relation fields leading from owner to the branch's view.
//
// Expected values are rendered the way the discriminator's own enum is: when
// the field enumerates {id, label} objects, every object whose id or label
// matches an expected value is used instead of the value. Values matching no
// object leave the enum empty.
func (c *Converter) BuildCondition(condition forms.Condition, owner *forms.View) (string, []*node.Node, error) {
	if c.relations == nil {
		return "", nil, ErrNoRelations
	}

	discriminators := map[string]*node.Node{}

	branches := make([]*node.Node, 0, len(condition.Branches))
	for _, branch := range condition.Branches {
		properties := node.New()
		required := []string{}

		for _, match := range branch.When {
			fieldSchema, err := c.discriminatorSchema(owner, match.Field, discriminators)
			if err != nil {
				return "", nil, err
			}
			properties.Set(match.Field, node.New("enum", normalizeValues(fieldSchema, match.Values)))
			required = append(required, match.Field)
		}

		for _, fk := range c.relations.RelatedFKs(branch.View.Model, owner.Model) {
			properties.Set(fk, c.RelatedProperty(owner, branch.View, fk))
			required = append(required, fk)
		}

		branches = append(branches, node.New("properties", properties, "required", required))
	}

	return oneOfKey, branches, nil
}

// discriminatorSchema converts the named field of the owner's add form. The
// result is nil when the form has no such field or it is a nested form.
func (c *Converter) discriminatorSchema(owner *forms.View, name string, cache map[string]*node.Node) (*node.Node, error) {
	if fieldSchema, ok := cache[name]; ok {
		return fieldSchema, nil
	}

	field, ok := owner.AddForm.Field(name)
	if !ok || field.Kind == forms.KindForm {
		cache[name] = nil
		return nil, nil
	}

	fieldSchema, _, err := c.convertField(field)
	if err != nil {
		return nil, err
	}
	cache[name] = fieldSchema
	return fieldSchema, nil
}

func normalizeValues(fieldSchema *node.Node, values []any) []any {
	candidates := objectEnum(fieldSchema)
	if candidates == nil {
		return append([]any{}, values...)
	}

	normalized := []any{}
	for _, value := range values {
		expected := fmt.Sprint(value)
		for _, candidate := range candidates {
			id, _ := candidate.Get("id")
			label, _ := candidate.Get("label")
			if id == expected || label == expected {
				normalized = append(normalized, candidate.Clone())
			}
		}
	}
	return normalized
}

// objectEnum returns the {id, label} objects an object field enumerates, or
// nil for fields enumerating plain values.
func objectEnum(fieldSchema *node.Node) []*node.Node {
	if fieldSchema == nil {
		return nil
	}
	if schemaType, _ := fieldSchema.Get("type"); schemaType != "object" {
		return nil
	}
	raw, _ := fieldSchema.Get("enum")
	values, _ := raw.([]any)

	objects := make([]*node.Node, 0, len(values))
	for _, value := range values {
		if object, ok := value.(*node.Node); ok {
			objects = append(objects, object)
		}
	}
	return objects
}
