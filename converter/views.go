package converter

import (
	"fmt"
	"slices"

	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
	"github.com/samber/lo"
)

// Convert converts views into one document sharing a definitions table:
//
//	{type: object, definitions: {<name>: ...}, properties: {<root>: {$ref}}}
//
// Every view passed in is a root and gets a reference under properties.
// Related views are registered as definitions only. A view reached more than
// once is converted the first time.
func (c *Converter) Convert(views ...*forms.View) (*node.Node, error) {
	if c.relations == nil && lo.SomeBy(views, hasRelatedViews) {
		return nil, ErrNoRelations
	}

	definitions := node.New()
	properties := node.New()

	for _, view := range views {
		if err := c.convertView(view, definitions); err != nil {
			return nil, err
		}
		properties.Set(view.DefinitionName(), definitionRef(view.DefinitionName()))
	}

	return node.New(
		"type", "object",
		"definitions", definitions,
		"properties", properties,
	), nil
}

func (c *Converter) convertView(view *forms.View, definitions *node.Node) error {
	name := view.DefinitionName()
	if definitions.Has(name) {
		return nil
	}

	form := view.Form(c.options.FormType)
	if form == nil {
		return fmt.Errorf("view '%s' has no %s form", view.Name, c.options.FormType)
	}
	schema, err := c.ConvertForm(form)
	if err != nil {
		return fmt.Errorf("view '%s': %w", view.Name, err)
	}
	definitions.Set(name, schema)

	claimed := view.ClaimedViews()
	for _, related := range view.Related {
		if !slices.Contains(claimed, related) {
			properties := schema.Child("properties")
			for _, fk := range c.relations.RelatedFKs(related.Model, view.Model) {
				properties.Set(fk, c.RelatedProperty(view, related, fk))
			}
		}
		if err := c.convertView(related, definitions); err != nil {
			return err
		}
	}

	for i, condition := range view.Conditions {
		key, branches, err := c.BuildCondition(condition, view)
		if err != nil {
			return fmt.Errorf("view '%s': %w", view.Name, err)
		}
		if i == 0 {
			schema.Set(key, branches)
		} else {
			appendAllOf(schema, node.New(key, branches))
		}
	}

	for _, related := range claimed {
		c.pruneBackReferences(view, related, definitions.Child(related.DefinitionName()))
	}

	return nil
}

// appendAllOf adds an entry to the allOf list of schema, creating it when
// needed.
func appendAllOf(schema *node.Node, entry *node.Node) {
	existing, _ := schema.Get("allOf")
	entries, _ := existing.([]any)
	schema.Set("allOf", append(entries, entry))
}

// pruneBackReferences removes from the related definition the relation fields
// that lead back to owner, together with their required entries.
func (c *Converter) pruneBackReferences(owner, related *forms.View, relatedSchema *node.Node) {
	if relatedSchema == nil {
		return
	}
	properties := relatedSchema.Child("properties")
	for _, fk := range c.relations.RelatedFKs(owner.Model, related.Model) {
		if !properties.Delete(fk) {
			continue
		}
		required := lo.Without(relatedSchema.Strings("required"), fk)
		if len(required) == 0 {
			relatedSchema.Delete("required")
		} else if relatedSchema.Has("required") {
			relatedSchema.Set("required", required)
		}
	}
}

func hasRelatedViews(view *forms.View) bool {
	return len(view.Related) > 0 || len(view.Conditions) > 0
}
