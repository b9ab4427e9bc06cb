package converter

import (
	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
)

// RelatedProperty renders the relation field of owner that leads to related.
// One-to-many relations become an array of references titled with the list
// title of the related view; anything else is a single reference, as is
// every relation of a converter without a relation provider.
func (c *Converter) RelatedProperty(owner, related *forms.View, field string) *node.Node {
	ref := definitionRef(related.DefinitionName())
	if c.relations == nil {
		return ref
	}

	if c.relations.IsRelationOneToOne(owner.Model, field) {
		return ref
	}
	if c.relations.IsRelationOneToMany(owner.Model, field) {
		return node.New(
			"type", "array",
			"title", related.Title(forms.TitleList),
			"items", []any{ref},
		)
	}
	return ref
}

func definitionRef(name string) *node.Node {
	return node.New("$ref", "#/definitions/"+name)
}
