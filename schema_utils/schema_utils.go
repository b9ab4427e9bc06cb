package schemautils

import (
	"slices"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

func NewReflector() jsonschema.Reflector {
	return jsonschema.Reflector{
		ExpandedStruct: true,
		FieldNameTag:   "yaml",
		Mapper:         typeMapper,
	}
}

type DiscriminatedUnionBuilder[T any] struct {
	Reflector     jsonschema.Reflector
	Discriminator string
	Registry      map[string]T

	RequireDiscriminator bool
}

func (b *DiscriminatedUnionBuilder[T]) Build(
	opts ...func(key string, schema *jsonschema.Schema),
) *jsonschema.Schema {
	schema := &jsonschema.Schema{}

	if b.RequireDiscriminator {
		schema.Required = append(schema.Required, b.Discriminator)
	}

	keys := lo.Keys(b.Registry)
	slices.Sort(keys)

	for _, key := range keys {
		itemType := b.Registry[key]

		itemSchema := b.Reflector.Reflect(itemType)
		itemSchema.Properties.Set(b.Discriminator, &jsonschema.Schema{Const: key})

		for _, opt := range opts {
			opt(key, itemSchema)
		}

		schema.AnyOf = append(schema.AnyOf, itemSchema)
	}

	return schema
}

// MergeDefinitions hoists the definitions of every nested schema into the
// root so references resolve against a single table.
func MergeDefinitions(schema *jsonschema.Schema) {
	if schema == nil {
		return
	}

	root := make(jsonschema.Definitions)
	collectDefinitions(schema, root)
	schema.Definitions = root
}

func collectDefinitions(s *jsonschema.Schema, rootDefs jsonschema.Definitions) {
	if s == nil {
		return
	}

	if s.Definitions != nil {
		for key, def := range s.Definitions {
			if _, exists := rootDefs[key]; !exists {
				rootDefs[key] = def
			}
			collectDefinitions(def, rootDefs)
		}
		s.Definitions = nil
	}

	if s.Properties != nil {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			collectDefinitions(pair.Value, rootDefs)
		}
	}

	for _, prop := range s.PatternProperties {
		collectDefinitions(prop, rootDefs)
	}

	collectDefinitions(s.AdditionalProperties, rootDefs)
	collectDefinitions(s.Items, rootDefs)

	for _, schema := range s.OneOf {
		collectDefinitions(schema, rootDefs)
	}

	for _, schema := range s.AnyOf {
		collectDefinitions(schema, rootDefs)
	}

	for _, schema := range s.AllOf {
		collectDefinitions(schema, rootDefs)
	}

	collectDefinitions(s.Not, rootDefs)
	collectDefinitions(s.If, rootDefs)
	collectDefinitions(s.Then, rootDefs)
	collectDefinitions(s.Else, rootDefs)

	for _, dep := range s.DependentSchemas {
		collectDefinitions(dep, rootDefs)
	}
}
