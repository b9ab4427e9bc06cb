package schema

import (
	"encoding/json"
	"slices"

	schemautils "github.com/getsynq/formschema/schema_utils"
	"github.com/getsynq/formschema/yaml/core"
	v1 "github.com/getsynq/formschema/yaml/v1"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

var versionRegistry = map[string]any{
	core.Version_V1: v1.Config{},
}

func GenerateJSONSchema() ([]byte, error) {
	reflector := schemautils.NewReflector()

	schema := &jsonschema.Schema{}
	schema.Title = "Form Schema definitions"

	versionKeys := lo.Keys(versionRegistry)
	slices.Sort(versionKeys)

	for _, versionKey := range versionKeys {
		version := versionRegistry[versionKey]
		versionSchema := reflector.Reflect(version)
		versionSchema.Properties.Set("version", &jsonschema.Schema{Const: versionKey})

		// The default version may leave `version` out, so the parser and
		// the schema move to a new default together.
		if versionKey != core.Version_Default {
			versionSchema.Required = append(versionSchema.Required, "version")
		}

		schema.AnyOf = append(schema.AnyOf, versionSchema)
	}

	schemautils.MergeDefinitions(schema)

	return json.MarshalIndent(schema, "", "  ")
}
