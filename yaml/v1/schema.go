package v1

import (
	"encoding/json"

	schemautils "github.com/getsynq/formschema/schema_utils"
)

func GenerateJSONSchema() ([]byte, error) {
	reflector := schemautils.NewReflector()
	schema := reflector.Reflect(&Config{})

	schema.Title = "Form Schema definitions: v1"
	schema.Description = ""

	schemautils.MergeDefinitions(schema)

	return json.MarshalIndent(schema, "", "  ")
}
