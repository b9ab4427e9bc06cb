package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	goyaml "gopkg.in/yaml.v3"
)

func TestGenerateJSONSchema(t *testing.T) {
	schemaBytes, err := GenerateJSONSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, goyaml.Unmarshal(schemaBytes, &schema))
	require.Equal(t, "Form Schema definitions", schema["title"])

	anyOf, ok := schema["anyOf"].([]any)
	require.True(t, ok)
	require.Len(t, anyOf, 1)

	v1 := anyOf[0].(map[string]any)
	properties := v1["properties"].(map[string]any)
	require.Equal(t, map[string]any{"const": "v1"}, properties["version"])
	require.NotContains(t, v1["required"], "version")
	require.Contains(t, v1["required"], "views")

	definitions, ok := schema["$defs"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, definitions, "Field")
	require.Contains(t, definitions, "Validator")
}
