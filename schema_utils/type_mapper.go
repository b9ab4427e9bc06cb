package schemautils

import (
	"reflect"

	"github.com/getsynq/formschema/forms"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

func typeMapper(i reflect.Type) *jsonschema.Schema {
	switch i {
	// Relation kinds are parsed case-insensitively, the schema lists the
	// canonical spelling.
	case reflect.TypeOf((*forms.RelationKind)(nil)).Elem():
		return &jsonschema.Schema{
			Type: "string",
			Enum: lo.Map(forms.RelationKinds, func(k forms.RelationKind, _ int) any {
				return string(k)
			}),
		}
	}
	return nil
}
