package converter

import (
	"errors"
	"fmt"

	"github.com/getsynq/formschema/forms"
)

// ErrNoRelations is returned when related views are converted by a converter
// built without a relation provider.
var ErrNoRelations = errors.New("converting related views requires a relation provider")

// UnsupportedFieldKindError is returned when no handler is registered for the
// kind of a field. It always aborts the conversion.
type UnsupportedFieldKindError struct {
	Field string
	Kind  forms.Kind
}

func (e *UnsupportedFieldKindError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("field kind %q is not supported", e.Kind)
	}
	return fmt.Sprintf("field '%s': kind %q is not supported", e.Field, e.Kind)
}
