package converter

import (
	"slices"

	"github.com/getsynq/formschema/forms"
	"github.com/samber/lo"
)

const (
	CoordinateLatitude  = "latitude"
	CoordinateLongitude = "longitude"
)

// SplitPoints returns a form in which every point field is replaced by a
// nested form holding a latitude and a longitude copy of it. Nested forms are
// split as well. The input form is left untouched and returned as is when it
// holds no point fields.
func SplitPoints(form *forms.Form) *forms.Form {
	if form == nil || !hasPoints(form) {
		return form
	}

	fields := make([]forms.Field, 0, len(form.Fields))
	for _, field := range form.Fields {
		switch {
		case field.Kind == forms.KindPoint && field.Coordinate == "":
			field = forms.Field{
				Name:        field.Name,
				Kind:        forms.KindForm,
				Label:       field.DisplayLabel(),
				Description: field.Description,
				Form: forms.NewForm(field.Name,
					coordinate(field, "lat", "Latitude", CoordinateLatitude),
					coordinate(field, "lon", "Longitude", CoordinateLongitude),
				),
			}
		case field.Kind == forms.KindForm:
			field.Form = SplitPoints(field.Form)
		}
		fields = append(fields, field)
	}

	return form.WithFields(fields)
}

func coordinate(point forms.Field, name, label, kind string) forms.Field {
	return forms.Field{
		Name:        name,
		Kind:        forms.KindPoint,
		Label:       label,
		Description: point.Description,
		Rules:       slices.Clone(point.Rules),
		Coordinate:  kind,
	}
}

func hasPoints(form *forms.Form) bool {
	return lo.SomeBy(form.Fields, func(field forms.Field) bool {
		if field.Kind == forms.KindForm {
			return field.Form != nil && hasPoints(field.Form)
		}
		return field.Kind == forms.KindPoint && field.Coordinate == ""
	})
}
