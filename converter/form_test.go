package converter

import (
	"errors"
	"testing"

	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
	"github.com/stretchr/testify/suite"
)

type FormConverterSuite struct {
	suite.Suite
	converter *Converter
}

func TestFormConverterSuite(t *testing.T) {
	suite.Run(t, new(FormConverterSuite))
}

func (s *FormConverterSuite) SetupTest() {
	s.converter = New(nil, DefaultOptions())
}

func (s *FormConverterSuite) TestSimpleForm() {
	form := forms.NewForm("ObservationForm",
		forms.Field{Name: "csrf_token", Kind: forms.KindText},
		forms.Field{Name: "species", Kind: forms.KindText, Label: "Species name", Rules: []forms.Rule{forms.DataRequired()}},
		forms.Field{Name: "count", Kind: forms.KindInteger, Description: "Number of animals"},
		forms.Field{Name: "observed_at", Kind: forms.KindDateTime, Rules: []forms.Rule{forms.InputRequired()}},
	)

	schema, err := s.converter.ConvertForm(form)
	s.Require().NoError(err)
	s.Require().Equal(
		`{"type":"object","properties":{`+
			`"species":{"type":"string","maxLength":255,"title":"Species name"},`+
			`"count":{"type":"integer","title":"Count","description":"Number of animals"},`+
			`"observed_at":{"type":"string","format":"date-time","title":"Observed At"}},`+
			`"required":["species","observed_at"]}`,
		schema.String(),
	)
	s.Require().Equal([]string{"species", "count", "observed_at"}, schema.Child("properties").Keys())
}

func (s *FormConverterSuite) TestRequiredOmittedWhenEmpty() {
	schema, err := s.converter.ConvertForm(forms.NewForm("f",
		forms.Field{Name: "alive", Kind: forms.KindBoolean},
	))
	s.Require().NoError(err)
	s.Require().False(schema.Has("required"))
	s.Require().Equal([]string{"type", "properties"}, schema.Keys())
}

func (s *FormConverterSuite) TestCustomSkipFields() {
	form := forms.NewForm("f",
		forms.Field{Name: "csrf_token", Kind: forms.KindText},
		forms.Field{Name: "internal", Kind: forms.KindText, Rules: []forms.Rule{forms.Required()}},
	)

	schema, err := New(nil, Options{SkipFields: []string{"internal"}}).ConvertForm(form)
	s.Require().NoError(err)
	s.Require().Equal([]string{"csrf_token"}, schema.Child("properties").Keys())
	s.Require().False(schema.Has("required"))

	schema, err = New(nil, Options{SkipFields: []string{}}).ConvertForm(form)
	s.Require().NoError(err)
	s.Require().Equal([]string{"csrf_token", "internal"}, schema.Child("properties").Keys())
}

func (s *FormConverterSuite) TestNestedForm() {
	address := forms.NewForm("AddressForm",
		forms.Field{Name: "street", Kind: forms.KindText},
		forms.Field{Name: "zip", Kind: forms.KindText, Rules: []forms.Rule{forms.Required(), forms.Length(4, 4)}},
	)
	form := forms.NewForm("PersonForm",
		forms.Field{Name: "address", Kind: forms.KindForm, Label: "Home address", Form: address, Rules: []forms.Rule{forms.Required()}},
	)

	schema, err := s.converter.ConvertForm(form)
	s.Require().NoError(err)
	s.Require().Equal(
		`{"type":"object","properties":{"address":{"type":"object","properties":{`+
			`"street":{"type":"string","maxLength":255,"title":"Street"},`+
			`"zip":{"type":"string","minLength":4,"maxLength":4,"title":"Zip"}},`+
			`"required":["zip"],"title":"Home address"}}}`,
		schema.String(),
	)
}

func (s *FormConverterSuite) TestNestedFormMissing() {
	_, err := s.converter.ConvertForm(forms.NewForm("f",
		forms.Field{Name: "address", Kind: forms.KindForm},
	))
	s.Require().ErrorContains(err, "address")
}

func (s *FormConverterSuite) TestUnsupportedKindAborts() {
	form := forms.NewForm("f",
		forms.Field{Name: "name", Kind: forms.KindText},
		forms.Field{Name: "shape", Kind: forms.Kind("polygon")},
		forms.Field{Name: "alive", Kind: forms.KindBoolean},
	)

	schema, err := s.converter.ConvertForm(form)
	s.Require().Nil(schema)

	var unsupported *UnsupportedFieldKindError
	s.Require().True(errors.As(err, &unsupported))
	s.Require().Equal(forms.Kind("polygon"), unsupported.Kind)
	s.Require().Equal("shape", unsupported.Field)
}

func (s *FormConverterSuite) TestUnsupportedKindInNestedForm() {
	form := forms.NewForm("f",
		forms.Field{Name: "inner", Kind: forms.KindForm, Form: forms.NewForm("inner",
			forms.Field{Name: "location", Kind: forms.KindPoint},
		)},
	)

	_, err := s.converter.ConvertForm(form)
	var unsupported *UnsupportedFieldKindError
	s.Require().True(errors.As(err, &unsupported))
	s.Require().Equal(forms.KindPoint, unsupported.Kind)
}

func (s *FormConverterSuite) TestValueRequired() {
	form := forms.NewForm("f",
		forms.Field{Name: "species", Kind: forms.KindText, Rules: []forms.Rule{forms.Required()}},
		forms.Field{Name: "boolfield", Kind: forms.KindBoolean, Rules: []forms.Rule{forms.ValueRequired(true)}},
	)

	schema, err := s.converter.ConvertForm(form)
	s.Require().NoError(err)
	s.Require().Equal([]string{"type", "properties", "required", "allOf"}, schema.Keys())

	allOf, ok := schema.Get("allOf")
	s.Require().True(ok)
	s.Require().Len(allOf, 1)
	s.Require().Equal(`{"properties":{"boolfield":{"enum":[true]}}}`, allOf.([]any)[0].(*node.Node).String())
}

func (s *FormConverterSuite) TestIdempotent() {
	form := forms.NewForm("f",
		forms.Field{Name: "a", Kind: forms.KindText, Rules: []forms.Rule{forms.Required()}},
		forms.Field{Name: "b", Kind: forms.KindSelect, Choices: []any{"x", "y"}},
	)

	first, err := s.converter.ConvertForm(form)
	s.Require().NoError(err)
	second, err := s.converter.ConvertForm(form)
	s.Require().NoError(err)
	s.Require().True(node.Equal(first, second))
}

func (s *FormConverterSuite) TestSplitPoints() {
	form := forms.NewForm("GeoObservationForm",
		forms.Field{Name: "name", Kind: forms.KindText, Rules: []forms.Rule{forms.DataRequired()}},
		forms.Field{Name: "location", Kind: forms.KindPoint, Rules: []forms.Rule{forms.DataRequired()}},
	)

	schema, err := New(nil, Options{SplitPoints: true}).ConvertForm(form)
	s.Require().NoError(err)
	s.Require().Equal(
		`{"type":"object","properties":{`+
			`"name":{"type":"string","maxLength":255,"title":"Name"},`+
			`"location":{"type":"object","properties":{`+
			`"lat":{"type":"string","format":"coordinate_point_latitude","title":"Latitude"},`+
			`"lon":{"type":"string","format":"coordinate_point_longitude","title":"Longitude"}},`+
			`"required":["lat","lon"],"title":"Location"}},`+
			`"required":["name"]}`,
		schema.String(),
	)

	// the caller's form keeps its point field
	s.Require().Equal(forms.KindPoint, form.Fields[1].Kind)
}

func (s *FormConverterSuite) TestSplitPointsWithoutPoints() {
	form := forms.NewForm("f", forms.Field{Name: "a", Kind: forms.KindText})
	s.Require().Same(form, SplitPoints(form))
}
