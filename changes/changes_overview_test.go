package changes

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"
)

type ChangesOverviewTestSuite struct {
	suite.Suite
}

func TestChangesOverviewTestSuite(t *testing.T) {
	color.NoColor = true
	suite.Run(t, &ChangesOverviewTestSuite{})
}

const previousDocument = `{
  "type": "object",
  "definitions": {
    "Person": {"type": "object", "properties": {"name": {"type": "string", "maxLength": 255}}},
    "Picture": {"type": "object", "properties": {"picture": {"type": "string"}}},
    "Legacy": {"type": "object", "properties": {}}
  },
  "properties": {
    "Person": {"$ref": "#/definitions/Person"},
    "Legacy": {"$ref": "#/definitions/Legacy"}
  }
}`

const newDocument = `{
  "type": "object",
  "definitions": {
    "Person": {"type": "object", "properties": {"name": {"type": "string", "maxLength": 80}}},
    "Picture": {"type": "object", "properties": {"picture": {"type": "string"}}},
    "Address": {"type": "object", "properties": {"street": {"type": "string"}}}
  },
  "properties": {
    "Person": {"$ref": "#/definitions/Person"},
    "Address": {"$ref": "#/definitions/Address"}
  }
}`

func (s *ChangesOverviewTestSuite) TestChangesOverview() {
	s.Run("happy_path_with_changes", func() {
		overview, err := GenerateChangesOverview([]byte(previousDocument), []byte(newDocument))
		s.Require().NoError(err)

		s.True(overview.HasChanges())
		s.Equal([]string{"Address"}, overview.DefinitionsToCreate)
		s.Equal([]string{"Legacy"}, overview.DefinitionsToDelete)
		s.Equal([]string{"Picture"}, overview.DefinitionsUnchanged)
		s.Require().Len(overview.DefinitionsChangesOverview, 1)

		change := overview.DefinitionsChangesOverview[0]
		s.Equal("Person", change.Name)
		s.Contains(change.Changes, "maxLength")
		s.NotEqual("{}", change.ChangesDeltaJson)

		s.Equal([]string{"Address"}, overview.RootsAdded)
		s.Equal([]string{"Legacy"}, overview.RootsRemoved)

		var out bytes.Buffer
		overview.Fprint(&out)
		s.Contains(out.String(), "📈 Summary: 5 total changes")
		s.Contains(out.String(), "+ 1 definitions added")
		s.Contains(out.String(), "- 1 definitions removed")
		s.Contains(out.String(), "~ 1 definitions changed")
		s.Contains(out.String(), "= 1 definitions unchanged")
		s.Contains(out.String(), "+ root Address")
	})

	s.Run("no_changes", func() {
		overview, err := GenerateChangesOverview([]byte(newDocument), []byte(newDocument))
		s.Require().NoError(err)

		s.False(overview.HasChanges())
		s.Equal([]string{"Address", "Person", "Picture"}, overview.DefinitionsUnchanged)
		s.Empty(overview.DefinitionsChangesOverview)

		var out bytes.Buffer
		overview.Fprint(&out)
		s.Contains(out.String(), "No changes detected")
	})

	s.Run("only_roots_changed", func() {
		rootsChanged := `{
  "type": "object",
  "definitions": {
    "Person": {"type": "object", "properties": {"name": {"type": "string", "maxLength": 80}}},
    "Picture": {"type": "object", "properties": {"picture": {"type": "string"}}},
    "Address": {"type": "object", "properties": {"street": {"type": "string"}}}
  },
  "properties": {
    "Person": {"$ref": "#/definitions/Person"},
    "Picture": {"$ref": "#/definitions/Picture"}
  }
}`
		overview, err := GenerateChangesOverview([]byte(newDocument), []byte(rootsChanged))
		s.Require().NoError(err)

		s.True(overview.HasChanges())
		s.Empty(overview.DefinitionsChangesOverview)
		s.Equal([]string{"Picture"}, overview.RootsAdded)
		s.Equal([]string{"Address"}, overview.RootsRemoved)

		var out bytes.Buffer
		overview.Fprint(&out)
		s.Contains(out.String(), "📈 Summary: 2 total changes")
		s.Contains(out.String(), "+ root Picture")
		s.Contains(out.String(), "- root Address")
		s.NotContains(out.String(), "No changes detected")
	})

	s.Run("no_previous_document", func() {
		overview, err := GenerateChangesOverview(nil, []byte(newDocument))
		s.Require().NoError(err)

		s.Equal([]string{"Address", "Person", "Picture"}, overview.DefinitionsToCreate)
		s.Equal([]string{"Address", "Person"}, overview.RootsAdded)
		s.Empty(overview.DefinitionsToDelete)
	})

	s.Run("invalid_document", func() {
		_, err := GenerateChangesOverview([]byte("{"), []byte(newDocument))
		s.Require().Error(err)
		s.Contains(err.Error(), "failed to parse previous document")
	})
}
