package yaml

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/getsynq/formschema/converter"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/suite"
)

type YAMLParserSuite struct {
	suite.Suite
}

func TestYAMLParserSuite(t *testing.T) {
	suite.Run(t, new(YAMLParserSuite))
}

func (s *YAMLParserSuite) examplesFolder() string {
	_, thisfile, _, ok := runtime.Caller(0)
	s.Require().True(ok)
	return filepath.Join(filepath.Dir(thisfile), "../examples")
}

func (s *YAMLParserSuite) TestExamples() {
	files := []string{}
	err := filepath.WalkDir(s.examplesFolder(), func(path string, d fs.DirEntry, err error) error {
		s.Require().NoError(err)
		if filepath.Ext(d.Name()) == ".yaml" || filepath.Ext(d.Name()) == ".yml" {
			files = append(files, path)
		}
		return nil
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(files)

	for _, file := range files {
		fmt.Printf("Parsing file: %s\n", file)
		yamlContent, err := os.ReadFile(file)
		s.Require().NoError(err)

		yamlParser, err := NewVersionedParser(yamlContent)
		s.Require().NoError(err)

		defs, err := yamlParser.ConvertToDefinitions()
		s.Require().NoError(err)

		opts := converter.DefaultOptions()
		opts.SplitPoints = true
		doc, err := converter.New(defs.Relations, opts).Convert(defs.Roots...)
		s.Require().NoError(err)

		schemaJson, err := doc.JSON()
		s.Require().NoError(err)

		snapFileName := filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file))
		snaps.WithConfig(snaps.Filename(snapFileName)).MatchJSON(
			s.T(),
			schemaJson,
		)
	}
}

func (s *YAMLParserSuite) TestExamplesMatchGoldens() {
	cases := map[string]struct {
		namespace string
		golden    string
	}{
		"observations.yaml": {namespace: "turtles", golden: "../converter/testdata/observation.golden.json"},
		"people.yaml":       {namespace: "people", golden: "testdata/people.golden.json"},
		"geo.yaml":          {namespace: "geo", golden: "testdata/geo.golden.json"},
	}

	for file, tc := range cases {
		s.Run(file, func() {
			yamlContent, err := os.ReadFile(filepath.Join(s.examplesFolder(), file))
			s.Require().NoError(err)

			yamlParser, err := NewVersionedParser(yamlContent)
			s.Require().NoError(err)
			s.Equal(tc.namespace, yamlParser.GetConfigID())

			defs, err := yamlParser.ConvertToDefinitions()
			s.Require().NoError(err)

			opts := converter.DefaultOptions()
			opts.SplitPoints = true
			doc, err := converter.New(defs.Relations, opts).Convert(defs.Roots...)
			s.Require().NoError(err)

			schemaJson, err := doc.JSON()
			s.Require().NoError(err)

			golden, err := os.ReadFile(tc.golden)
			s.Require().NoError(err)

			s.JSONEq(string(golden), string(schemaJson))
		})
	}
}

func (s *YAMLParserSuite) TestVersions() {
	parser, err := NewVersionedParser([]byte("namespace: n\nviews: []\n"))
	s.Require().NoError(err)
	s.Equal("v1", parser.GetVersion())

	_, err = NewVersionedParser([]byte("version: v0\nnamespace: n\n"))
	s.Require().Error(err)
	s.Contains(err.Error(), "version v0 is not supported, supported versions: [v1]")

	_, err = NewVersionedParser([]byte("version: [v1"))
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to parse YAML")

	_, err = NewVersionedGenerator("v0", "n", nil)
	s.Require().Error(err)

	generator, err := NewVersionedGenerator("", "n", nil)
	s.Require().NoError(err)
	s.Equal("v1", generator.GetVersion())
	s.Equal("n", generator.GetConfigID())
}
