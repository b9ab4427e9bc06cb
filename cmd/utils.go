package cmd

import (
	"fmt"
	"os"

	"github.com/getsynq/formschema/converter"
	"github.com/getsynq/formschema/node"
	"github.com/getsynq/formschema/yaml"
	"github.com/getsynq/formschema/yaml/core"
)

// parse reads a definitions file. Progress goes to stderr so stdout stays
// free for the generated document.
func parse(filePath string) (*yaml.VersionedParser, *core.Definitions, error) {
	fmt.Fprintln(os.Stderr, "🔍 Parsing YAML structure...")
	yamlContent, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("❌ Error reading file: %v", err)
	}

	yamlParser, err := yaml.NewVersionedParser(yamlContent)
	if err != nil {
		return nil, nil, fmt.Errorf("❌ YAML parsing failed: %v", err)
	}
	fmt.Fprintln(os.Stderr, "✅ YAML syntax is valid!")

	defs, err := yamlParser.ConvertToDefinitions()
	if err != nil {
		return nil, nil, fmt.Errorf("❌ Conversion errors found: %s", err.Error())
	}
	fmt.Fprintf(os.Stderr, "✅ Found %d view(s), %d root(s)\n", len(defs.Views), len(defs.Roots))

	return yamlParser, defs, nil
}

func convert(defs *core.Definitions, opts converter.Options) (*node.Node, error) {
	fmt.Fprintf(os.Stderr, "\n🔄 Converting %s forms to JSON Schema...\n", opts.FormType)
	doc, err := converter.New(defs.Relations, opts).Convert(defs.Roots...)
	if err != nil {
		return nil, fmt.Errorf("❌ Error converting views: %v", err)
	}
	fmt.Fprintf(os.Stderr, "✅ Generated %d definition(s)\n", doc.Child("definitions").Len())
	return doc, nil
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
