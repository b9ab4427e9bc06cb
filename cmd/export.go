package cmd

import (
	"fmt"
	"os"

	"github.com/getsynq/formschema/yaml"
	"github.com/spf13/cobra"
)

var (
	exportCmd_namespace string
	exportCmd_version   string
)

var exportCmd = &cobra.Command{
	Use:   "export [definitions-file] [output-file]",
	Short: "Export a definitions file in normalized form",
	Long: `Export the definitions as YAML with every view form written inline,
nested forms named and defaults made explicit.`,
	Args: cobra.ExactArgs(2),
	Run:  exportDefinitions,
}

func init() {
	exportCmd.Flags().StringVar(&exportCmd_namespace, "namespace", "", "Namespace for generated YAML config (defaults to the source namespace)")
	exportCmd.Flags().StringVar(&exportCmd_version, "version", "", "Version of the generated YAML config")

	rootCmd.AddCommand(exportCmd)
}

func exportDefinitions(cmd *cobra.Command, args []string) {
	filePath, outputPath := args[0], args[1]

	// Check if file exists
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		exitWithError(fmt.Errorf("❌ Error: File '%s' exists. Please provide a fresh path or remove the existing file before exporting.", outputPath))
	}

	yamlParser, defs, err := parse(filePath)
	if err != nil {
		exitWithError(err)
	}

	namespace := exportCmd_namespace
	if namespace == "" {
		namespace = yamlParser.GetConfigID()
	}

	generator, err := yaml.NewVersionedGenerator(exportCmd_version, namespace, defs)
	if err != nil {
		exitWithError(fmt.Errorf("❌ %v", err))
	}

	b, err := generator.GenerateYAML()
	if err != nil {
		exitWithError(fmt.Errorf("❌ Conversion errors found: %s", err.Error()))
	}

	// Parse to test validity
	exported, err := yaml.NewVersionedParser(b)
	if err != nil {
		exitWithError(fmt.Errorf("❌ Error parsing generated YAML: %v", err))
	}
	if _, err := exported.ConvertToDefinitions(); err != nil {
		exitWithError(fmt.Errorf("❌ Conversion errors found while parsing generated YAML: %s", err.Error()))
	}

	if err := os.WriteFile(outputPath, b, 0o644); err != nil {
		exitWithError(fmt.Errorf("❌ Error writing YAML: %v", err))
	}

	fmt.Fprintln(os.Stderr, "✅ Export complete!")
}
