package cmd

import (
	"fmt"
	"os"

	"github.com/getsynq/formschema/changes"
	"github.com/spf13/cobra"
)

var diffCmd_exitCode bool

var diffCmd = &cobra.Command{
	Use:   "diff [definitions-file] [schema-file]",
	Short: "Show how a definitions file changes a generated schema",
	Long: `Convert the definitions file and compare the result with a previously
generated JSON Schema document, definition by definition.`,
	Args: cobra.ExactArgs(2),
	Run:  diffDefinitions,
}

func init() {
	diffCmd.Flags().BoolVar(&diffCmd_exitCode, "exit-code", false, "Exit with status 2 when there are changes")

	rootCmd.AddCommand(diffCmd)
}

func diffDefinitions(cmd *cobra.Command, args []string) {
	filePath, schemaPath := args[0], args[1]
	opts := loadOptions(cmd)

	previous, err := os.ReadFile(schemaPath)
	if err != nil {
		exitWithError(fmt.Errorf("❌ Error reading '%s': %v", schemaPath, err))
	}

	_, defs, err := parse(filePath)
	if err != nil {
		exitWithError(err)
	}

	doc, err := convert(defs, opts)
	if err != nil {
		exitWithError(err)
	}

	updated, err := doc.JSON()
	if err != nil {
		exitWithError(fmt.Errorf("❌ Error encoding document: %v", err))
	}

	changesOverview, err := changes.GenerateChangesOverview(previous, updated)
	if err != nil {
		exitWithError(fmt.Errorf("❌ Error comparing documents: %v", err))
	}
	changesOverview.PrettyPrint()

	if diffCmd_exitCode && changesOverview.HasChanges() {
		os.Exit(2)
	}
}
