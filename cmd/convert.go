package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/getsynq/formschema/changes"
	"github.com/getsynq/formschema/yaml"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	convertCmd_output      string
	convertCmd_format      string
	convertCmd_preview     bool
	convertCmd_autoConfirm bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [definitions-file]",
	Short: "Convert a definitions file to JSON Schema",
	Long: `Convert the views of a definitions file into one JSON Schema document.
Without --output the document is written to stdout. When the output file
exists the changes are shown and confirmed before it is overwritten.`,
	Args: cobra.ExactArgs(1),
	Run:  convertDefinitions,
}

func init() {
	convertCmd.Flags().StringVarP(&convertCmd_output, "output", "o", "", "Write the document to this file")
	convertCmd.Flags().StringVar(&convertCmd_format, "format", "json", "Output format: json or yaml")
	convertCmd.Flags().BoolVar(&convertCmd_preview, "preview", false, "Print the first lines of the definitions file")
	convertCmd.Flags().BoolVar(&convertCmd_autoConfirm, "auto-confirm", false, "Automatically confirm all prompts (skip interactive confirmations)")

	rootCmd.AddCommand(convertCmd)
}

func convertDefinitions(cmd *cobra.Command, args []string) {
	filePath := args[0]
	opts := loadOptions(cmd)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		exitWithError(fmt.Errorf("❌ Error: File '%s' does not exist", filePath))
	}

	if convertCmd_preview {
		if err := yaml.PrintFileOverview(os.Stderr, filePath); err != nil {
			exitWithError(fmt.Errorf("❌ Error getting file overview: %v", err))
		}
	}

	_, defs, err := parse(filePath)
	if err != nil {
		exitWithError(err)
	}

	doc, err := convert(defs, opts)
	if err != nil {
		exitWithError(err)
	}

	var b []byte
	switch strings.ToLower(convertCmd_format) {
	case "json":
		b, err = doc.JSON()
		b = append(b, '\n')
	case "yaml", "yml":
		b, err = doc.YAML()
	default:
		exitWithError(fmt.Errorf("❌ Unsupported format: %s", convertCmd_format))
	}
	if err != nil {
		exitWithError(fmt.Errorf("❌ Error encoding document: %v", err))
	}

	if convertCmd_output == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			exitWithError(fmt.Errorf("❌ Error writing document: %v", err))
		}
		return
	}

	if previous, err := os.ReadFile(convertCmd_output); err == nil {
		if !confirmOverwrite(previous, b) {
			return
		}
	} else if !os.IsNotExist(err) {
		exitWithError(fmt.Errorf("❌ Error reading '%s': %v", convertCmd_output, err))
	}

	if err := os.WriteFile(convertCmd_output, b, 0o644); err != nil {
		exitWithError(fmt.Errorf("❌ Error writing document: %v", err))
	}

	fmt.Fprintf(os.Stderr, "✅ Wrote %s\n", convertCmd_output)
}

// confirmOverwrite shows what changes against the existing output and asks
// before replacing it. YAML output is only confirmed, not compared.
func confirmOverwrite(previous, updated []byte) bool {
	if strings.ToLower(convertCmd_format) == "json" {
		changesOverview, err := changes.GenerateChangesOverview(previous, updated)
		if err != nil {
			exitWithError(fmt.Errorf("❌ Error comparing with '%s': %v", convertCmd_output, err))
		}
		changesOverview.PrettyPrint()
		if !changesOverview.HasChanges() {
			return false
		}
	}

	if convertCmd_autoConfirm {
		fmt.Fprintln(os.Stderr, "✅ Auto-confirmed overwrite!")
		return true
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Overwrite '%s'? (y/N)", convertCmd_output),
		IsConfirm: true,
	}
	if result, err := prompt.Run(); err != nil || strings.ToLower(result) != "y" {
		fmt.Fprintln(os.Stderr, "❌ Conversion cancelled")
		return false
	}
	return true
}
