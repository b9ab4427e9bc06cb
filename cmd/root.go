package cmd

import (
	"fmt"
	"os"

	"github.com/getsynq/formschema/config"
	"github.com/getsynq/formschema/converter"
	"github.com/spf13/cobra"
)

var (
	envFiles    []string
	skipFields  []string
	formType    string
	splitPoints bool
)

var rootCmd = &cobra.Command{
	Use:           "formschema",
	Short:         "Convert form definitions to JSON Schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load options from these .env files instead of ./.env")
	rootCmd.PersistentFlags().StringSliceVar(&skipFields, "skip-fields", nil, "Fields left out of every form (overrides FORMSCHEMA_SKIP_FIELDS)")
	rootCmd.PersistentFlags().StringVar(&formType, "form-type", "", "Form of each view to convert: add or edit (overrides FORMSCHEMA_FORM_TYPE)")
	rootCmd.PersistentFlags().BoolVar(&splitPoints, "split-points", false, "Split point fields into latitude and longitude (overrides FORMSCHEMA_SPLIT_POINTS)")
}

// loadOptions merges the conversion options from flags, environment
// variables and .env files.
func loadOptions(cmd *cobra.Command) converter.Options {
	configLoader := config.NewLoader(envFiles...)

	if cmd.Flags().Changed("skip-fields") {
		configLoader.SetFlagSkipFields(skipFields)
	}
	if cmd.Flags().Changed("form-type") {
		configLoader.SetFlagFormType(formType)
	}
	if cmd.Flags().Changed("split-points") {
		configLoader.SetFlagSplitPoints(splitPoints)
	}

	opts, err := configLoader.LoadOptions()
	if err != nil {
		exitWithError(fmt.Errorf("❌ Failed to load options: %v", err))
	}
	return opts
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
