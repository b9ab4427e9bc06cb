package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/getsynq/formschema/converter"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	EnvSkipFields  = "FORMSCHEMA_SKIP_FIELDS"
	EnvFormType    = "FORMSCHEMA_FORM_TYPE"
	EnvSplitPoints = "FORMSCHEMA_SPLIT_POINTS"
)

// Loader handles loading conversion options from various sources
type Loader struct {
	envFiles []string
	// Command line overrides
	flagSkipFields  *[]string
	flagFormType    string
	flagSplitPoints *bool
}

// NewLoader creates a new configuration loader
func NewLoader(envFiles ...string) *Loader {
	return &Loader{
		envFiles: envFiles,
	}
}

// SetFlagSkipFields overrides the skipped fields. An empty list skips nothing.
func (l *Loader) SetFlagSkipFields(fields []string) {
	l.flagSkipFields = &fields
}

func (l *Loader) SetFlagFormType(formType string) {
	l.flagFormType = formType
}

func (l *Loader) SetFlagSplitPoints(splitPoints bool) {
	l.flagSplitPoints = &splitPoints
}

// LoadOptions loads conversion options with priority: command line flags > environment variables > .env files > defaults
func (l *Loader) LoadOptions() (converter.Options, error) {
	if err := l.loadEnvFiles(); err != nil {
		return converter.Options{}, fmt.Errorf("failed to load .env files: %w", err)
	}

	opts := converter.DefaultOptions()

	if l.flagSkipFields != nil {
		opts.SkipFields = *l.flagSkipFields
	} else if raw, ok := os.LookupEnv(EnvSkipFields); ok {
		opts.SkipFields = splitList(raw)
	}

	if l.flagFormType != "" {
		opts.FormType = l.flagFormType
	} else if raw := strings.TrimSpace(os.Getenv(EnvFormType)); raw != "" {
		opts.FormType = raw
	}

	if l.flagSplitPoints != nil {
		opts.SplitPoints = *l.flagSplitPoints
	} else if raw := strings.TrimSpace(os.Getenv(EnvSplitPoints)); raw != "" {
		splitPoints, err := strconv.ParseBool(raw)
		if err != nil {
			return converter.Options{}, fmt.Errorf("invalid %s %q: %w", EnvSplitPoints, raw, err)
		}
		opts.SplitPoints = splitPoints
	}

	if err := l.validateOptions(opts); err != nil {
		return converter.Options{}, err
	}

	return opts, nil
}

// loadEnvFiles loads environment variables from .env files
func (l *Loader) loadEnvFiles() error {
	if len(l.envFiles) == 0 {
		// A missing .env in the current directory is fine
		_ = godotenv.Load()
		return nil
	}

	for _, envFile := range l.envFiles {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	return nil
}

func (l *Loader) validateOptions(opts converter.Options) error {
	if !lo.Contains(converter.FormTypes, opts.FormType) {
		return fmt.Errorf("form type must be one of %s, got %q", strings.Join(converter.FormTypes, ", "), opts.FormType)
	}
	return nil
}

// MustLoadOptions loads options and panics if there's an error
func (l *Loader) MustLoadOptions() converter.Options {
	opts, err := l.LoadOptions()
	if err != nil {
		panic(fmt.Sprintf("failed to load options: %v", err))
	}
	return opts
}

func splitList(raw string) []string {
	fields := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}
