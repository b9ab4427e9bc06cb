package v1

import (
	"fmt"
	"strings"
)

type ConversionError struct {
	Field   string
	Message string
	View    string
	Form    string
	Model   string
}

func (e ConversionError) Error() string {
	if e.View != "" && e.Form != "" {
		return fmt.Sprintf("View '%s', Form '%s': %s - %s", e.View, e.Form, e.Field, e.Message)
	}
	if e.View != "" {
		return fmt.Sprintf("View '%s': %s - %s", e.View, e.Field, e.Message)
	}
	if e.Form != "" {
		return fmt.Sprintf("Form '%s': %s - %s", e.Form, e.Field, e.Message)
	}
	if e.Model != "" {
		return fmt.Sprintf("Model '%s': %s - %s", e.Model, e.Field, e.Message)
	}
	return fmt.Sprintf("%s - %s", e.Field, e.Message)
}

type ConversionErrors []ConversionError

func (e ConversionErrors) Coalesce() error {
	if len(e) > 0 {
		return e
	}
	return nil
}

func (e ConversionErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("Multiple conversion errors:\n  - %s", strings.Join(messages, "\n  - "))
}

func (e ConversionErrors) HasErrors() bool {
	return len(e) > 0
}
