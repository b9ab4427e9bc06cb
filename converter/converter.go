// Package converter turns forms and views into JSON Schema documents.
//
// A Converter holds a registration table from field kind to a mapping
// function. Forms are converted field by field; views additionally pull in
// their related views as shared definitions and express conditional
// relations as oneOf constructs.
package converter

import (
	"github.com/getsynq/formschema/forms"
	"github.com/getsynq/formschema/node"
)

const (
	FormTypeAdd  = "add"
	FormTypeEdit = "edit"
)

var FormTypes = []string{FormTypeAdd, FormTypeEdit}

// DefaultSkipFields are dropped from every form unless overridden.
var DefaultSkipFields = []string{"csrf_token"}

type Options struct {
	// SkipFields names fields that never appear in the output. A nil slice
	// means DefaultSkipFields; an empty one skips nothing.
	SkipFields []string
	// FormType selects the add or edit form of a view. Empty means add.
	FormType string
	// SplitPoints replaces point fields by a latitude/longitude sub-form.
	SplitPoints bool
}

func DefaultOptions() Options {
	return Options{
		SkipFields: DefaultSkipFields,
		FormType:   FormTypeAdd,
	}
}

// Mapping is the result of mapping one field: the schema type (empty when
// none applies), the type-specific keywords in output order and whether the
// field is required.
type Mapping struct {
	Type     string
	Options  *node.Node
	Required bool
}

// Handler maps a field of one kind.
type Handler func(field forms.Field) (Mapping, error)

type Converter struct {
	relations forms.Relations
	options   Options
	skip      map[string]bool
	handlers  map[forms.Kind]Handler
}

// New builds a converter. The relation provider is only consulted when
// converting views and may be nil for plain form conversion.
func New(relations forms.Relations, opts Options) *Converter {
	if opts.SkipFields == nil {
		opts.SkipFields = DefaultSkipFields
	}
	if opts.FormType == "" {
		opts.FormType = FormTypeAdd
	}

	c := &Converter{
		relations: relations,
		options:   opts,
		skip:      make(map[string]bool, len(opts.SkipFields)),
		handlers:  map[forms.Kind]Handler{},
	}
	for _, name := range opts.SkipFields {
		c.skip[name] = true
	}

	c.Register(forms.KindText, mapText)
	c.Register(forms.KindParagraph, mapParagraph)
	c.Register(forms.KindDateTime, mapDateTime)
	c.Register(forms.KindBoolean, mapBoolean)
	c.Register(forms.KindInteger, mapNumber("integer"))
	c.Register(forms.KindDecimal, mapNumber("number"))
	c.Register(forms.KindSelect, mapSelect)
	c.Register(forms.KindQuerySelect, mapQuerySelect)
	c.Register(forms.KindQuerySelectMultiple, mapQuerySelectMultiple)
	c.Register(forms.KindImage, mapImage)
	if opts.SplitPoints {
		c.Register(forms.KindPoint, mapPoint)
	}

	return c
}

// Register adds or replaces the handler for kind. It must not be called once
// the converter is shared between goroutines.
func (c *Converter) Register(kind forms.Kind, handler Handler) {
	c.handlers[kind] = handler
}

func (c *Converter) Options() Options {
	return c.options
}
