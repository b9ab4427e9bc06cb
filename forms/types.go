// Package forms describes the inputs of a conversion: forms made of typed
// fields carrying validation rules, the views that group forms and relate to
// each other, and the relation metadata those views are backed by.
package forms

// Kind tags the input widget of a field.
type Kind string

const (
	KindText                Kind = "text"
	KindParagraph           Kind = "paragraph"
	KindInteger             Kind = "integer"
	KindDecimal             Kind = "decimal"
	KindBoolean             Kind = "boolean"
	KindDateTime            Kind = "datetime"
	KindSelect              Kind = "select"
	KindQuerySelect         Kind = "query_select"
	KindQuerySelectMultiple Kind = "query_select_multiple"
	KindImage               Kind = "image"
	KindForm                Kind = "form"
	KindPoint               Kind = "point"
)

// Kinds lists every kind the definitions file accepts.
var Kinds = []Kind{
	KindText,
	KindParagraph,
	KindInteger,
	KindDecimal,
	KindBoolean,
	KindDateTime,
	KindSelect,
	KindQuerySelect,
	KindQuerySelectMultiple,
	KindImage,
	KindForm,
	KindPoint,
}

// RuleKind tags a validation rule.
type RuleKind string

const (
	RuleRequired      RuleKind = "required"
	RuleInputRequired RuleKind = "input_required"
	RuleDataRequired  RuleKind = "data_required"
	RuleLength        RuleKind = "length"
	RuleNumberRange   RuleKind = "number_range"
	RuleEmail         RuleKind = "email"
	RuleValueRequired RuleKind = "value_required"
)

// Rule is a validation rule. Min and Max bound length and number_range rules;
// Value is the expected value of a value_required rule.
type Rule struct {
	Kind  RuleKind
	Min   *float64
	Max   *float64
	Value any
}

func Required() Rule      { return Rule{Kind: RuleRequired} }
func InputRequired() Rule { return Rule{Kind: RuleInputRequired} }
func DataRequired() Rule  { return Rule{Kind: RuleDataRequired} }
func Email() Rule         { return Rule{Kind: RuleEmail} }

func Length(min, max int) Rule {
	return Rule{Kind: RuleLength, Min: bound(float64(min)), Max: bound(float64(max))}
}

func NumberRange(min, max float64) Rule {
	return Rule{Kind: RuleNumberRange, Min: bound(min), Max: bound(max)}
}

func ValueRequired(value any) Rule {
	return Rule{Kind: RuleValueRequired, Value: value}
}

func bound(v float64) *float64 {
	return &v
}

// BlankChoiceID identifies the "no selection" entry query choices may carry.
const BlankChoiceID = "__None"

// Choice is one option of a queried choice list.
type Choice struct {
	ID    string
	Label string
}

// ChoiceQuery supplies the options of a query_select field at conversion time.
type ChoiceQuery interface {
	Choices() []Choice
}

// ChoiceQueryFunc adapts a function to ChoiceQuery.
type ChoiceQueryFunc func() []Choice

func (f ChoiceQueryFunc) Choices() []Choice {
	return f()
}

// StaticChoices is a ChoiceQuery over a fixed list.
type StaticChoices []Choice

func (c StaticChoices) Choices() []Choice {
	return c
}
