package forms

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// TitleContext selects which configured title of a view to use.
type TitleContext string

const (
	TitleAdd  TitleContext = "add"
	TitleEdit TitleContext = "edit"
	TitleShow TitleContext = "show"
	TitleList TitleContext = "list"
)

type Titles struct {
	Add  string
	Edit string
	Show string
	List string
}

// View groups the add and edit forms of one model together with the views
// related to it.
type View struct {
	// Name is the type name of the view, e.g. "PersonView".
	Name string
	// Model names the entity the relation provider answers for.
	Model  string
	Titles Titles

	AddForm  *Form
	EditForm *Form

	Related    []*View
	Conditions []Condition
}

var viewSuffix = regexp.MustCompile(`(?i)view`)

// Title returns the configured title for ctx. Views without one are named
// after their type name with "View" removed.
func (v *View) Title(ctx TitleContext) string {
	var title string
	switch ctx {
	case TitleAdd:
		title = v.Titles.Add
	case TitleEdit:
		title = v.Titles.Edit
	case TitleShow:
		title = v.Titles.Show
	case TitleList:
		title = v.Titles.List
	}
	if title != "" {
		return title
	}
	return viewSuffix.ReplaceAllString(v.Name, "")
}

// DefinitionName is the key of the view in a definitions table.
func (v *View) DefinitionName() string {
	return strings.ReplaceAll(v.Title(TitleShow), " ", "")
}

// Form returns the form used for formType ("add" or "edit"). A view without
// an edit form falls back to its add form.
func (v *View) Form(formType string) *Form {
	if formType == string(TitleEdit) && v.EditForm != nil {
		return v.EditForm
	}
	return v.AddForm
}

// ClaimedViews lists the related views taken over by the view's conditions.
func (v *View) ClaimedViews() []*View {
	claimed := []*View{}
	for _, condition := range v.Conditions {
		claimed = append(claimed, condition.AffectedViews()...)
	}
	return lo.Uniq(claimed)
}

// Match ties a discriminator field to the values that select a branch.
type Match struct {
	Field  string
	Values []any
}

// Branch is one alternative of a condition.
type Branch struct {
	View *View
	When []Match
}

// Condition requires exactly one of its branches' related views, picked by
// the value of the discriminator fields. Branches keep the order they were
// declared in.
type Condition struct {
	Branches []Branch
}

// OneOf builds a condition from its branches.
func OneOf(branches ...Branch) Condition {
	return Condition{Branches: branches}
}

// When is shorthand for a branch with a single discriminator value.
func When(view *View, field string, value any) Branch {
	return Branch{View: view, When: []Match{{Field: field, Values: []any{value}}}}
}

func (c Condition) AffectedViews() []*View {
	return lo.Map(c.Branches, func(b Branch, _ int) *View {
		return b.View
	})
}
