package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewTitle(t *testing.T) {
	view := &View{
		Name:   "PictureView",
		Titles: Titles{Show: "Profile Picture", List: "Pictures"},
	}

	require.Equal(t, "Profile Picture", view.Title(TitleShow))
	require.Equal(t, "Pictures", view.Title(TitleList))
	require.Equal(t, "Picture", view.Title(TitleAdd))
	require.Equal(t, "Picture", view.Title(TitleEdit))
	require.Equal(t, "ProfilePicture", view.DefinitionName())

	lower := &View{Name: "Reviewview"}
	require.Equal(t, "Re", lower.Title(TitleShow))

	upper := &View{Name: "ORDERVIEW"}
	require.Equal(t, "ORDER", upper.Title(TitleShow))
	require.Equal(t, "ORDER", upper.DefinitionName())
}

func TestViewForm(t *testing.T) {
	add := NewForm("add")
	edit := NewForm("edit")

	require.Same(t, add, (&View{AddForm: add, EditForm: edit}).Form("add"))
	require.Same(t, edit, (&View{AddForm: add, EditForm: edit}).Form("edit"))
	require.Same(t, add, (&View{AddForm: add}).Form("edit"))
}

func TestClaimedViews(t *testing.T) {
	bycatch := &View{Name: "BycatchView"}
	stranding := &View{Name: "StrandingView"}
	view := &View{
		Related: []*View{bycatch, stranding},
		Conditions: []Condition{
			OneOf(
				When(bycatch, "cause_of_death", "bycatch"),
				When(stranding, "cause_of_death", "stranding"),
			),
			OneOf(When(bycatch, "other", 1)),
		},
	}

	require.Equal(t, []*View{bycatch, stranding}, view.Conditions[0].AffectedViews())
	require.Equal(t, []*View{bycatch, stranding}, view.ClaimedViews())
}

func TestFieldLabelAndRules(t *testing.T) {
	field := Field{
		Name:  "cause_of_death",
		Rules: []Rule{Length(1, 10), DataRequired(), Length(2, 20)},
	}

	require.Equal(t, "Cause Of Death", field.DisplayLabel())
	require.True(t, field.IsRequired())

	rules := field.RulesByKind()
	require.Len(t, rules, 2)
	require.Equal(t, 2.0, *rules[RuleLength].Min)
	require.Equal(t, 20.0, *rules[RuleLength].Max)

	require.False(t, Field{Name: "x", Rules: []Rule{Email()}}.IsRequired())
	require.Equal(t, "Given", Field{Name: "x", Label: "Given"}.DisplayLabel())
}

func TestFormFieldLookup(t *testing.T) {
	form := NewForm("f", Field{Name: "a", Kind: KindText}, Field{Name: "b", Kind: KindBoolean})

	field, ok := form.Field("b")
	require.True(t, ok)
	require.Equal(t, KindBoolean, field.Kind)

	_, ok = form.Field("c")
	require.False(t, ok)

	var missing *Form
	_, ok = missing.Field("a")
	require.False(t, ok)
}

func TestRelationRegistry(t *testing.T) {
	registry := NewRelationRegistry().
		Add("Person", Relation{Field: "pictures", Target: "Picture", Kind: RelationHasMany}).
		Add("Person", Relation{Field: "address", Target: "Address", Kind: RelationHasOne}).
		Add("Picture", Relation{Field: "person", Target: "Person", Kind: RelationBelongsTo})

	require.True(t, registry.IsRelation("Person", "pictures"))
	require.False(t, registry.IsRelation("Person", "name"))
	require.True(t, registry.IsRelationOneToMany("Person", "pictures"))
	require.False(t, registry.IsRelationOneToOne("Person", "pictures"))
	require.True(t, registry.IsRelationOneToOne("Person", "address"))
	require.True(t, registry.IsRelationOneToOne("Picture", "person"))

	require.Equal(t, []string{"pictures"}, registry.RelatedFKs("Picture", "Person"))
	require.Equal(t, []string{"person"}, registry.RelatedFKs("Person", "Picture"))
	require.Empty(t, registry.RelatedFKs("Person", "Address"))

	registry.Add("Person", Relation{Field: "pictures", Target: "Picture", Kind: RelationHasOne})
	require.True(t, registry.IsRelationOneToOne("Person", "pictures"))
	require.Len(t, registry.Relations("Person"), 2)
	require.Equal(t, []string{"Person", "Picture"}, registry.Models())
}

func TestParseRelationKind(t *testing.T) {
	for raw, want := range map[string]RelationKind{
		"belongsTo": RelationBelongsTo,
		"HASONE":    RelationHasOne,
		" hasmany ": RelationHasMany,
	} {
		got, err := ParseRelationKind(raw)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseRelationKind("manyToMany")
	require.Error(t, err)
}
