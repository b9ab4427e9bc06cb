package converter

import (
	"github.com/getsynq/formschema/forms"
)

type observationFixture struct {
	relations *forms.RelationRegistry

	observation     *forms.View
	liveObservation *forms.View
	deadObservation *forms.View
	bycatch         *forms.View
	stranding       *forms.View
}

func newObservationFixture() *observationFixture {
	relations := forms.NewRelationRegistry().
		Add("BaseObservation", forms.Relation{Field: "dead_observation", Target: "DeadObservation", Kind: forms.RelationHasOne}).
		Add("BaseObservation", forms.Relation{Field: "live_observation", Target: "LiveObservation", Kind: forms.RelationHasOne}).
		Add("DeadObservation", forms.Relation{Field: "base_observation", Target: "BaseObservation", Kind: forms.RelationBelongsTo}).
		Add("DeadObservation", forms.Relation{Field: "stranding", Target: "Stranding", Kind: forms.RelationHasOne}).
		Add("DeadObservation", forms.Relation{Field: "bycatch", Target: "Bycatch", Kind: forms.RelationHasOne}).
		Add("LiveObservation", forms.Relation{Field: "base_observation", Target: "BaseObservation", Kind: forms.RelationBelongsTo}).
		Add("Stranding", forms.Relation{Field: "dead_observation", Target: "DeadObservation", Kind: forms.RelationBelongsTo}).
		Add("Bycatch", forms.Relation{Field: "dead_observation", Target: "DeadObservation", Kind: forms.RelationBelongsTo})

	bycatch := &forms.View{
		Name:   "BycatchView",
		Model:  "Bycatch",
		Titles: forms.Titles{Show: "Bycatch", Add: "Add Bycatch"},
		AddForm: forms.NewForm("BycatchForm",
			forms.Field{Name: "fishing_gear", Kind: forms.KindParagraph},
		),
	}
	stranding := &forms.View{
		Name:   "StrandingView",
		Model:  "Stranding",
		Titles: forms.Titles{Show: "Stranding", Add: "Add Stranding"},
		AddForm: forms.NewForm("StrandingForm",
			forms.Field{Name: "stranding_info", Kind: forms.KindParagraph},
		),
	}
	deadObservation := &forms.View{
		Name:   "DeadObservationView",
		Model:  "DeadObservation",
		Titles: forms.Titles{Show: "Dead Observation", Add: "Add Dead Observation"},
		AddForm: forms.NewForm("DeadObservationForm",
			forms.Field{
				Name:  "cause_of_death",
				Kind:  forms.KindQuerySelect,
				Rules: []forms.Rule{forms.DataRequired()},
				Query: forms.StaticChoices{
					{ID: "stranding", Label: "stranding"},
					{ID: "bycatch", Label: "bycatch"},
				},
			},
		),
		Related: []*forms.View{bycatch, stranding},
		Conditions: []forms.Condition{
			forms.OneOf(
				forms.When(bycatch, "cause_of_death", "bycatch"),
				forms.When(stranding, "cause_of_death", "stranding"),
			),
		},
	}
	liveObservation := &forms.View{
		Name:   "LiveObservationView",
		Model:  "LiveObservation",
		Titles: forms.Titles{Show: "Live Observation", Add: "Add Live Observation"},
		AddForm: forms.NewForm("LiveObservationForm",
			forms.Field{
				Name:  "live_observation_type",
				Kind:  forms.KindQuerySelect,
				Rules: []forms.Rule{forms.DataRequired()},
				Query: forms.StaticChoices{
					{ID: "in-water", Label: "in-water"},
					{ID: "nesting", Label: "nesting"},
				},
			},
		),
	}
	observation := &forms.View{
		Name:   "ObservationView",
		Model:  "BaseObservation",
		Titles: forms.Titles{Show: "Observation", Add: "Add Observation"},
		AddForm: forms.NewForm("ObservationForm",
			forms.Field{Name: "length", Kind: forms.KindDecimal, Rules: []forms.Rule{forms.DataRequired()}},
			forms.Field{Name: "alive", Kind: forms.KindBoolean},
		),
		Related: []*forms.View{liveObservation, deadObservation},
		Conditions: []forms.Condition{
			forms.OneOf(
				forms.When(liveObservation, "alive", true),
				forms.When(deadObservation, "alive", false),
			),
		},
	}

	return &observationFixture{
		relations:       relations,
		observation:     observation,
		liveObservation: liveObservation,
		deadObservation: deadObservation,
		bycatch:         bycatch,
		stranding:       stranding,
	}
}

type personFixture struct {
	relations *forms.RelationRegistry
	person    *forms.View
	picture   *forms.View
}

func newPersonFixture() *personFixture {
	relations := forms.NewRelationRegistry().
		Add("Person", forms.Relation{Field: "pictures", Target: "Picture", Kind: forms.RelationHasMany}).
		Add("Picture", forms.Relation{Field: "person", Target: "Person", Kind: forms.RelationBelongsTo})

	picture := &forms.View{
		Name:   "PictureView",
		Model:  "Picture",
		Titles: forms.Titles{List: "Pictures", Add: "Add Picture", Edit: "Edit Picture", Show: "Picture"},
		AddForm: forms.NewForm("PictureForm",
			forms.Field{Name: "picture", Kind: forms.KindImage},
		),
	}
	person := &forms.View{
		Name:   "PersonView",
		Model:  "Person",
		Titles: forms.Titles{Show: "Person", Edit: "Edit Person", Add: "Add Person", List: "People"},
		AddForm: forms.NewForm("PersonForm",
			forms.Field{Name: "csrf_token", Kind: forms.KindText},
			forms.Field{Name: "name", Kind: forms.KindText, Rules: []forms.Rule{forms.InputRequired()}},
		),
		EditForm: forms.NewForm("PersonEditForm",
			forms.Field{Name: "name", Kind: forms.KindText, Rules: []forms.Rule{forms.InputRequired(), forms.Length(1, 80)}},
			forms.Field{Name: "email", Kind: forms.KindText, Rules: []forms.Rule{forms.Email()}},
		),
		Related: []*forms.View{picture},
	}

	return &personFixture{relations: relations, person: person, picture: picture}
}

// merge folds the relations of other into r.
func merge(r *forms.RelationRegistry, models []string, other *forms.RelationRegistry) *forms.RelationRegistry {
	for _, model := range models {
		for _, relation := range other.Relations(model) {
			r.Add(model, relation)
		}
	}
	return r
}
