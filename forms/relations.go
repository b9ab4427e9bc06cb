package forms

import (
	"fmt"
	"slices"
	"strings"
)

//go:generate mockgen -source=relations.go -destination=mocks/mock_relations.go -package=mocks

// Relations answers relation questions about models. Field names are the
// relation attributes declared on model.
type Relations interface {
	IsRelation(model, field string) bool
	IsRelationOneToOne(model, field string) bool
	IsRelationOneToMany(model, field string) bool
	// RelatedFKs returns, for each owner model, the relation field declared on
	// that owner which points at model.
	RelatedFKs(model string, owners ...string) []string
}

type RelationKind string

const (
	RelationBelongsTo RelationKind = "belongsTo"
	RelationHasOne    RelationKind = "hasOne"
	RelationHasMany   RelationKind = "hasMany"
)

var RelationKinds = []RelationKind{RelationBelongsTo, RelationHasOne, RelationHasMany}

// ParseRelationKind accepts the kind names case-insensitively.
func ParseRelationKind(raw string) (RelationKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "belongsto":
		return RelationBelongsTo, nil
	case "hasone":
		return RelationHasOne, nil
	case "hasmany":
		return RelationHasMany, nil
	default:
		return "", fmt.Errorf("unknown relation kind %q", raw)
	}
}

// Cardinality is "many" for hasMany and "one" otherwise.
func (k RelationKind) Cardinality() string {
	if k == RelationHasMany {
		return "many"
	}
	return "one"
}

// Relation is one relation attribute of a model.
type Relation struct {
	Field  string
	Target string
	Kind   RelationKind
}

// RelationRegistry is an in-memory Relations backed by declared relations.
// Relations keep their declaration order per model.
type RelationRegistry struct {
	order  []string
	models map[string][]Relation
}

var _ Relations = (*RelationRegistry)(nil)

func NewRelationRegistry() *RelationRegistry {
	return &RelationRegistry{models: map[string][]Relation{}}
}

// Add declares a relation on model, replacing an earlier one with the same
// field name.
func (r *RelationRegistry) Add(model string, relation Relation) *RelationRegistry {
	relations, known := r.models[model]
	if !known {
		r.order = append(r.order, model)
	}
	for i := range relations {
		if relations[i].Field == relation.Field {
			relations[i] = relation
			return r
		}
	}
	r.models[model] = append(relations, relation)
	return r
}

// Models lists the models with declared relations in declaration order.
func (r *RelationRegistry) Models() []string {
	return slices.Clone(r.order)
}

// Relations returns the relations declared on model.
func (r *RelationRegistry) Relations(model string) []Relation {
	return r.models[model]
}

func (r *RelationRegistry) lookup(model, field string) (Relation, bool) {
	for _, relation := range r.models[model] {
		if relation.Field == field {
			return relation, true
		}
	}
	return Relation{}, false
}

func (r *RelationRegistry) IsRelation(model, field string) bool {
	_, ok := r.lookup(model, field)
	return ok
}

func (r *RelationRegistry) IsRelationOneToOne(model, field string) bool {
	relation, ok := r.lookup(model, field)
	return ok && relation.Kind.Cardinality() == "one"
}

func (r *RelationRegistry) IsRelationOneToMany(model, field string) bool {
	relation, ok := r.lookup(model, field)
	return ok && relation.Kind.Cardinality() == "many"
}

func (r *RelationRegistry) RelatedFKs(model string, owners ...string) []string {
	var fks []string
	for _, owner := range owners {
		for _, relation := range r.models[owner] {
			if relation.Target == model {
				fks = append(fks, relation.Field)
				break
			}
		}
	}
	return fks
}
