package core

import (
	"github.com/getsynq/formschema/forms"
)

const (
	Version_V1 = "v1"

	Version_Default = Version_V1
)

type Config struct {
	Version string `yaml:"version,omitempty"`
	ID      string `yaml:"namespace"`
}

type MetadataProvider interface {
	GetVersion() string
	GetConfigID() string
}

// Definitions is what a definitions file describes: the views to convert,
// every view it declares and the relations between their models.
type Definitions struct {
	Roots     []*forms.View
	Views     []*forms.View
	Relations *forms.RelationRegistry
}

// View looks a declared view up by name.
func (d *Definitions) View(name string) (*forms.View, bool) {
	for _, view := range d.Views {
		if view.Name == name {
			return view, true
		}
	}
	return nil, false
}

type Parser interface {
	MetadataProvider
	ConvertToDefinitions() (*Definitions, error)
}

type Generator interface {
	MetadataProvider
	GenerateYAML() ([]byte, error)
}
