package yaml

import (
	"fmt"

	"github.com/getsynq/formschema/yaml/core"
	v1 "github.com/getsynq/formschema/yaml/v1"
)

type VersionedGenerator struct {
	core.Generator
}

var generatorConstructors = map[string]func(string, *core.Definitions) core.Generator{
	core.Version_V1: v1.NewYAMLGenerator,
}

func NewVersionedGenerator(version, configID string, defs *core.Definitions) (*VersionedGenerator, error) {
	if version == "" {
		version = core.Version_Default
	}

	constructor, ok := generatorConstructors[version]
	if !ok {
		return nil, fmt.Errorf("version %s is not supported, supported versions: %s", version, SupportedVersions())
	}

	return &VersionedGenerator{
		Generator: constructor(configID, defs),
	}, nil
}
