package yaml

import (
	"fmt"
	"slices"

	"github.com/getsynq/formschema/yaml/core"
	v1 "github.com/getsynq/formschema/yaml/v1"
	"github.com/samber/lo"
	goyaml "gopkg.in/yaml.v3"
)

type VersionedParser struct {
	core.Parser
}

var parserConstructors = map[string]func([]byte) (core.Parser, error){
	core.Version_V1: v1.NewYAMLParserFromBytes,
}

// SupportedVersions lists the definitions file versions, sorted.
func SupportedVersions() []string {
	versions := lo.Keys(parserConstructors)
	slices.Sort(versions)
	return versions
}

func NewVersionedParser(yamlContent []byte) (*VersionedParser, error) {
	var versionCheck struct {
		Version string `yaml:"version"`
	}

	err := goyaml.Unmarshal(yamlContent, &versionCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	version := versionCheck.Version
	if version == "" {
		version = core.Version_Default
	}

	constructor, ok := parserConstructors[version]
	if !ok {
		return nil, fmt.Errorf("version %s is not supported, supported versions: %s", version, SupportedVersions())
	}

	parser, err := constructor(yamlContent)
	if err != nil {
		return nil, err
	}

	return &VersionedParser{
		Parser: parser,
	}, nil
}
