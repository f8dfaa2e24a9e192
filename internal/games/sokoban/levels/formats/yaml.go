package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
//	id: lvl01
//	name: First Push
//	ground: |
//	  _____
//	  ___R_
//	content: |
//	  WWWWW
//	  W>r_W
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Ground   string            `yaml:"ground"`
	Content  string            `yaml:"content"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Ground:   yl.Ground,
		Content:  yl.Content,
		Metadata: yl.Metadata,
	}
	if err := level.check(); err != nil {
		return Level{}, err
	}
	return level, nil
}
