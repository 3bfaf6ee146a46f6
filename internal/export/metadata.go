package export

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/terrain"
)

// Metadata is the YAML record written next to the artifacts of a run.
type Metadata struct {
	Config config.TerrainConfig `yaml:"config"`
	Stats  terrain.Stats        `yaml:"stats"`
	Files  []string             `yaml:"files,omitempty"`
}

// WriteMetadata writes the run's config and stats as YAML.
func WriteMetadata(path string, res *terrain.Result, files []string) error {
	data, err := yaml.Marshal(Metadata{
		Config: res.Config,
		Stats:  res.Stats,
		Files:  files,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadMetadata loads a metadata file.
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
