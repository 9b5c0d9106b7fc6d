package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a floor plan from a YAML file.
func Load(path string) (*FloorPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading floor plan file: %w", err)
	}

	var fp FloorPlan
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("parsing floor plan YAML: %w", err)
	}

	fp.FillDerived()
	return &fp, nil
}

// LoadProject loads a floor plan from a project directory.
// It looks for floorplan.yaml in the given directory.
func LoadProject(projectDir string) (*FloorPlan, error) {
	return Load(filepath.Join(projectDir, "floorplan.yaml"))
}

// FillDerived computes TotalArea from the bounds when the importer
// left it unset. UsableArea stays zero until extraction runs.
func (fp *FloorPlan) FillDerived() {
	if fp.TotalArea == 0 {
		fp.TotalArea = fp.Bounds.Area()
	}
}
