package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LandSketchLab/landsketch/pkg/plan"
	"github.com/LandSketchLab/landsketch/pkg/plan/planfile"
)

// loadDesign reads a design from a .plan or .json file, dispatching on the
// extension.
func loadDesign(path string) (*plan.Design, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".plan":
		p, err := planfile.NewParser()
		if err != nil {
			return nil, err
		}
		f, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		return f.Build()
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return plan.DecodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported design file %q (want .plan or .json)", path)
	}
}
