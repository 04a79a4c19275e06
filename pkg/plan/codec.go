package plan

import (
	"encoding/json"
	"fmt"
)

// codecVersion is written into every encoded design so future layout
// changes can be migrated on load.
const codecVersion = "1.0"

type designFile struct {
	Version string `json:"version"`
	Design
}

// EncodeJSON serializes the design in the persisted layout: walls as
// {id, start:{x,z}, end:{x,z}, height, thickness, openings, floorLevel,
// isFence}, boundary as an ordered array of {x,z} points.
func (d Design) EncodeJSON() ([]byte, error) {
	out, err := json.MarshalIndent(designFile{Version: codecVersion, Design: d}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("plan: encode design: %w", err)
	}
	return out, nil
}

// DecodeJSON loads a design from its persisted layout. Planar points may
// use the legacy {x, y} form; they are converted on the way in and the
// design holds {x, z} throughout.
func DecodeJSON(data []byte) (*Design, error) {
	var f designFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("plan: decode design: %w", err)
	}
	d := f.Design
	return &d, nil
}
