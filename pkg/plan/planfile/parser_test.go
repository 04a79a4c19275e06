package planfile

import (
	"math"
	"strings"
	"testing"

	"github.com/LandSketchLab/landsketch/pkg/geom"
	"github.com/LandSketchLab/landsketch/pkg/plan"
)

const sampleSource = `
# 10x10 parcel with one room and a fence
plan "Smithfield lot"

boundary (0,0) (10,0) (10,10) (0,10)

floor 0 {
  wall w1 (0,0) -> (5,0) height 2.7 thickness 0.2
  wall w2 (5,0) -> (5,5)
  wall w3 (5,5) -> (0,5) {
    door d1 at 2.0 width 0.9 height 2.1
    window n1 at 0.8 width 1.2 height 1.0 sill 0.9
  }
  wall w4 (0,5) -> (0,0)
  fence f1 (8,8) -> (10,8)
}

floor 1 {
  wall u1 (0,0) -> (5,0)
}

place cabin size 4 x 4 at (5,5) rotate 15 setback 1.0
place shed size 2 x 3 at (8,2)
`

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	return p
}

func TestParseDesign(t *testing.T) {
	d, err := mustParser(t).ParseDesign(sampleSource)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if d.Name != "Smithfield lot" {
		t.Errorf("name = %q", d.Name)
	}
	if len(d.Boundary) != 4 || d.Boundary[2] != (geom.Point{X: 10, Z: 10}) {
		t.Errorf("boundary = %v", d.Boundary)
	}
	if len(d.Walls) != 6 {
		t.Fatalf("got %d walls, want 6", len(d.Walls))
	}

	w1 := d.Walls[0]
	if w1.ID != "w1" || w1.Height != 2.7 || w1.Thickness != 0.2 {
		t.Errorf("w1 = %+v", w1)
	}

	// Unspecified attributes fall back to defaults.
	w2 := d.Walls[1]
	if w2.Height != plan.DefaultWallHeight || w2.Thickness != plan.DefaultWallThickness {
		t.Errorf("w2 defaults = %v / %v", w2.Height, w2.Thickness)
	}

	w3 := d.Walls[2]
	if len(w3.Openings) != 2 {
		t.Fatalf("w3 has %d openings, want 2", len(w3.Openings))
	}
	door := w3.Openings[0]
	if door.Type != plan.OpeningDoor || door.Position != 2.0 || door.Width != 0.9 {
		t.Errorf("door = %+v", door)
	}
	win := w3.Openings[1]
	if win.Type != plan.OpeningWindow || win.SillHeight != 0.9 {
		t.Errorf("window = %+v", win)
	}

	fence := d.Walls[4]
	if !fence.IsFence || fence.ID != "f1" {
		t.Errorf("fence = %+v", fence)
	}
	if up := d.Walls[5]; up.FloorLevel != 1 {
		t.Errorf("u1 floor = %d, want 1", up.FloorLevel)
	}

	if len(d.Placements) != 2 {
		t.Fatalf("got %d placements, want 2", len(d.Placements))
	}
	cabin := d.Placements[0]
	if cabin.Name != "cabin" || cabin.Rotation != 15 || cabin.Setback != 1.0 {
		t.Errorf("cabin = %+v", cabin)
	}
	if cabin.Center != (geom.Point{X: 5, Z: 5}) || cabin.Width != 4 || cabin.Length != 4 {
		t.Errorf("cabin geometry = %+v", cabin)
	}
	// rotate/setback default to zero when omitted.
	if shed := d.Placements[1]; shed.Rotation != 0 || shed.Setback != 0 {
		t.Errorf("shed = %+v", shed)
	}
}

// The parsed wall set must feed straight into room detection.
func TestParsedDesignDetectsRooms(t *testing.T) {
	d, err := mustParser(t).ParseDesign(sampleSource)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	rooms := plan.DetectRooms(d.Walls)
	if len(rooms) != 1 {
		t.Fatalf("got %d rooms, want 1 (floor 1 is an open run, the fence is ignored)", len(rooms))
	}
	if rooms[0].Center.DistanceTo(geom.Point{X: 2.5, Z: 2.5}) > 1e-9 {
		t.Errorf("room centroid = %v", rooms[0].Center)
	}
	if math.Abs(rooms[0].Area()-25) > 1e-9 {
		t.Errorf("room area = %v", rooms[0].Area())
	}
}

func TestParseNegativeCoordinates(t *testing.T) {
	d, err := mustParser(t).ParseDesign(`
boundary (-5,-5) (5,-5) (5,5) (-5,5)
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Boundary[0] != (geom.Point{X: -5, Z: -5}) {
		t.Errorf("boundary[0] = %v", d.Boundary[0])
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name, src, wantErr string
	}{
		{
			"no boundary",
			`floor 0 { wall w1 (0,0) -> (5,0) }`,
			"exactly one boundary",
		},
		{
			"two boundaries",
			"boundary (0,0) (1,0) (1,1)\nboundary (0,0) (2,0) (2,2)",
			"exactly one boundary",
		},
		{
			"duplicate wall name",
			"boundary (0,0) (9,0) (9,9)\nfloor 0 { wall w1 (0,0) -> (1,0)\nwall w1 (1,0) -> (2,0) }",
			"duplicate wall name",
		},
		{
			"opening beyond wall end",
			"boundary (0,0) (9,0) (9,9)\nfloor 0 { wall w1 (0,0) -> (2,0) { door d1 at 5.0 } }",
			"outside wall",
		},
	}
	p := mustParser(t)
	for _, c := range cases {
		_, err := p.ParseDesign(c.src)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantErr) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.wantErr)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := mustParser(t).ParseString(`boundary (0,0 (1,0)`); err == nil {
		t.Error("malformed point literal should fail to parse")
	}
	if _, err := mustParser(t).ParseString(`wall w1 (0,0) -> (1,0)`); err == nil {
		t.Error("wall outside a floor block should fail to parse")
	}
}
