// Package planfile parses the .plan text format, the human-writable way to
// describe a design: one boundary polygon, walls grouped in floor blocks,
// and placements to validate. See the File and WallDecl grammar types for
// the shape of the format.
package planfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/LandSketchLab/landsketch/pkg/geom"
	"github.com/LandSketchLab/landsketch/pkg/plan"
)

// Opening defaults applied when a door/window declaration leaves them out.
const (
	DefaultDoorWidth    = 0.9 // meters
	DefaultDoorHeight   = 2.1
	DefaultWindowWidth  = 1.2
	DefaultWindowHeight = 1.2
	DefaultWindowSill   = 0.9
)

// Parser parses .plan files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a .plan parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(PlanLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("planfile: build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a .plan file from r.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("planfile: %w", err)
	}
	return f, nil
}

// ParseString parses .plan source text.
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("planfile: %w", err)
	}
	return f, nil
}

// ParseFile parses the .plan file at filename.
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("planfile: open: %w", err)
	}
	defer file.Close()
	return p.Parse(file)
}

// ParseDesign parses source text and builds the design in one step.
func (p *Parser) ParseDesign(input string) (*plan.Design, error) {
	f, err := p.ParseString(input)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// Build converts the parse tree into a plan.Design, applying wall and
// opening defaults and validating the structural rules the grammar cannot
// express: exactly one boundary with at least 3 points, and wall names
// unique across the whole design (they become the wall ids).
func (f *File) Build() (*plan.Design, error) {
	d := &plan.Design{}
	if f.Name != nil {
		d.Name = unquote(*f.Name)
	}

	bs := f.GetBoundaries()
	if len(bs) != 1 {
		return nil, fmt.Errorf("planfile: want exactly one boundary, have %d", len(bs))
	}
	for _, pt := range bs[0].Points {
		d.Boundary = append(d.Boundary, geom.Point{X: pt.X, Z: pt.Z})
	}
	if len(d.Boundary) < 3 {
		return nil, fmt.Errorf("planfile: boundary needs at least 3 points, have %d", len(d.Boundary))
	}

	seen := map[string]bool{}
	for _, fl := range f.GetFloors() {
		for _, wd := range fl.Walls {
			if seen[wd.Name] {
				return nil, fmt.Errorf("planfile: duplicate wall name %q", wd.Name)
			}
			seen[wd.Name] = true
			w, err := wd.build(fl.Level)
			if err != nil {
				return nil, err
			}
			d.Walls = append(d.Walls, w)
		}
	}

	for _, pl := range f.GetPlaces() {
		p := plan.Placement{
			Name:   pl.Name,
			Center: geom.Point{X: pl.At.X, Z: pl.At.Z},
			Width:  pl.Width,
			Length: pl.Length,
		}
		if pl.Rotate != nil {
			p.Rotation = *pl.Rotate
		}
		if pl.Setback != nil {
			p.Setback = *pl.Setback
		}
		d.Placements = append(d.Placements, p)
	}

	return d, nil
}

func (wd *WallDecl) build(floor int) (plan.Wall, error) {
	w := plan.Wall{
		ID:         wd.Name,
		Start:      geom.Point{X: wd.Start.X, Z: wd.Start.Z},
		End:        geom.Point{X: wd.End.X, Z: wd.End.Z},
		Height:     plan.DefaultWallHeight,
		Thickness:  plan.DefaultWallThickness,
		FloorLevel: floor,
		IsFence:    wd.Fence,
	}
	for _, a := range wd.Attrs {
		switch {
		case a.Height != nil:
			w.Height = *a.Height
		case a.Thickness != nil:
			w.Thickness = *a.Thickness
		}
	}

	wallLen := w.Length()
	seen := map[string]bool{}
	for _, od := range wd.Openings {
		if seen[od.Name] {
			return plan.Wall{}, fmt.Errorf("planfile: duplicate opening name %q on wall %q", od.Name, wd.Name)
		}
		seen[od.Name] = true
		if od.Position < 0 || od.Position > wallLen {
			return plan.Wall{}, fmt.Errorf("planfile: opening %q at %.2fm is outside wall %q (%.2fm long)",
				od.Name, od.Position, wd.Name, wallLen)
		}
		w.Openings = append(w.Openings, od.build())
	}
	return w, nil
}

func (od *OpeningDecl) build() plan.Opening {
	o := plan.Opening{ID: od.Name, Position: od.Position}
	if od.Door {
		o.Type = plan.OpeningDoor
		o.Width = DefaultDoorWidth
		o.Height = DefaultDoorHeight
	} else {
		o.Type = plan.OpeningWindow
		o.Width = DefaultWindowWidth
		o.Height = DefaultWindowHeight
		o.SillHeight = DefaultWindowSill
	}
	for _, a := range od.Attrs {
		switch {
		case a.Width != nil:
			o.Width = *a.Width
		case a.Height != nil:
			o.Height = *a.Height
		case a.Sill != nil:
			o.SillHeight = *a.Sill
		}
	}
	return o
}

// unquote strips the surrounding quotes from a String token.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
