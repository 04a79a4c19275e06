package planfile

// File is the parse tree of one .plan design file. Declarations may
// appear in any order; Build enforces the single-boundary rule.
type File struct {
	Name  *string `parser:"( KwPlan @String )?"`
	Decls []*Decl `parser:"@@*"`
}

// Decl is one top-level declaration.
type Decl struct {
	Boundary *Boundary `parser:"  @@"`
	Floor    *Floor    `parser:"| @@"`
	Place    *Place    `parser:"| @@"`
}

// GetBoundaries returns every boundary declaration (Build requires
// exactly one).
func (f *File) GetBoundaries() []*Boundary {
	var bs []*Boundary
	for _, d := range f.Decls {
		if d.Boundary != nil {
			bs = append(bs, d.Boundary)
		}
	}
	return bs
}

// GetFloors returns the floor blocks in declaration order.
func (f *File) GetFloors() []*Floor {
	var fs []*Floor
	for _, d := range f.Decls {
		if d.Floor != nil {
			fs = append(fs, d.Floor)
		}
	}
	return fs
}

// GetPlaces returns the placement declarations in declaration order.
func (f *File) GetPlaces() []*Place {
	var ps []*Place
	for _, d := range f.Decls {
		if d.Place != nil {
			ps = append(ps, d.Place)
		}
	}
	return ps
}

// Boundary is the land boundary polygon.
// Example: boundary (0,0) (10,0) (10,10) (0,10)
type Boundary struct {
	Points []*PointLit `parser:"KwBoundary @@ @@ @@+"`
}

// PointLit is a planar coordinate literal: (x, z) in meters.
type PointLit struct {
	X float64 `parser:"LParen @Number"`
	Z float64 `parser:"Comma @Number RParen"`
}

// Floor is one floor level's wall block.
// Example: floor 0 { wall w1 (0,0) -> (5,0) }
type Floor struct {
	Level int         `parser:"KwFloor @Number"`
	Walls []*WallDecl `parser:"LBrace @@* RBrace"`
}

// WallDecl is a wall or fence run with optional attributes and openings.
// Example: wall w3 (5,5) -> (0,5) height 2.7 { door d1 at 2.0 }
type WallDecl struct {
	Fence    bool           `parser:"( @KwFence | KwWall )"`
	Name     string         `parser:"@Ident"`
	Start    *PointLit      `parser:"@@"`
	End      *PointLit      `parser:"Arrow @@"`
	Attrs    []*WallAttr    `parser:"@@*"`
	Openings []*OpeningDecl `parser:"( LBrace @@* RBrace )?"`
}

// WallAttr is one wall attribute; unspecified attributes fall back to the
// package defaults.
type WallAttr struct {
	Height    *float64 `parser:"  KwHeight @Number"`
	Thickness *float64 `parser:"| KwThickness @Number"`
}

// OpeningDecl is a door or window on its enclosing wall. The position is
// the distance along the wall from its start, in meters.
// Example: window n1 at 0.8 width 1.2 height 1.0 sill 0.9
type OpeningDecl struct {
	Door     bool           `parser:"( @KwDoor | KwWindow )"`
	Name     string         `parser:"@Ident"`
	Position float64        `parser:"KwAt @Number"`
	Attrs    []*OpeningAttr `parser:"@@*"`
}

// OpeningAttr is one opening attribute.
type OpeningAttr struct {
	Width  *float64 `parser:"  KwWidth @Number"`
	Height *float64 `parser:"| KwHeight @Number"`
	Sill   *float64 `parser:"| KwSill @Number"`
}

// Place declares a structure footprint to validate against the boundary.
// Example: place cabin size 4 x 4 at (5,5) rotate 15 setback 1.0
type Place struct {
	Name    string    `parser:"KwPlace @Ident"`
	Width   float64   `parser:"KwSize @Number"`
	Length  float64   `parser:"KwX @Number"`
	At      *PointLit `parser:"KwAt @@"`
	Rotate  *float64  `parser:"( KwRotate @Number )?"`
	Setback *float64  `parser:"( KwSetback @Number )?"`
}
