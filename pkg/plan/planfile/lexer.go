package planfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PlanLexer defines the lexical structure of .plan design files: a
// line-oriented format of lowercase keywords, (x,z) point literals and
// bare numbers in meters.
var PlanLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwPlan", Pattern: `\bplan\b`},
	{Name: "KwBoundary", Pattern: `\bboundary\b`},
	{Name: "KwFloor", Pattern: `\bfloor\b`},
	{Name: "KwWall", Pattern: `\bwall\b`},
	{Name: "KwFence", Pattern: `\bfence\b`},
	{Name: "KwDoor", Pattern: `\bdoor\b`},
	{Name: "KwWindow", Pattern: `\bwindow\b`},
	{Name: "KwPlace", Pattern: `\bplace\b`},
	{Name: "KwAt", Pattern: `\bat\b`},
	{Name: "KwSize", Pattern: `\bsize\b`},
	{Name: "KwHeight", Pattern: `\bheight\b`},
	{Name: "KwThickness", Pattern: `\bthickness\b`},
	{Name: "KwWidth", Pattern: `\bwidth\b`},
	{Name: "KwSill", Pattern: `\bsill\b`},
	{Name: "KwRotate", Pattern: `\brotate\b`},
	{Name: "KwSetback", Pattern: `\bsetback\b`},

	// The separator in "size 4 x 4" (must precede Ident)
	{Name: "KwX", Pattern: `\bx\b`},

	// Punctuation
	{Name: "Arrow", Pattern: `->`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},

	// Identifiers (wall/opening/placement names; after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
