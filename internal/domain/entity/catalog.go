package entity

import "math/rand"

// shapes holds the canonical spawn orientation of each kind, indexed by Kind
var shapes = [KindCount]Shape{
	KindI: mustParse("####"),
	KindO: mustParse("##", "##"),
	KindT: mustParse("###", ".#."),
	KindL: mustParse("###", "#.."),
	KindJ: mustParse("###", "..#"),
	KindS: mustParse(".##", "##."),
	KindZ: mustParse("##.", ".##"),
}

func mustParse(rows ...string) Shape {
	s, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// ShapeOf returns the canonical spawn orientation of a kind
func ShapeOf(k Kind) Shape {
	return shapes[k]
}

// Catalog hands out random tetrominoes and color tokens.
// Every draw is independent and uniform; the only state is the random source,
// so a seeded source reproduces a game.
type Catalog struct {
	rng         *rand.Rand
	paletteSize int
}

// NewCatalog creates a catalog drawing from rng with color tokens 1..paletteSize
func NewCatalog(rng *rand.Rand, paletteSize int) (*Catalog, error) {
	if paletteSize <= 0 {
		return nil, ErrInvalidPalette
	}
	return &Catalog{rng: rng, paletteSize: paletteSize}, nil
}

// RandomKind returns one of the seven kinds
func (c *Catalog) RandomKind() Kind {
	return Kind(c.rng.Intn(KindCount))
}

// RandomShape returns the spawn orientation of a random kind
func (c *Catalog) RandomShape() Shape {
	return shapes[c.RandomKind()]
}

// RandomColor returns a random occupied token
func (c *Catalog) RandomColor() Color {
	return Color(1 + c.rng.Intn(c.paletteSize))
}

// RandomPiece draws a kind and, independently, a color
func (c *Catalog) RandomPiece() PieceDef {
	kind := c.RandomKind()
	return PieceDef{
		Kind:  kind,
		Shape: shapes[kind],
		Color: c.RandomColor(),
	}
}
