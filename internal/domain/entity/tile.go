package entity

// TileSize is the width and height of one tile in world pixels.
const TileSize = 16

// TileType represents the behavioral class of a tile.
type TileType int

const (
	TileAir TileType = iota
	TileGround
	TileBrick
	TileQuestion
	TileUsed
	TilePipe
	TileGoal
	TileVoid
)

// Tile is one cell of the world grid.
type Tile struct {
	Type      TileType
	Solid     bool
	Breakable bool
	// Contents of a question block: one of KindCoin, KindPowerUp.
	Contains Kind
}

// solidVoid is returned for every out-of-bounds lookup so entities can
// never read (or walk) past the world edges.
var solidVoid = Tile{Type: TileVoid, Solid: true}

// MakeTile builds a tile with flags derived from its type.
func MakeTile(t TileType) Tile {
	switch t {
	case TileGround, TilePipe, TileUsed:
		return Tile{Type: t, Solid: true}
	case TileBrick:
		return Tile{Type: t, Solid: true, Breakable: true}
	case TileQuestion:
		return Tile{Type: t, Solid: true, Contains: KindCoin}
	case TileVoid:
		return solidVoid
	default:
		return Tile{Type: t}
	}
}

// Grid is the fixed-size tile map for one level.
// Tiles only ever change through Consume.
type Grid struct {
	Width  int // tiles
	Height int // tiles
	tiles  [][]Tile
}

// NewGrid creates an all-air grid of the given dimensions in tiles.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{Width: width, Height: height, tiles: tiles}
}

// At returns the tile at tile coordinates (tx, ty).
// Out-of-bounds lookups return the solid void sentinel.
func (g *Grid) At(tx, ty int) Tile {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return solidVoid
	}
	return g.tiles[ty][tx]
}

// Set places a tile. Out-of-bounds writes are ignored.
func (g *Grid) Set(tx, ty int, t Tile) {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return
	}
	g.tiles[ty][tx] = t
}

// AtPixel returns the tile containing world pixel (px, py).
func (g *Grid) AtPixel(px, py float64) Tile {
	if px < 0 || py < 0 {
		return solidVoid
	}
	return g.At(int(px)/TileSize, int(py)/TileSize)
}

// SolidAt reports whether the tile containing world pixel (px, py) is solid.
func (g *Grid) SolidAt(px, py float64) bool {
	return g.AtPixel(px, py).Solid
}

// Consume applies the "used" transition for a hit block and returns the
// former tile. A brick becomes air, a question block becomes a used block.
// Any other tile is left untouched.
func (g *Grid) Consume(tx, ty int) (Tile, bool) {
	t := g.At(tx, ty)
	switch t.Type {
	case TileBrick:
		g.Set(tx, ty, MakeTile(TileAir))
		return t, true
	case TileQuestion:
		g.Set(tx, ty, MakeTile(TileUsed))
		return t, true
	}
	return t, false
}

// PixelWidth returns the world width in pixels.
func (g *Grid) PixelWidth() float64 {
	return float64(g.Width * TileSize)
}

// PixelHeight returns the world height in pixels.
func (g *Grid) PixelHeight() float64 {
	return float64(g.Height * TileSize)
}
