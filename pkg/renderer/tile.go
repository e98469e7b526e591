package renderer

import "image"

// DefaultTileSize is the edge length of a render tile in pixels
const DefaultTileSize = 32

// Tile is a rectangular region of the image rendered as one unit of work
type Tile struct {
	ID     int             // Row-major index in the grid
	X, Y   int             // Grid coordinates (not pixel coordinates)
	Bounds image.Rectangle // Pixel bounds, clipped to the image
}

// NewTileGrid covers a width x height image with tileSize tiles in row-major order.
// Tiles on the right and bottom edges are clipped to the image.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]*Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:     len(tiles),
				X:      tileX,
				Y:      tileY,
				Bounds: image.Rect(x0, y0, x1, y1),
			})
		}
	}

	return tiles
}
