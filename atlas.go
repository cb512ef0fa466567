package shimmer

import (
	"fmt"
	"image"
)

// Atlas describes a uniform sprite grid inside a texture: fixed-size cells
// laid out row-major, each holding one sprite inset by Padding pixels from
// the cell's top-left corner. Sprites are addressed by a flat index that
// wraps at the column count.
type Atlas struct {
	TextureSize Vec2
	CellSize    Vec2
	SpriteSize  Vec2
	Padding     float64
}

// DefaultAtlas returns the stock geometry: a 1024x1024 texture of 40x40
// cells holding 32x32 sprites with 4px padding, 625 sprites total.
func DefaultAtlas() Atlas {
	return Atlas{
		TextureSize: Vec2{1024, 1024},
		CellSize:    Vec2{40, 40},
		SpriteSize:  Vec2{32, 32},
		Padding:     4,
	}
}

// Columns returns how many cells fit across the texture, never less than 1.
func (a Atlas) Columns() int {
	cols := int(a.TextureSize.X / epsDenom(a.CellSize.X))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// UVOffset returns the normalized texture coordinate of the sprite's
// top-left corner for the given flat sprite index.
func (a Atlas) UVOffset(index uint32) Vec2 {
	cols := a.Columns()
	col := int(index) % cols
	row := int(index) / cols
	return Vec2{
		X: (float64(col)*a.CellSize.X + a.Padding) / epsDenom(a.TextureSize.X),
		Y: (float64(row)*a.CellSize.Y + a.Padding) / epsDenom(a.TextureSize.Y),
	}
}

// UVScale returns the sprite's size in normalized texture coordinates.
func (a Atlas) UVScale() Vec2 {
	return Vec2{
		X: a.SpriteSize.X / epsDenom(a.TextureSize.X),
		Y: a.SpriteSize.Y / epsDenom(a.TextureSize.Y),
	}
}

// CellRect returns the sprite's pixel rectangle inside the sheet for the
// given flat sprite index, for use with SubImage.
func (a Atlas) CellRect(index uint32) image.Rectangle {
	cols := a.Columns()
	col := int(index) % cols
	row := int(index) / cols
	x := int(float64(col)*a.CellSize.X + a.Padding)
	y := int(float64(row)*a.CellSize.Y + a.Padding)
	return image.Rect(x, y, x+int(a.SpriteSize.X), y+int(a.SpriteSize.Y))
}

// Validate reports whether the geometry is drawable: positive sizes,
// non-negative padding, and cells large enough to hold a padded sprite.
func (a Atlas) Validate() error {
	if a.TextureSize.X <= 0 || a.TextureSize.Y <= 0 {
		return fmt.Errorf("shimmer: atlas texture size %gx%g must be positive", a.TextureSize.X, a.TextureSize.Y)
	}
	if a.CellSize.X <= 0 || a.CellSize.Y <= 0 {
		return fmt.Errorf("shimmer: atlas cell size %gx%g must be positive", a.CellSize.X, a.CellSize.Y)
	}
	if a.SpriteSize.X <= 0 || a.SpriteSize.Y <= 0 {
		return fmt.Errorf("shimmer: atlas sprite size %gx%g must be positive", a.SpriteSize.X, a.SpriteSize.Y)
	}
	if a.Padding < 0 {
		return fmt.Errorf("shimmer: atlas padding %g must not be negative", a.Padding)
	}
	if a.SpriteSize.X+a.Padding > a.CellSize.X || a.SpriteSize.Y+a.Padding > a.CellSize.Y {
		return fmt.Errorf("shimmer: atlas cell %gx%g cannot hold sprite %gx%g with %gpx padding",
			a.CellSize.X, a.CellSize.Y, a.SpriteSize.X, a.SpriteSize.Y, a.Padding)
	}
	return nil
}
