// Package world holds the pond map: its size, its water areas, and the
// geometry queries the fishing loop needs (am I near water, am I standing in
// it, where does my line land).
package world

import "math"

const (
	MapWidth  = 1200
	MapHeight = 900

	// Casting works from up to this many units away from the waterline.
	castMargin = 50

	// How far outside the waterline a player gets placed when pushed out.
	pushGap = 5
)

// Facing is the player's cardinal direction. Casts go straight this way.
type Facing int

const (
	FaceDown Facing = iota
	FaceUp
	FaceLeft
	FaceRight
)

// Vec is a world-space point.
type Vec struct {
	X, Y float64
}

type areaKind int

const (
	areaEllipse areaKind = iota
	areaRect
)

// WaterArea is one body of water. Ellipses are centered at X,Y with full
// Width/Height extents; rects hang from their top-left corner.
type WaterArea struct {
	kind   areaKind
	X, Y   float64
	Width  float64
	Height float64
}

// waterAreas is the fixed map layout: the big central pond, the small
// southwest pond, and the river along the east edge.
var waterAreas = []WaterArea{
	{kind: areaEllipse, X: 600, Y: 200, Width: 850, Height: 300},
	{kind: areaEllipse, X: 150, Y: 700, Width: 220, Height: 170},
	{kind: areaRect, X: 1060, Y: 150, Width: 80, Height: 500},
}

// Areas returns the map's water bodies for rendering.
func Areas() []WaterArea { return waterAreas }

// Kind helpers for renderers.
func (a WaterArea) IsEllipse() bool { return a.kind == areaEllipse }
func (a WaterArea) IsRect() bool    { return a.kind == areaRect }

func (a WaterArea) contains(p Vec, margin float64) bool {
	switch a.kind {
	case areaEllipse:
		dx := (p.X - a.X) / (a.Width/2 + margin)
		dy := (p.Y - a.Y) / (a.Height/2 + margin)
		return dx*dx+dy*dy <= 1
	case areaRect:
		return p.X >= a.X-margin && p.X <= a.X+a.Width+margin &&
			p.Y >= a.Y-margin && p.Y <= a.Y+a.Height+margin
	}
	return false
}

// NearWater reports whether a cast can start from p.
func NearWater(p Vec) bool {
	for _, a := range waterAreas {
		if a.contains(p, castMargin) {
			return true
		}
	}
	return false
}

// InsideWater reports whether p is in a water body. Players cannot stand in
// water; movement resolves this with PushOut.
func InsideWater(p Vec) bool {
	for _, a := range waterAreas {
		if a.contains(p, 0) {
			return true
		}
	}
	return false
}

// PushOut moves p to just outside the first water body containing it.
// Ellipses push radially; rects push through the nearest edge.
func PushOut(p Vec) Vec {
	for _, a := range waterAreas {
		if !a.contains(p, 0) {
			continue
		}
		switch a.kind {
		case areaEllipse:
			angle := math.Atan2(p.Y-a.Y, p.X-a.X)
			return Vec{
				X: a.X + math.Cos(angle)*(a.Width/2+pushGap),
				Y: a.Y + math.Sin(angle)*(a.Height/2+pushGap),
			}
		case areaRect:
			left := p.X - a.X
			right := a.X + a.Width - p.X
			top := p.Y - a.Y
			bottom := a.Y + a.Height - p.Y

			minDist := left
			out := Vec{X: a.X - pushGap, Y: p.Y}
			if right < minDist {
				minDist = right
				out = Vec{X: a.X + a.Width + pushGap, Y: p.Y}
			}
			if top < minDist {
				minDist = top
				out = Vec{X: p.X, Y: a.Y - pushGap}
			}
			if bottom < minDist {
				out = Vec{X: p.X, Y: a.Y + a.Height + pushGap}
			}
			return out
		}
	}
	return p
}

// CastPoint is where a cast of the given length from p lands, straight along
// the facing direction.
func CastPoint(p Vec, f Facing, distance float64) Vec {
	switch f {
	case FaceUp:
		return Vec{X: p.X, Y: p.Y - distance}
	case FaceDown:
		return Vec{X: p.X, Y: p.Y + distance}
	case FaceLeft:
		return Vec{X: p.X - distance, Y: p.Y}
	case FaceRight:
		return Vec{X: p.X + distance, Y: p.Y}
	}
	return p
}

// ClampToMap keeps p inside the map bounds.
func ClampToMap(p Vec) Vec {
	p.X = math.Min(math.Max(p.X, 0), MapWidth)
	p.Y = math.Min(math.Max(p.Y, 0), MapHeight)
	return p
}
