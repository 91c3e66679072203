// Package input читает клавиатуру Ebiten.
package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard — направление движения по стрелкам или WASD.
type Keyboard struct{}

func (Keyboard) Direction() mgl64.Vec2 {
	var d mgl64.Vec2
	if pressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		d[0] -= 1
	}
	if pressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		d[0] += 1
	}
	if pressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		d[1] += 1
	}
	if pressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		d[1] -= 1
	}
	return d
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
