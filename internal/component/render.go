// component/render.go
package component

import "go-swarm-shooter/internal/utils"

// Sprite — индекс кадра в листе спрайтов.
type Sprite struct {
	Index int
}

// Animation перебирает кадры MinSprite..MaxSprite по таймеру.
type Animation struct {
	Timer     *utils.Timer
	MinSprite int
	MaxSprite int
}
