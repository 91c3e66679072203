package component

import "go-swarm-shooter/internal/utils"

// Gun — автоматическое оружие. Каждое срабатывание таймера — один выстрел
// по ближайшему врагу в радиусе Range.
type Gun struct {
	Timer *utils.Timer
	Range float64
}
