package component

import "go-swarm-shooter/pkg/steering"

// Enemy — способность "враг": профиль поворота и движения к игроку.
type Enemy struct {
	Profile steering.Profile
}
