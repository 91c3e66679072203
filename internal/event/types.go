// internal/event/types.go
package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/types"
)

const (
	EnemyKilled EventType = "EnemyKilled" // Враг сбит выстрелом
	GunFired    EventType = "GunFired"    // Таймер оружия сработал (с целью или без)
)

// KillData — данные события EnemyKilled.
type KillData struct {
	Shooter types.EntityID
	Target  types.EntityID
	From    mgl64.Vec3
	To      mgl64.Vec3
}

// FireData — данные события GunFired.
type FireData struct {
	Shooter types.EntityID
	Hit     bool
}
