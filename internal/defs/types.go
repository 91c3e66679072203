// internal/defs/types.go
package defs

// AnimationDefinition — диапазон кадров в листе спрайтов.
type AnimationDefinition struct {
	MinSprite int     `json:"min_sprite"`
	MaxSprite int     `json:"max_sprite"`
	FrameTime float64 `json:"frame_time"` // секунды на кадр
}

// GunDefinition — параметры автоматического оружия.
type GunDefinition struct {
	Range    float64 `json:"range"`
	Cooldown float64 `json:"cooldown"` // секунды между выстрелами
}

// ActorDefinition holds the static data for one kind of actor.
type ActorDefinition struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	MovementSpeed    float64             `json:"movement_speed"`     // units per second
	RotationSpeedDeg float64             `json:"rotation_speed_deg"` // degrees per second
	Animation        AnimationDefinition `json:"animation"`
	Gun              *GunDefinition      `json:"gun,omitempty"`
}
