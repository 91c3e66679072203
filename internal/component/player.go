// internal/component/player.go
package component

// Player отмечает сущность, управляемую с клавиатуры.
type Player struct {
	MovementSpeed float64 // единиц в секунду
}

// PlayerStateComponent хранит счётчики игрока.
type PlayerStateComponent struct {
	Kills int // Сколько врагов сбито
}
