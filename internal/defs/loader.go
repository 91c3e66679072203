// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-swarm-shooter/internal/config"
)

const (
	PlayerID = "player"
	EnemyID  = "enemy"
)

// ErrUnknownActor — в файле нет обязательного определения (player или enemy).
var ErrUnknownActor = errors.New("unknown actor definition")

// Library — определения акторов по ID.
type Library struct {
	actors map[string]ActorDefinition
}

// Default собирает определения из констант config.
func Default() *Library {
	player := ActorDefinition{
		ID:            PlayerID,
		Name:          "Player",
		MovementSpeed: config.PlayerMovementSpeed,
		Animation: AnimationDefinition{
			MinSprite: config.PlayerMinSprite,
			MaxSprite: config.PlayerMaxSprite,
			FrameTime: config.AnimationFrameTime,
		},
		Gun: &GunDefinition{Range: config.GunRange, Cooldown: config.GunCooldown},
	}
	enemy := ActorDefinition{
		ID:               EnemyID,
		Name:             "Enemy",
		MovementSpeed:    config.EnemyMovementSpeed,
		RotationSpeedDeg: config.EnemyRotationSpeedDeg,
		Animation: AnimationDefinition{
			MinSprite: config.EnemyMinSprite,
			MaxSprite: config.EnemyMaxSprite,
			FrameTime: config.AnimationFrameTime,
		},
	}
	return &Library{actors: map[string]ActorDefinition{PlayerID: player, EnemyID: enemy}}
}

// LoadActorDefinitions reads an actor definitions file.
func LoadActorDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read actor definitions file: %w", err)
	}
	return Parse(file)
}

// Parse разбирает и проверяет JSON-массив определений.
func Parse(data []byte) (*Library, error) {
	var actorDefs []ActorDefinition
	if err := json.Unmarshal(data, &actorDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actor definitions: %w", err)
	}

	lib := &Library{actors: make(map[string]ActorDefinition, len(actorDefs))}
	for _, def := range actorDefs {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("actor %q: %w", def.ID, err)
		}
		lib.actors[def.ID] = def
	}
	for _, id := range []string{PlayerID, EnemyID} {
		if _, ok := lib.actors[id]; !ok {
			return nil, fmt.Errorf("missing %q: %w", id, ErrUnknownActor)
		}
	}
	return lib, nil
}

// Player и Enemy всегда есть: Parse это проверяет.
func (l *Library) Player() ActorDefinition { return l.actors[PlayerID] }
func (l *Library) Enemy() ActorDefinition  { return l.actors[EnemyID] }

func validate(def ActorDefinition) error {
	switch {
	case def.ID == "":
		return errors.New("empty id")
	case def.MovementSpeed < 0:
		return fmt.Errorf("negative movement_speed %v", def.MovementSpeed)
	case def.RotationSpeedDeg < 0:
		return fmt.Errorf("negative rotation_speed_deg %v", def.RotationSpeedDeg)
	case def.Animation.MinSprite < 0 || def.Animation.MaxSprite < def.Animation.MinSprite:
		return fmt.Errorf("bad sprite range %d..%d", def.Animation.MinSprite, def.Animation.MaxSprite)
	case def.Animation.FrameTime <= 0:
		return fmt.Errorf("frame_time must be positive, got %v", def.Animation.FrameTime)
	}
	if def.Gun != nil && (def.Gun.Range < 0 || def.Gun.Cooldown <= 0) {
		return fmt.Errorf("bad gun range=%v cooldown=%v", def.Gun.Range, def.Gun.Cooldown)
	}
	return nil
}
