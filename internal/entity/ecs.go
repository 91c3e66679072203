// internal/entity/ecs.go
package entity

import (
	"iter"
	"slices"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/pkg/steering"
	"go-swarm-shooter/pkg/targeting"
)

// Record — сущность и её необязательные компоненты. nil означает, что
// способности нет.
type Record struct {
	ID          types.EntityID
	Pose        *steering.Pose
	Sprite      *component.Sprite
	Animation   *component.Animation
	Enemy       *component.Enemy
	Player      *component.Player
	PlayerState *component.PlayerStateComponent
	Gun         *component.Gun
	Trace       *component.Trace
}

// ECS хранит записи в порядке создания. Все запросы обходят их в этом
// порядке, поэтому результат систем детерминирован.
type ECS struct {
	GameTime float64
	NextID   types.EntityID
	records  []*Record
	index    map[types.EntityID]int
}

func NewECS() *ECS {
	return &ECS{
		NextID: 1,
		index:  make(map[types.EntityID]int),
	}
}

// NewEntity создаёт пустую запись в конце порядка обхода.
func (ecs *ECS) NewEntity() *Record {
	id := ecs.NextID
	ecs.NextID++
	rec := &Record{ID: id}
	ecs.index[id] = len(ecs.records)
	ecs.records = append(ecs.records, rec)
	return rec
}

// Get возвращает живую запись по ID.
func (ecs *ECS) Get(id types.EntityID) (*Record, bool) {
	i, ok := ecs.index[id]
	if !ok {
		return nil, false
	}
	return ecs.records[i], true
}

// Despawn удаляет запись, сохраняя порядок остальных.
func (ecs *ECS) Despawn(id types.EntityID) bool {
	i, ok := ecs.index[id]
	if !ok {
		return false
	}
	ecs.records = slices.Delete(ecs.records, i, i+1)
	delete(ecs.index, id)
	for j := i; j < len(ecs.records); j++ {
		ecs.index[ecs.records[j].ID] = j
	}
	return true
}

// Len — количество живых записей.
func (ecs *ECS) Len() int {
	return len(ecs.records)
}

// Query обходит записи, прошедшие все фильтры. Записи, удалённые во время
// обхода, пропускаются.
func (ecs *ECS) Query(filters ...Filter) iter.Seq[*Record] {
	match := And(filters...)
	snapshot := slices.Clone(ecs.records)
	return func(yield func(*Record) bool) {
		for _, rec := range snapshot {
			if _, alive := ecs.index[rec.ID]; !alive || !match(rec) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Count — количество записей, прошедших фильтры.
func (ecs *ECS) Count(filters ...Filter) int {
	n := 0
	for range ecs.Query(filters...) {
		n++
	}
	return n
}

// Player возвращает первую запись игрока с позой.
func (ecs *ECS) Player() (*Record, bool) {
	for rec := range ecs.Query(WithPlayer, WithPose) {
		return rec, true
	}
	return nil, false
}

// TargetCandidates — враги без собственного оружия, в порядке создания.
func (ecs *ECS) TargetCandidates() iter.Seq[targeting.Candidate[types.EntityID]] {
	return func(yield func(targeting.Candidate[types.EntityID]) bool) {
		for rec := range ecs.Query(WithEnemy, WithPose, Without(WithGun)) {
			if !yield(targeting.Candidate[types.EntityID]{ID: rec.ID, Pose: *rec.Pose}) {
				return
			}
		}
	}
}
