package system

import (
	"testing"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/internal/utils"
)

type recorder struct {
	kills []event.KillData
	fires []event.FireData
}

func (r *recorder) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.KillData:
		r.kills = append(r.kills, d)
	case event.FireData:
		r.fires = append(r.fires, d)
	}
}

func newCombatWorld(t *testing.T) (*entity.ECS, *CombatSystem, *PlayerSystem, *recorder, *entity.Record) {
	t.Helper()
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	players := NewPlayerSystem(ecs)
	d.Subscribe(event.EnemyKilled, rec)
	d.Subscribe(event.GunFired, rec)
	d.Subscribe(event.EnemyKilled, players)

	player := spawnPlayer(ecs, 0, 0, 250, 0.25)
	return ecs, NewCombatSystem(ecs, d, discardLogger(), 0.125), players, rec, player
}

func TestCombatSystemShootsNearestInRange(t *testing.T) {
	ecs, combat, players, rec, player := newCombatWorld(t)
	far := spawnEnemy(ecs, 300, 0)
	near := spawnEnemy(ecs, 0, 100)
	armed := spawnEnemy(ecs, 50, 0)
	armed.Gun = &component.Gun{Timer: utils.NewTimer(100, utils.Repeating), Range: 0}
	mid := spawnEnemy(ecs, -200, 0)

	combat.Update(0.125)
	if len(rec.fires) != 0 {
		t.Fatalf("fired before cooldown elapsed")
	}

	combat.Update(0.125)
	if _, alive := ecs.Get(near.ID); alive {
		t.Fatalf("nearest enemy survived")
	}
	if len(rec.kills) != 1 || rec.kills[0].Target != near.ID || rec.kills[0].Shooter != player.ID {
		t.Fatalf("kills %+v", rec.kills)
	}
	if ecs.Count(entity.WithTrace) != 1 {
		t.Errorf("expected one trace, got %d", ecs.Count(entity.WithTrace))
	}
	for tr := range ecs.Query(entity.WithTrace) {
		if tr.Trace.Timer.Duration() != 0.125 || tr.Trace.To != near.Pose.Position {
			t.Errorf("trace %+v, timer %v", tr.Trace, tr.Trace.Timer.Duration())
		}
	}

	combat.Update(0.25)
	if _, alive := ecs.Get(mid.ID); alive {
		t.Errorf("second shot missed the next nearest enemy")
	}

	combat.Update(0.25)
	if len(rec.fires) != 3 || rec.fires[2].Hit {
		t.Errorf("third shot should find nothing in range: %+v", rec.fires)
	}
	for _, id := range []types.EntityID{far.ID, armed.ID} {
		if _, alive := ecs.Get(id); !alive {
			t.Errorf("entity %d should survive", id)
		}
	}
	if got := players.Kills(); got != 2 {
		t.Errorf("kills %d, want 2", got)
	}
}

func TestCombatSystemEmptyWorld(t *testing.T) {
	ecs, combat, _, rec, _ := newCombatWorld(t)
	combat.Update(0.25)

	if len(rec.fires) != 1 || rec.fires[0].Hit {
		t.Errorf("fires %+v", rec.fires)
	}
	if ecs.Len() != 1 {
		t.Errorf("world changed: %d records", ecs.Len())
	}
}

func TestCombatSystemRangeIsStrict(t *testing.T) {
	ecs, combat, _, _, _ := newCombatWorld(t)
	edge := spawnEnemy(ecs, 250, 0)

	combat.Update(0.25)
	if _, alive := ecs.Get(edge.ID); !alive {
		t.Errorf("enemy exactly at range was shot")
	}
}
