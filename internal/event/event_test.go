package event

import "testing"

type counter struct{ n int }

func (c *counter) OnEvent(Event) { c.n++ }

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()

	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "second") }))
	fired := &counter{}
	d.Subscribe(GunFired, fired)

	d.Dispatch(Event{Type: EnemyKilled, Data: KillData{Target: 3}})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order %v", order)
	}
	if fired.n != 0 {
		t.Errorf("GunFired listener got %d events", fired.n)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	NewDispatcher().Dispatch(Event{Type: GunFired})
}
