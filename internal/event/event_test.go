package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchOnlyToSubscribers(t *testing.T) {
	d := NewDispatcher()
	killed := &recorder{}
	waves := &recorder{}
	d.Subscribe(EnemyKilled, killed)
	d.Subscribe(WaveEnded, waves)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Reward: 2}})

	if len(killed.got) != 1 {
		t.Fatalf("expected 1 kill event, got %d", len(killed.got))
	}
	if data, ok := killed.got[0].Data.(EnemyKilledData); !ok || data.Reward != 2 {
		t.Errorf("unexpected payload %+v", killed.got[0].Data)
	}
	if len(waves.got) != 0 {
		t.Errorf("wave listener should not receive kill events")
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyLeaked, r)
	d.Unsubscribe(EnemyLeaked, r)
	d.Dispatch(Event{Type: EnemyLeaked})
	if len(r.got) != 0 {
		t.Errorf("expected no events after unsubscribe, got %d", len(r.got))
	}
}
