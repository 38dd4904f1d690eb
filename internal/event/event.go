package event

// EventType: тип события
type EventType string

// Event carries a payload from the simulation to whoever listens. Payloads
// are the *Data structs declared in types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// goroutine that calls Dispatch. The simulation is single threaded so no
// locking is done.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
