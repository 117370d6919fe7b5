package scene

// Event represents a scene event
type Event struct {
	Type    EventType
	Payload interface{}
}

type EventType uint16

const (
	// EvtMeshRebuilt fires after a parameter change produced a new mesh.
	// Payload: *geom.Mesh.
	EvtMeshRebuilt EventType = iota
	// EvtParamsRejected fires when a parameter change failed validation and
	// the previous mesh was kept. Payload: error.
	EvtParamsRejected
)

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}
