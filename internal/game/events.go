package game

type EventType int

const (
	EventFoodEaten EventType = iota
	EventPowerUpCollected
	EventDeath
)

// Event is a discrete game occurrence for the cosmetic layer (audio,
// particles, scoring shell). The core never waits on consumers.
type Event struct {
	Type  EventType
	Cell  Cell
	Kind  PowerUpKind // EventPowerUpCollected only
	Score int         // EventDeath: final score
	Mode  GameMode    // EventDeath: session mode
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
