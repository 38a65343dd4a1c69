package input

// EventKind distinguishes raw input events.
type EventKind int

const (
	// EventPress reports a button held during one device poll.
	EventPress EventKind = iota
	EventConnected
	EventDisconnected
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Event is one raw notification from a device layer. Controller indices are assigned
// by the device layer; the debouncer never renumbers them.
type Event struct {
	Kind       EventKind
	Controller int
	Button     Button
	// Clicked marks the first poll on which the button went down.
	Clicked bool
}

// Press builds a press event.
func Press(controller int, button Button, clicked bool) Event {
	return Event{Kind: EventPress, Controller: controller, Button: button, Clicked: clicked}
}

// Connected builds a connect notification.
func Connected(controller int) Event {
	return Event{Kind: EventConnected, Controller: controller}
}

// Disconnected builds a disconnect notification.
func Disconnected(controller int) Event {
	return Event{Kind: EventDisconnected, Controller: controller}
}

// Sink accepts raw events. Manager is the sink used in the game.
type Sink interface {
	Record(ev Event)
}

// Poller is a device layer that is sampled from the tick goroutine.
type Poller interface {
	Poll(sink Sink)
}
