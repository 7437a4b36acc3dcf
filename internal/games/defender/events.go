package defender

// EventKind identifies a presentation event.
type EventKind int

const (
	EventFired EventKind = iota
	EventKill
	EventReversal
	EventWaveCleared
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventKill:
		return "kill"
	case EventReversal:
		return "reversal"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something a frontend may want to animate or sound. Fields that
// do not apply to a kind are zero.
type Event struct {
	Kind    EventKind
	X, Y    float64 // kill position
	Points  uint32  // kill value
	Variant Variant // kill variant
	Count   int     // bullets fired
	Wave    int     // wave number after the event
}
