// Package event defines the simulation event stream.
//
// Side effects that cross component boundaries (score, audio cues, tile
// consumption) are emitted into a Buffer during a simulation step and
// drained afterwards by collaborators. Nothing mutates world state from
// inside a collision resolution pass.
package event

// Kind identifies a simulation event.
type Kind int

const (
	Jump Kind = iota
	Stomp
	Coin
	Break
	BlockBump
	PowerUp
	Fireball
	Kick
	EnemyKilled
	PlayerDamaged
	PlayerDied
	ScoreDelta
	LevelComplete
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Jump:
		return "jump"
	case Stomp:
		return "stomp"
	case Coin:
		return "coin"
	case Break:
		return "break"
	case BlockBump:
		return "blockBump"
	case PowerUp:
		return "powerUp"
	case Fireball:
		return "fireball"
	case Kick:
		return "kick"
	case EnemyKilled:
		return "enemyKilled"
	case PlayerDamaged:
		return "playerDamaged"
	case PlayerDied:
		return "playerDied"
	case ScoreDelta:
		return "scoreDelta"
	case LevelComplete:
		return "levelComplete"
	default:
		return "unknown"
	}
}

// Event is a single emitted occurrence.
// Score is set for ScoreDelta, TX/TY for tile events (BlockBump, Break),
// X/Y for positional events used by spawners and audio panning.
type Event struct {
	Kind  Kind
	Score int
	TX    int
	TY    int
	X, Y  float64
}

// Buffer accumulates events during a step and hands them to collaborators.
// The zero value is ready to use.
type Buffer struct {
	events []Event
}

// Emit appends an event.
func (b *Buffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Since returns the events emitted at or after index i.
// The orchestrator uses this to process only the events of the current
// sub-step without consuming the frame's buffer.
func (b *Buffer) Since(i int) []Event {
	if i < 0 || i > len(b.events) {
		return nil
	}
	return b.events[i:]
}

// Drain returns all buffered events and resets the buffer.
func (b *Buffer) Drain() []Event {
	out := b.events
	b.events = nil
	return out
}

// CountKind returns how many buffered events are of kind k.
func (b *Buffer) CountKind(k Kind) int {
	n := 0
	for _, e := range b.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
