package state

// GameState is the coarse mode the playing scene is in.
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateLevelClear
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelClear:
		return "LevelClear"
	default:
		return "Unknown"
	}
}
