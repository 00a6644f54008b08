package state

// GameState is the phase of a running game session
type GameState int

const (
	// StateSpawning: no live piece, the next one is about to be placed
	StateSpawning GameState = iota
	// StateFalling: a live piece accepts commands and gravity
	StateFalling
	// StateLocking: the live piece could not descend and is being written to the field
	StateLocking
	// StateClearing: full rows are removed and scored
	StateClearing
	// StateGameOver is terminal; the session ignores all further input
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateSpawning:
		return "Spawning"
	case StateFalling:
		return "Falling"
	case StateLocking:
		return "Locking"
	case StateClearing:
		return "Clearing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transitions are possible
func (s GameState) IsTerminal() bool {
	return s == StateGameOver
}

// MarshalText encodes the state by name
func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
