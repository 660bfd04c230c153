package engine

import "qubic/game"

// Status tracks where a game is in its turn cycle.
type Status int

const (
	AwaitingPlayerMove Status = iota
	AwaitingEngineMove
	PlayerWon
	EngineWon
	Draw
)

// Terminal reports whether the game has ended. Terminal games accept no
// further moves.
func (s Status) Terminal() bool {
	switch s {
	case PlayerWon, EngineWon, Draw:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case AwaitingPlayerMove:
		return "awaiting player move"
	case AwaitingEngineMove:
		return "awaiting engine move"
	case PlayerWon:
		return "player won"
	case EngineWon:
		return "engine won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Verdict reports how a finished game ended. Winner is Empty for a draw;
// for wins, Line holds the completed line.
type Verdict struct {
	Winner game.Cell
	Line   game.Line
}
