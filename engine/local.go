package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"qubic/game"
	"qubic/searcher"
)

// Engine drives a single game between the human owner "X" and the
// searcher-controlled owner "O". It owns the board between moves; the
// searcher borrows it only for the duration of one search call.
type Engine struct {
	ID       uuid.UUID
	Board    game.Board
	Searcher *searcher.Minimax
	Status   Status
	Verdict  Verdict
}

func New(s *searcher.Minimax) *Engine {
	if s == nil {
		panic("engine needs a searcher")
	}
	return &Engine{
		ID:       uuid.New(),
		Searcher: s,
		Status:   AwaitingPlayerMove,
	}
}

// PlayerMove places "X" at c and advances the game.
func (e *Engine) PlayerMove(c game.Coord) (Status, error) {
	if e.Status.Terminal() {
		return e.Status, fmt.Errorf("game %s is over: %s", e.ID, e.Status)
	}
	if e.Status != AwaitingPlayerMove {
		return e.Status, fmt.Errorf("game %s: not the player's turn", e.ID)
	}
	if e.Board.At(c) != game.Empty {
		return e.Status, fmt.Errorf("game %s: cell %v is occupied", e.ID, c)
	}

	e.Board.Set(c, game.X)
	log.Debug().Stringer("game", e.ID).
		Int("layer", c.Layer).Int("row", c.Row).Int("col", c.Col).
		Msg("player moved")

	if line, won := e.Board.Winner(game.X); won {
		e.finish(PlayerWon, Verdict{Winner: game.X, Line: line})
	} else if e.Board.IsFull() {
		e.finish(Draw, Verdict{})
	} else {
		e.Status = AwaitingEngineMove
	}
	return e.Status, nil
}

// EngineMove asks the searcher for "O"'s reply and applies it to the board.
func (e *Engine) EngineMove() (game.Coord, Status, error) {
	if e.Status.Terminal() {
		return game.Coord{}, e.Status, fmt.Errorf("game %s is over: %s", e.ID, e.Status)
	}
	if e.Status != AwaitingEngineMove {
		return game.Coord{}, e.Status, fmt.Errorf("game %s: not the engine's turn", e.ID)
	}

	move, ok := e.Searcher.ApplyBestMove(&e.Board)
	if !ok {
		// Unreachable from legal play: a full board is reported as a draw
		// on the move that filled it.
		e.finish(Draw, Verdict{})
		return game.Coord{}, e.Status, nil
	}
	log.Debug().Stringer("game", e.ID).
		Int("layer", move.Layer).Int("row", move.Row).Int("col", move.Col).
		Msg("engine moved")

	if line, won := e.Board.Winner(game.O); won {
		e.finish(EngineWon, Verdict{Winner: game.O, Line: line})
	} else if e.Board.IsFull() {
		e.finish(Draw, Verdict{})
	} else {
		e.Status = AwaitingPlayerMove
	}
	return move, e.Status, nil
}

func (e *Engine) finish(status Status, verdict Verdict) {
	e.Status = status
	e.Verdict = verdict
	log.Info().Stringer("game", e.ID).Stringer("outcome", status).Msg("game over")
}
