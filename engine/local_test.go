package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"qubic/game"
	"qubic/searcher"
)

// fullNoWinBoard returns a completely filled board holding no winning line
// for either owner: odd layers are the cell-wise complement of even layers,
// and the base layer pattern keeps every line mixed.
func fullNoWinBoard(t *testing.T) game.Board {
	t.Helper()

	base := [game.Size]string{
		"XXOX",
		"XOOO",
		"OOOX",
		"OOXX",
	}
	var b game.Board
	for z := 0; z < game.Size; z++ {
		for y := 0; y < game.Size; y++ {
			for x := 0; x < game.Size; x++ {
				cell := game.X
				if base[y][x] == 'O' {
					cell = game.O
				}
				if z%2 == 1 {
					if cell == game.X {
						cell = game.O
					} else {
						cell = game.X
					}
				}
				b.Set(game.Coord{Layer: z, Row: y, Col: x}, cell)
			}
		}
	}

	_, xWon := b.Winner(game.X)
	_, oWon := b.Winner(game.O)
	require.False(t, xWon, "Pattern board must hold no X line")
	require.False(t, oWon, "Pattern board must hold no O line")
	return b
}

func TestNew(t *testing.T) {
	t.Run("starts awaiting the player", func(t *testing.T) {
		e := New(searcher.New())

		require.Equal(t, AwaitingPlayerMove, e.Status)
		require.NotEqual(t, uuid.Nil, e.ID, "Each game gets an identifier")
		require.Equal(t, game.Board{}, e.Board)
	})

	t.Run("panics without a searcher", func(t *testing.T) {
		require.Panics(t, func() {
			New(nil)
		})
	})
}

func TestTurnAlternation(t *testing.T) {
	e := New(searcher.New(searcher.WithRand(rand.New(rand.NewSource(7)))))

	status, err := e.PlayerMove(game.Coord{Layer: 0, Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, AwaitingEngineMove, status)
	require.Equal(t, game.X, e.Board.At(game.Coord{Layer: 0, Row: 0, Col: 0}))

	move, status, err := e.EngineMove()
	require.NoError(t, err)
	require.Equal(t, AwaitingPlayerMove, status)
	require.Equal(t, game.O, e.Board.At(move))
}

func TestPlayerMoveRejections(t *testing.T) {
	t.Run("occupied cell", func(t *testing.T) {
		e := New(searcher.New())
		c := game.Coord{Layer: 1, Row: 2, Col: 3}

		_, err := e.PlayerMove(c)
		require.NoError(t, err)

		_, err = e.PlayerMove(c)
		require.Error(t, err, "Placing on an occupied cell is a caller mistake")
		require.Equal(t, game.X, e.Board.At(c), "Board should be untouched by the rejection")
	})

	t.Run("out of turn", func(t *testing.T) {
		e := New(searcher.New())
		_, err := e.PlayerMove(game.Coord{Layer: 0, Row: 0, Col: 0})
		require.NoError(t, err)

		_, err = e.PlayerMove(game.Coord{Layer: 0, Row: 0, Col: 1})
		require.Error(t, err, "It is the engine's turn")
	})
}

func TestEngineMoveRejections(t *testing.T) {
	e := New(searcher.New())

	_, _, err := e.EngineMove()
	require.Error(t, err, "Engine may not move before the player")
}

func TestPlayerWin(t *testing.T) {
	e := New(searcher.New())
	for x := 0; x < 3; x++ {
		e.Board.Set(game.Coord{Layer: 0, Row: 0, Col: x}, game.X)
	}
	e.Board.Set(game.Coord{Layer: 1, Row: 1, Col: 1}, game.O)
	e.Board.Set(game.Coord{Layer: 2, Row: 2, Col: 2}, game.O)

	status, err := e.PlayerMove(game.Coord{Layer: 0, Row: 0, Col: 3})

	require.NoError(t, err)
	require.Equal(t, PlayerWon, status)
	require.True(t, status.Terminal())
	require.Equal(t, game.X, e.Verdict.Winner)
	require.Equal(t,
		game.Line{
			{Layer: 0, Row: 0, Col: 0},
			{Layer: 0, Row: 0, Col: 1},
			{Layer: 0, Row: 0, Col: 2},
			{Layer: 0, Row: 0, Col: 3},
		},
		e.Verdict.Line, "Verdict should carry the completed line")

	t.Run("terminal game accepts no further moves", func(t *testing.T) {
		_, err := e.PlayerMove(game.Coord{Layer: 3, Row: 3, Col: 3})
		require.Error(t, err)

		_, _, err = e.EngineMove()
		require.Error(t, err)
	})
}

func TestEngineWin(t *testing.T) {
	// "O" completes the (2,1,*) row at (2,1,3); the only other empty cell,
	// (0,0,0), loses the search, so any tier finds the win.
	e := New(searcher.New(searcher.WithDifficulty(searcher.Medium)))
	e.Board = fullNoWinBoard(t)
	e.Board.Set(game.Coord{Layer: 2, Row: 1, Col: 0}, game.O)
	e.Board.Set(game.Coord{Layer: 2, Row: 1, Col: 3}, game.Empty)
	e.Board.Set(game.Coord{Layer: 0, Row: 0, Col: 0}, game.Empty)
	e.Status = AwaitingEngineMove

	move, status, err := e.EngineMove()

	require.NoError(t, err)
	require.Equal(t, game.Coord{Layer: 2, Row: 1, Col: 3}, move)
	require.Equal(t, EngineWon, status)
	require.Equal(t, game.O, e.Verdict.Winner)
	require.Equal(t,
		game.Line{
			{Layer: 2, Row: 1, Col: 0},
			{Layer: 2, Row: 1, Col: 1},
			{Layer: 2, Row: 1, Col: 2},
			{Layer: 2, Row: 1, Col: 3},
		},
		e.Verdict.Line)
}

func TestDraw(t *testing.T) {
	// Full pattern board minus one cell whose pattern color is X: the
	// player's final mark recreates the no-win pattern exactly.
	e := New(searcher.New())
	e.Board = fullNoWinBoard(t)
	e.Board.Set(game.Coord{Layer: 0, Row: 0, Col: 0}, game.Empty)

	status, err := e.PlayerMove(game.Coord{Layer: 0, Row: 0, Col: 0})

	require.NoError(t, err)
	require.Equal(t, Draw, status)
	require.True(t, status.Terminal())
	require.Equal(t, game.Empty, e.Verdict.Winner, "A draw has no winner")
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "awaiting player move", AwaitingPlayerMove.String())
	require.Equal(t, "draw", Draw.String())
	require.False(t, AwaitingEngineMove.Terminal())
}
