package searcher

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"qubic/game"
)

type Option func(m *Minimax)

// WithDifficulty sets the initial search depth from a tier.
func WithDifficulty(tier Difficulty) Option {
	return func(m *Minimax) {
		m.depth = tier.Depth()
	}
}

// WithRand substitutes the generator used for easy-tier candidate sampling,
// so tests can pin a seed. Medium and hard tiers never draw from it.
func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// Minimax chooses moves for the engine-controlled owner "O" by depth-limited
// adversarial search with alpha-beta pruning. It borrows the caller's board
// for the duration of a call: cells are mutated during exploration and every
// speculative mutation is undone before returning.
type Minimax struct {
	depth int
	rng   *rand.Rand
}

func New(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth: EasyDepth,
		rng:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// SetDifficulty sets the search depth per the tier mapping. The depth
// persists until changed again; an unknown tier falls back to easy.
func (m *Minimax) SetDifficulty(tier Difficulty) {
	m.depth = tier.Depth()
}

// Depth reports the configured search depth in plies.
func (m *Minimax) Depth() int {
	return m.depth
}

// Evaluate scores a position from the engine's perspective: +100 when "O"
// holds a complete line, -100 when "X" does, 0 otherwise. "O" is checked
// first; on an inconsistent board where both hold a line, the "O" result
// wins. That ordering is a kept convention, not a game rule.
func Evaluate(b *game.Board) int {
	if _, won := b.Winner(game.O); won {
		return WinScore
	}
	if _, won := b.Winner(game.X); won {
		return LossScore
	}
	return 0
}

// minimax recursively scores the position with alpha-beta pruning.
// Recursion stops on a decided position, exhausted depth, or a full board,
// checked in that order. The mover's mark is placed, the child is scored,
// and the cell is restored before the next candidate, so sibling branches
// never observe each other's moves.
func minimax(b *game.Board, depth, alpha, beta int, maximizing bool) int {
	score := Evaluate(b)
	if score == WinScore || score == LossScore || depth == 0 || b.IsFull() {
		return score
	}

	if maximizing {
		best := math.MinInt
		for _, c := range b.EmptyCells() {
			b.Set(c, game.O)
			score := minimax(b, depth-1, alpha, beta, false)
			b.Set(c, game.Empty)

			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, c := range b.EmptyCells() {
		b.Set(c, game.X)
		score := minimax(b, depth-1, alpha, beta, true)
		b.Set(c, game.Empty)

		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// FindBestMove returns the strongest move for "O" at the configured depth,
// or false when the board has no empty cell. At easy depth the candidate
// list is first shuffled and capped, the engine's only nondeterminism.
// Ties keep the first candidate seen; later equal scores never replace it.
func (m *Minimax) FindBestMove(b *game.Board) (game.Coord, bool) {
	candidates := b.EmptyCells()
	if len(candidates) == 0 {
		return game.Coord{}, false
	}

	if m.depth <= EasyDepth {
		m.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		if len(candidates) > easyCandidateCap {
			candidates = candidates[:easyCandidateCap]
		}
	}

	var best game.Coord
	bestScore := math.MinInt
	for _, c := range candidates {
		b.Set(c, game.O)
		score := minimax(b, m.depth-1, math.MinInt, math.MaxInt, false)
		b.Set(c, game.Empty)

		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, true
}

// ApplyBestMove runs FindBestMove and, when a move exists, permanently
// marks that cell "O" on the given board.
func (m *Minimax) ApplyBestMove(b *game.Board) (game.Coord, bool) {
	move, ok := m.FindBestMove(b)
	if ok {
		b.Set(move, game.O)
	}
	return move, ok
}
