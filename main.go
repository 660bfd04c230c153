package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"qubic/engine"
	"qubic/game"
	"qubic/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	runDifficultyDemo()
}

// runDifficultyDemo plays one game per difficulty tier with a random mover
// as "X", reporting the verdict and the time spent inside search. Search
// runs to completion on the calling goroutine; a host needing bounded
// latency has to cap the depth, not interrupt the search.
func runDifficultyDemo() {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	tiers := []searcher.Difficulty{searcher.Easy, searcher.Medium, searcher.Hard}

	for _, tier := range tiers {
		log.Info().Str("difficulty", string(tier)).Msg("game starting")
		e, searchTime := runGame(tier, rng)
		event := log.Info().Str("difficulty", string(tier)).
			Stringer("outcome", e.Status).
			Dur("search", searchTime)
		if e.Verdict.Winner != game.Empty {
			event = event.Stringer("winner", e.Verdict.Winner)
		}
		event.Msg("game over")
	}
}

// runGame executes a single game between a uniformly random "X" and the
// engine at the given tier, returning the finished engine and the total
// time spent searching.
func runGame(tier searcher.Difficulty, rng *rand.Rand) (*engine.Engine, time.Duration) {
	e := engine.New(searcher.New(searcher.WithDifficulty(tier)))

	var searchTime time.Duration
	for !e.Status.Terminal() {
		empty := e.Board.EmptyCells()
		if _, err := e.PlayerMove(empty[rng.Intn(len(empty))]); err != nil {
			panic(err)
		}
		if e.Status != engine.AwaitingEngineMove {
			break
		}

		start := time.Now()
		if _, _, err := e.EngineMove(); err != nil {
			panic(err)
		}
		searchTime += time.Since(start)
	}
	return e, searchTime
}
