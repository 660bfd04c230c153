package searcher

// Difficulty tiers and search depths

// Difficulty names a playing-strength tier.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Search depth in plies per tier.
const (
	EasyDepth   = 2
	MediumDepth = 4
	HardDepth   = 6
)

// At easy depth the candidate list is cut down to at most this many
// randomly chosen cells, which is what makes the easy tier beatable.
const easyCandidateCap = 8

// Terminal scores from the engine's ("O") perspective.
const (
	WinScore  = 100
	LossScore = -WinScore
)

// Depth maps a tier to its search depth. Unknown tiers fall back to easy.
func (d Difficulty) Depth() int {
	switch d {
	case Medium:
		return MediumDepth
	case Hard:
		return HardDepth
	default:
		return EasyDepth
	}
}
