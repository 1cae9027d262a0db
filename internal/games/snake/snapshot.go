package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase names the state machine position derived from the stopped and
// game-over flags.
type Phase string

const (
	PhaseNotStarted Phase = "stopped"
	PhaseRunning    Phase = "running"
	PhaseGameOver   Phase = "game_over"
)

// Snapshot is an immutable view of the game for renderers and tests.
// It shares no memory with the State it was taken from.
type Snapshot struct {
	Head              core.Rect
	Tail              []core.Rect // oldest first
	Food              core.Rect
	FoodVisible       bool
	Stopped           bool
	GameOver          bool
	Score             int
	Speed             int
	DesiredTailLength int
	Direction         Vector
}

// Phase returns the state machine position.
func (s Snapshot) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.Stopped:
		return PhaseNotStarted
	default:
		return PhaseRunning
	}
}

// Snapshot returns a copy of the current game data.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Head:              s.head,
		Tail:              slices.Clone(s.tail),
		Food:              s.food,
		FoodVisible:       !s.eaten,
		Stopped:           s.stopped,
		GameOver:          s.gameOver,
		Score:             s.score,
		Speed:             s.speed,
		DesiredTailLength: s.desiredLen,
		Direction:         s.dir,
	}
}
