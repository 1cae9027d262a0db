package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction is a steering request.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a steering action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	}
	return 0, false
}

// Vector is the movement delta applied to the head every tick.
type Vector struct {
	DX, DY int
}

// State owns all mutable game data and advances it in response to input
// and elapsed time. It is driven by a single frame loop and is not safe for
// concurrent use.
type State struct {
	rng *rand.Rand

	// Snake
	head       core.Rect
	tail       []core.Rect // oldest first
	desiredLen int
	speed      int
	dir        Vector

	// Food
	food    core.Rect
	eaten   bool
	eatenAt time.Time

	// Flags
	stopped  bool
	gameOver bool
	score    int
}

// NewState creates a game in the not-started state.
// The seed drives food placement.
func NewState(seed int64) *State {
	s := &State{
		rng:     rand.New(rand.NewSource(seed)),
		stopped: true,
	}
	s.Reset()
	return s
}

// Reset puts the snake, food, speed, score and direction back to their
// start-of-round values. The stopped and game-over flags are left alone.
func (s *State) Reset() {
	s.tail = nil
	s.desiredLen = 1
	s.head = startHead()
	s.food = startFood()
	s.speed = InitialSpeed
	s.dir = Vector{DX: InitialSpeed, DY: 0}
	s.eaten = false
	s.eatenAt = time.Time{}
	s.score = 0
}

// Start begins a fresh round. It is a no-op while a round is running.
func (s *State) Start() {
	if !s.stopped {
		return
	}
	s.gameOver = false
	s.stopped = false
	s.Reset()
}

// RequestStop halts the round. There is no resume: Start resets.
func (s *State) RequestStop() {
	s.stopped = true
}

// ApplyDirection steers the snake. Movement is axis-exclusive and a full
// reversal is allowed. The vector magnitude is the speed at the time of the
// request, so a speed-up only shows after the next turn.
func (s *State) ApplyDirection(d Direction) {
	switch d {
	case DirLeft:
		s.dir = Vector{DX: -s.speed, DY: 0}
	case DirRight:
		s.dir = Vector{DX: s.speed, DY: 0}
	case DirUp:
		s.dir = Vector{DX: 0, DY: -s.speed}
	case DirDown:
		s.dir = Vector{DX: 0, DY: s.speed}
	}
}

// ApplyInput dispatches a platform action. Quit and unknown actions are
// ignored; quitting is the platform's job.
func (s *State) ApplyInput(a core.Action) {
	if d, ok := directionFor(a); ok {
		s.ApplyDirection(d)
		return
	}
	switch a {
	case core.ActionStart:
		s.Start()
	case core.ActionStop:
		s.RequestStop()
	}
}

// Tick advances the game by one frame. now must be monotonic; it only
// drives the food cooldown.
func (s *State) Tick(now time.Time) {
	if s.stopped {
		return
	}

	if !s.head.Within(Board()) {
		s.endRound()
		return
	}

	s.checkFood(now)

	if s.touchingTail() {
		s.endRound()
		return
	}

	s.advance()
}

// endRound is the only way into game over, keeping gameOver ⇒ stopped.
func (s *State) endRound() {
	s.gameOver = true
	s.stopped = true
}

// checkFood handles eating and the reappearance of eaten food.
func (s *State) checkFood(now time.Time) {
	if !s.eaten && s.head.Intersects(s.food) {
		s.eaten = true
		s.eatenAt = now
		s.food = s.randomFood()
		s.desiredLen += GrowthPerFood
		s.score++
		if s.score%SpeedUpEvery == 0 {
			s.speed++
		}
	}

	if s.eaten && now.Sub(s.eatenAt) >= FoodCooldown {
		s.eaten = false
		s.eatenAt = time.Time{}
	}
}

// randomFood picks a new food position away from the board edge.
func (s *State) randomFood() core.Rect {
	x := SnakeSize + s.rng.Intn(BoardWidth-2*SnakeSize)
	y := SnakeSize + s.rng.Intn(BoardHeight-2*SnakeSize)
	return core.NewRect(x, y, FoodSize, FoodSize)
}

// touchingTail tests the head against all but the most recent segments.
func (s *State) touchingTail() bool {
	for i := 0; i < len(s.tail)-SelfCollisionGrace; i++ {
		if s.head.Intersects(s.tail[i]) {
			return true
		}
	}
	return false
}

// advance moves the head and records where it was.
func (s *State) advance() {
	s.tail = append(s.tail, s.head)
	s.head = s.head.Move(s.dir.DX, s.dir.DY)
	for len(s.tail) > s.desiredLen+TailBuffer {
		s.tail = s.tail[1:]
	}
}

// Stopped reports whether the simulation is halted.
func (s *State) Stopped() bool { return s.stopped }

// GameOver reports whether the last round ended in a collision.
func (s *State) GameOver() bool { return s.gameOver }

// Score returns the number of meals eaten this round.
func (s *State) Score() int { return s.score }

// Speed returns the current speed.
func (s *State) Speed() int { return s.speed }
