package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board and piece geometry, in board pixels.
const (
	BoardWidth  = 640
	BoardHeight = 480
	SnakeSize   = 20
	FoodSize    = 10
)

// Start-of-round values.
const (
	InitialSpeed = 2
	StartHeadX   = 150
	StartHeadY   = 150
	StartFoodX   = 250
	StartFoodY   = 150
)

// Progression rules.
const (
	// GrowthPerFood is added to the desired tail length on every meal.
	GrowthPerFood = 5
	// SpeedUpEvery is the score interval at which speed increases by one.
	SpeedUpEvery = 10
	// TailBuffer is how many segments beyond the desired length are kept for drawing.
	TailBuffer = 5
	// SelfCollisionGrace is the number of most recent tail segments skipped
	// by the self-collision test; they always overlap the head.
	SelfCollisionGrace = 20
	// FoodCooldown is how long eaten food stays hidden before reappearing.
	FoodCooldown = 500 * time.Millisecond
)

// Board returns the rectangle bounding legal head positions.
func Board() core.Rect {
	return core.NewRect(0, 0, BoardWidth, BoardHeight)
}

func startHead() core.Rect {
	return core.NewRect(StartHeadX, StartHeadY, SnakeSize, SnakeSize)
}

func startFood() core.Rect {
	return core.NewRect(StartFoodX, StartFoodY, FoodSize, FoodSize)
}
