package engine

// Input is the snapshot of held actions sampled once before each tick
type Input struct {
	Left  bool
	Right bool
	Boost bool
}
