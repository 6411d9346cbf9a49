package snake

// Wrap folds a coordinate that left the world back onto the opposite side.
// A coordinate equal to limit is still on the board.
func Wrap(coordinate, limit int) int {
	if coordinate < 0 {
		coordinate += limit
	}
	if coordinate > limit {
		coordinate -= limit
	}
	return coordinate
}

// IsOutOfBounds reports whether a coordinate has left the world.
func IsOutOfBounds(coordinate, limit int) bool {
	return coordinate < 0 || coordinate > limit
}
