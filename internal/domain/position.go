package domain

// PositionStep is the gap left between appended cards. Sparse positions
// keep an arbitrary insert O(1): only the moved card is written.
const PositionStep = 1024

// PositionForAppend returns the position for a card appended after
// positions (ascending sort order of the list).
func PositionForAppend(positions []float64) float64 {
	if len(positions) == 0 {
		return PositionStep
	}
	return positions[len(positions)-1] + PositionStep
}

// PositionForInsert returns the position for a card inserted at index
// into positions (ascending). Before all existing cards it halves the
// first position; after all it appends; otherwise it takes the midpoint
// of the two neighbors.
//
// Repeated inserts at the same boundary shrink the gap toward zero;
// there is no rebalancing pass.
func PositionForInsert(positions []float64, index int) float64 {
	switch {
	case len(positions) == 0:
		return PositionStep
	case index <= 0:
		return positions[0] / 2
	case index >= len(positions):
		return PositionForAppend(positions)
	default:
		return (positions[index-1] + positions[index]) / 2
	}
}
