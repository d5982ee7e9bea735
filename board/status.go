package board

// Status is the derived game status for the side to move. It is fully
// recomputed after every mutation, never patched incrementally.
type Status uint8

const (
	// StatusUnknown is when the status has not been derived.
	StatusUnknown Status = iota

	// StatusActive is when the game is in progress and the side to move is
	// not in check.
	StatusActive

	// StatusCheck is when the side to move is in check but has legal moves.
	StatusCheck

	// StatusCheckmate is when the side to move is in check with no legal moves.
	StatusCheckmate

	// StatusStalemate is when the side to move has no legal moves and is not
	// in check.
	StatusStalemate

	// StatusDrawInsufficientMaterial is when neither side retains mating
	// material.
	StatusDrawInsufficientMaterial

	// StatusDrawFiftyMove is when fifty full moves have passed without a pawn
	// move or capture.
	StatusDrawFiftyMove

	// StatusDrawThreefoldRepetition is when the same position has occurred
	// three times.
	StatusDrawThreefoldRepetition
)

func (s Status) IsRunning() bool {
	switch s {
	case StatusActive, StatusCheck:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the game is over and further moves are rejected.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckmate, StatusStalemate,
		StatusDrawInsufficientMaterial, StatusDrawFiftyMove, StatusDrawThreefoldRepetition:
		return true
	default:
		return false
	}
}

func (s Status) IsDraw() bool {
	switch s {
	case StatusStalemate, StatusDrawInsufficientMaterial, StatusDrawFiftyMove, StatusDrawThreefoldRepetition:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	case StatusDrawInsufficientMaterial:
		return "DrawInsufficientMaterial"
	case StatusDrawFiftyMove:
		return "DrawFiftyMove"
	case StatusDrawThreefoldRepetition:
		return "DrawThreefoldRepetition"
	default:
		return "Unknown"
	}
}
