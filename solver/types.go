package solver

// StrategyTag identifies which strategy (if any) mutated the board on a
// given IncrementalSolve call. The zero value is FAILED; FAILED and
// SOLVED are terminal tags, the remaining tags name exactly one of the
// twelve ladder strategies.
type StrategyTag int

const (
	// FAILED means no strategy in the ladder could mutate the board.
	FAILED StrategyTag = iota
	// SOLVED means the board already satisfied the solved predicate on entry.
	SOLVED

	InvalidQueenSanity
	InvalidEliminationSanity
	EliminateQueenSurrounding
	EliminateLeftoverSameColor
	LastFreeRowColumn
	OnlyOneColorRemaining
	RegionConfinedToLine
	SingleColorFillsLine
	PlacementEmptiesLine
	NRegionsInNLines
	PlacementEliminatesColor
	ForcingSequenceRefutation
)

var tagNames = [...]string{
	FAILED:                     "FAILED",
	SOLVED:                     "SOLVED",
	InvalidQueenSanity:         "InvalidQueenSanity",
	InvalidEliminationSanity:   "InvalidEliminationSanity",
	EliminateQueenSurrounding:  "EliminateQueenSurrounding",
	EliminateLeftoverSameColor: "EliminateLeftoverSameColor",
	LastFreeRowColumn:          "LastFreeRowColumn",
	OnlyOneColorRemaining:      "OnlyOneColorRemaining",
	RegionConfinedToLine:       "RegionConfinedToLine",
	SingleColorFillsLine:       "SingleColorFillsLine",
	PlacementEmptiesLine:       "PlacementEmptiesLine",
	NRegionsInNLines:           "NRegionsInNLines",
	PlacementEliminatesColor:   "PlacementEliminatesColor",
	ForcingSequenceRefutation:  "ForcingSequenceRefutation",
}

// String implements fmt.Stringer for log and CLI output.
func (t StrategyTag) String() string {
	if int(t) < 0 || int(t) >= len(tagNames) {
		return "UNKNOWN"
	}
	return tagNames[t]
}
