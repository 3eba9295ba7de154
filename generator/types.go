package generator

// Config holds the flood fill's tunable probabilities and the
// generation loop's retry budget, replacing the source project's
// process-global configuration object with an explicit immutable value
// passed into Generate.
type Config struct {
	// CellSkipChance is the probability a still-uncolored cell is left
	// untouched during a given pass.
	CellSkipChance float64
	// OnlyHorizontalNeighborChance is the probability a cell restricts
	// its neighbor scan to left/right only.
	OnlyHorizontalNeighborChance float64
	// OnlyVerticalNeighborChance is the probability (checked only after
	// the horizontal check fails) a cell restricts its scan to
	// up/down only. Otherwise all four neighbors are considered.
	OnlyVerticalNeighborChance float64
	// NeighborSkipChance is the probability any single candidate
	// neighbor is skipped even when otherwise eligible to supply a color.
	NeighborSkipChance float64
	// MaxAttempts bounds how many candidate boards Generate will build
	// and test before giving up with ErrGenerationFailed.
	MaxAttempts int
}

// DefaultConfig returns the flood fill tuning this package ships with.
func DefaultConfig() Config {
	return Config{
		CellSkipChance:               0.15,
		OnlyHorizontalNeighborChance: 0.25,
		OnlyVerticalNeighborChance:   0.25,
		NeighborSkipChance:           0.10,
		MaxAttempts:                  10_000,
	}
}
