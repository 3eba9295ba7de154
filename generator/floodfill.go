package generator

import (
	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/internal/neighbors"
	"github.com/arkazolin/queens/rng"
)

// floodFill repeatedly copies a colored neighbor's color into each
// still-uncolored cell until no color-0 cell remains, per Config's
// skip/direction-bias probabilities. It returns errFloodFillStalled if
// a full pass colors nothing while uncolored cells remain; the caller
// is expected to discard the board and retry with a fresh seed.
func floodFill(b *board.Board, cfg Config, src *rng.Source) error {
	for {
		if countZero(b) == 0 {
			return nil
		}

		changed := 0
		for r := 0; r < b.Size; r++ {
			for c := 0; c < b.Size; c++ {
				cell := b.At(r, c)
				if cell.Color() != 0 {
					continue
				}
				if src.Chance(cfg.CellSkipChance) {
					continue
				}

				var offsets []neighbors.Offset
				switch {
				case src.Chance(cfg.OnlyHorizontalNeighborChance):
					offsets = neighbors.Horizontal[:]
				case src.Chance(cfg.OnlyVerticalNeighborChance):
					offsets = neighbors.Vertical[:]
				default:
					offsets = neighbors.Orthogonal[:]
				}

				if color, ok := firstNeighborColor(b, r, c, offsets, cfg.NeighborSkipChance, src); ok {
					b.Set(r, c, cell.WithColor(color))
					changed++
				}
			}
		}

		if changed == 0 {
			return errFloodFillStalled
		}
	}
}

// firstNeighborColor scans offsets in order, skipping each candidate
// with probability skipChance, and returns the color of the first
// eligible neighbor carrying a non-zero color.
func firstNeighborColor(b *board.Board, r, c int, offsets []neighbors.Offset, skipChance float64, src *rng.Source) (int, bool) {
	for _, o := range offsets {
		if src.Chance(skipChance) {
			continue
		}
		nr, nc := r+o.DR, c+o.DC
		if !neighbors.InBounds(nr, nc, b.Size) {
			continue
		}
		if color := b.At(nr, nc).Color(); color != 0 {
			return color, true
		}
	}

	return 0, false
}

func countZero(b *board.Board) int {
	n := 0
	for _, cell := range b.Cells {
		if cell.Color() == 0 {
			n++
		}
	}

	return n
}
