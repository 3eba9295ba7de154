package board

import "errors"

// Sentinel errors for board construction and codec parsing.
var (
	// ErrInvalidSize indicates a requested board size is outside [MinSize, MaxSize].
	ErrInvalidSize = errors.New("board: size out of range [5, 15]")
	// ErrMalformedBoard indicates the serialized string does not match "NN|HH,HH,...".
	ErrMalformedBoard = errors.New("board: malformed serialized board")
	// ErrCellCountMismatch indicates the serialized cell count does not equal size*size.
	ErrCellCountMismatch = errors.New("board: cell count does not match size*size")
)
