package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders b as "NN|HH,HH,...,HH": two decimal digits for size,
// then one two-hex-digit byte per cell in row-major order. This is the
// wire format the CLI's single-step solve endpoint parses and re-emits.
func Serialize(b *Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%02d|", b.Size)
	for i, cell := range b.Cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%02X", uint8(cell))
	}

	return sb.String()
}

// Parse decodes a string produced by Serialize. It rejects a size outside
// [MinSize, MaxSize], a malformed header, and a cell count that does not
// equal size*size.
func Parse(s string) (*Board, error) {
	head, body, ok := strings.Cut(s, "|")
	if !ok || len(head) != 2 {
		return nil, ErrMalformedBoard
	}
	size, err := strconv.Atoi(head)
	if err != nil {
		return nil, ErrMalformedBoard
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	var parts []string
	if body == "" {
		parts = nil
	} else {
		parts = strings.Split(body, ",")
	}
	if len(parts) != size*size {
		return nil, ErrCellCountMismatch
	}

	b, err := New(size)
	if err != nil {
		return nil, err
	}
	for i, p := range parts {
		if len(p) != 2 {
			return nil, ErrMalformedBoard
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return nil, ErrMalformedBoard
		}
		b.Cells[i] = Cell(v)
	}

	return b, nil
}
