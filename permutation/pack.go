package permutation

// packRows nibble-packs a flattened row-value stream, two values per
// byte (high nibble first). A stream of odd length gets its trailing
// nibble zero-padded.
func packRows(rows []int8) []byte {
	out := make([]byte, (len(rows)+1)/2)
	for i := 0; i < len(rows); i += 2 {
		hi := byte(rows[i]) & 0x0F
		var lo byte
		if i+1 < len(rows) {
			lo = byte(rows[i+1]) & 0x0F
		}
		out[i/2] = hi<<4 | lo
	}

	return out
}

// unpackRows decodes n nibble-packed row values from data.
func unpackRows(data []byte, n int) []int8 {
	out := make([]int8, n)
	for i := 0; i < n; i++ {
		b := data[i/2]
		if i%2 == 0 {
			out[i] = int8(b >> 4)
		} else {
			out[i] = int8(b & 0x0F)
		}
	}

	return out
}

// nibblesFromBytes expands raw bytes into one nibble per slot, high
// nibble of each byte first. readPermutationAt uses it to realign a
// packed read that starts mid-byte: materializing the whole window as
// nibbles and slicing it is simpler than hand-rolling per-bit shifts.
func nibblesFromBytes(data []byte) []int8 {
	out := make([]int8, len(data)*2)
	for i, b := range data {
		out[2*i] = int8(b >> 4)
		out[2*i+1] = int8(b & 0x0F)
	}

	return out
}
