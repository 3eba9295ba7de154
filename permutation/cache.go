package permutation

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const headerSize = 4 // little-endian u32 permutation count

// cachePath builds the "QueensPermutations_<NN><c|n>.bin" path for size
// and mode under dir.
func cachePath(dir string, size int, mode PackMode) string {
	return filepath.Join(dir, fmt.Sprintf("QueensPermutations_%02d%c.bin", size, mode.suffix()))
}

// writeCacheFile creates (or truncates) the cache file for size/mode
// with header count and the encoded row bodies. The file is opened,
// written, and closed before returning on every path, including error
// paths, so no descriptor is ever left dangling.
func writeCacheFile(path string, size, count int, rows []int8, mode PackMode) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(count))
	if _, err := f.Write(hdr[:]); err != nil {
		return err
	}

	var body []byte
	if mode == Packed {
		body = packRows(rows)
	} else {
		body = make([]byte, len(rows))
		for i, v := range rows {
			body[i] = byte(v)
		}
	}
	_, err = f.Write(body)

	return err
}

// readCacheHeader opens path and returns the permutation count recorded
// in its header, without reading the body.
func readCacheHeader(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var hdr [headerSize]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return 0, err
	}

	return int(binary.LittleEndian.Uint32(hdr[:])), nil
}

// readCacheAll reads and decodes every permutation from the cache file
// at path into a flattened []int8, one row value per byte.
func readCacheAll(path string, size int, mode PackMode) ([]int8, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var hdr [headerSize]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return nil, 0, err
	}
	count := int(binary.LittleEndian.Uint32(hdr[:]))

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, err
	}

	elems := count * size
	if mode == Unpacked {
		if len(body) != elems {
			return nil, 0, ErrCacheCorrupt
		}
		rows := make([]int8, elems)
		for i, b := range body {
			rows[i] = int8(b)
		}

		return rows, count, nil
	}

	if len(body) != (elems+1)/2 {
		return nil, 0, ErrCacheCorrupt
	}

	return unpackRows(body, elems), count, nil
}

// readPermutationAt reads exactly one permutation (size row values) at
// index idx from the cache file at path, without materializing the
// whole file.
func readPermutationAt(path string, size int, mode PackMode, idx int) ([]int8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if mode == Unpacked {
		off := int64(headerSize + idx*size)
		buf := make([]byte, size)
		if _, err := f.ReadAt(buf, off); err != nil {
			return nil, err
		}
		out := make([]int8, size)
		for i, b := range buf {
			out[i] = int8(b)
		}

		return out, nil
	}

	// Packed mode: the permutation occupies a window of `size` nibbles
	// starting at the global nibble index idx*size, which may straddle
	// a byte boundary when idx*size is odd.
	nibbleStart := idx * size
	byteStart := int64(headerSize + nibbleStart/2)
	nibbleOffset := nibbleStart % 2
	numBytes := (nibbleOffset + size + 1) / 2

	buf := make([]byte, numBytes)
	if _, err := f.ReadAt(buf, byteStart); err != nil {
		return nil, err
	}

	nibbles := nibblesFromBytes(buf)

	return nibbles[nibbleOffset : nibbleOffset+size], nil
}

// ensureCacheFile makes sure the cache file for size/mode exists under
// dir, enumerating and writing it if needed, and returns the
// permutation count either way. It never loads a pre-existing file's
// body into memory.
func ensureCacheFile(dir string, size int, mode PackMode, rowsFn func() ([]int8, int, error)) (path string, count int, err error) {
	path = cachePath(dir, size, mode)
	if _, statErr := os.Stat(path); statErr == nil {
		count, err = readCacheHeader(path)

		return path, count, err
	}

	rows, count, err := rowsFn()
	if err != nil {
		return path, 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, 0, err
	}
	if err := writeCacheFile(path, size, count, rows, mode); err != nil {
		return path, 0, err
	}

	return path, count, nil
}
