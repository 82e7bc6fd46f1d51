// SPDX-License-Identifier: MIT

// Package binmat - interop with bitset libraries and content hashing.
//
// Purpose:
//   - Exchange masks with bits-and-blooms/bitset (same LSB-first uint64
//     layout, so conversion is a word copy) and RoaringBitmap (compressed
//     sets of flat row-major indices).
//   - Fingerprint a mask's content with xxhash so identical masks can be
//     grouped before an exact Equal check.
//
// AI-Hints:
//   - Padding bits never leak: every export masks the trailing partial word.
//   - Imports return errors for out-of-shape content; they never panic on data.

package binmat

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// liveWords evaluates the live words of x with padding bits cleared.
func liveWords(x Expr) []BitPack {
	size := Size(x)
	out := make([]BitPack, livePacks(size))
	for k := range out {
		out[k] = x.Bitpack(k)
	}
	if rem := size % PackSize; rem != 0 {
		out[len(out)-1] &= lowMask(rem)
	}

	return out
}

// ToBitSet exports x as a bitset of length Size(x); bit n is flat cell n.
// Complexity: O(size/64) word evaluations.
func ToBitSet(x Expr) *bitset.BitSet {
	return bitset.FromWithLength(uint(Size(x)), liveWords(x))
}

// FromBitSet builds a dynamically sized rows×cols matrix from bs.
// Bits of bs at positions ≥ rows*cols are an error, not silently dropped.
//
// Errors:
//   - ErrNilInput for a nil bs.
//   - ErrBadShape for negative extents.
//   - ErrOutOfRange when bs holds a set bit past the matrix size.
//
// Complexity: O(size/64).
func FromBitSet(bs *bitset.BitSet, rows, cols int) (*Matrix, error) {
	if bs == nil {
		return nil, fmt.Errorf("FromBitSet: %w", ErrNilInput)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromBitSet(%d,%d): %w", rows, cols, ErrBadShape)
	}
	size := rows * cols
	if n, ok := bs.NextSet(uint(size)); ok {
		return nil, fmt.Errorf("FromBitSet: bit %d outside %dx%d: %w", n, rows, cols, ErrOutOfRange)
	}
	m := New(rows, cols)
	copy(m.data[:livePacks(size)], bs.Words())

	return m, nil
}

// ToRoaring exports the flat indices of the true cells of x.
// MAIN DESCRIPTION:
//   - Sparse form of Which: a compressed set of i*Cols()+j.
//
// Implementation:
//   - Stage 1: reject sizes whose indices do not fit uint32.
//   - Stage 2: scan masked live words; peel set bits with TrailingZeros64.
//
// Errors:
//   - ErrTooLarge when Size(x) exceeds 2^32.
//
// Complexity:
//   - Time O(size/64 + count), Space O(compressed set).
func ToRoaring(x Expr) (*roaring.Bitmap, error) {
	size := Size(x)
	if uint64(size) > math.MaxUint32+1 {
		return nil, fmt.Errorf("ToRoaring: %d cells: %w", size, ErrTooLarge)
	}
	rb := roaring.New()
	for k, w := range liveWords(x) {
		base := uint32(k * PackSize)
		for w != 0 {
			rb.Add(base + uint32(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}

	return rb, nil
}

// FromRoaring builds a dynamically sized rows×cols matrix whose true cells
// are the flat indices held by rb.
//
// Errors:
//   - ErrNilInput for a nil rb.
//   - ErrBadShape for negative extents.
//   - ErrOutOfRange when rb holds an index ≥ rows*cols.
//
// Complexity: O(size/64 + cardinality).
func FromRoaring(rb *roaring.Bitmap, rows, cols int) (*Matrix, error) {
	if rb == nil {
		return nil, fmt.Errorf("FromRoaring: %w", ErrNilInput)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromRoaring(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := New(rows, cols)
	if rb.IsEmpty() {
		return m, nil
	}
	size := rows * cols
	if mx := rb.Maximum(); uint64(mx) >= uint64(size) {
		return nil, fmt.Errorf("FromRoaring: index %d outside %dx%d: %w", mx, rows, cols, ErrOutOfRange)
	}
	it := rb.Iterator()
	for it.HasNext() {
		n := int(it.Next())
		m.data[n/PackSize] |= BitPack(1) << uint(n%PackSize)
	}

	return m, nil
}

// Hash returns a 64-bit xxhash fingerprint of the shape and cells of x.
// Equal expressions hash equally; padding bits never contribute.
// Complexity: O(size/64).
func Hash(x Expr) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 16)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(x.Rows()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(x.Cols()))
	_, _ = d.Write(buf)
	for _, w := range liveWords(x) {
		buf = binary.LittleEndian.AppendUint64(buf[:0], w)
		_, _ = d.Write(buf)
	}

	return d.Sum64()
}
