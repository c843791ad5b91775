// SPDX-License-Identifier: MIT

package rmq

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrInvalidRange is returned by Query when i > j or a bound lies outside
// the indexed slice.
var ErrInvalidRange = errors.New("rmq: invalid range")

const (
	microSize = 1 << 3 // entries per microblock
	blockSize = 1 << 4 // entries per block
	superSize = 1 << 8 // entries per superblock

	// rows of the in-superblock sparse table: log2(superSize/blockSize)
	mDepth = 4
)

// Index answers range-minimum queries over a fixed slice of integers.
// Build one with New; a nil or empty Index rejects every query.
//
// The Index keeps its own copy of nothing: the input slice is referenced,
// not copied, and must not be mutated while the Index is in use.
type Index[T constraints.Integer] struct {
	values []T

	// naive skips all tables and scans per query; set for short inputs.
	naive bool

	// blockTypes[m] is the Cartesian-tree type of microblock m.
	blockTypes []uint16

	// pq is the per-type in-microblock query table, flattened row-major:
	// pq[type*microSize+j] is a bitmask of candidate minimum positions
	// for queries ending at in-block position j. pq[type*microSize]==1
	// marks a type whose row has not been computed yet.
	pq []uint8

	// m[k][b] is the offset of the minimum of blocks [b, b+2^k) relative
	// to the start of block b; spans never exceed one superblock.
	m [mDepth][]uint8

	// mPrime[k][s] is the absolute position of the minimum of
	// superblocks [s, s+2^k).
	mPrime [][]int
}

func microblockOf(i int) int { return i >> 3 }
func blockOf(i int) int      { return i >> 4 }
func superblockOf(i int) int { return i >> 8 }

// log2 is the floor base-2 logarithm, with log2(0) = 0 so that degenerate
// one-block spans resolve to a width-1 window.
func log2(v int) int {
	if v <= 0 {
		return 0
	}
	return bits.Len(uint(v)) - 1
}

// New builds a range-minimum index over values. The slice is retained by
// reference. Complexity: O(n) time and space.
func New[T constraints.Integer](values []T) *Index[T] {
	ix := &Index[T]{values: values}
	ix.init()
	return ix
}

// Len returns the number of indexed entries.
func (ix *Index[T]) Len() int { return len(ix.values) }

// Query returns the position of the minimum of values[i..j], both ends
// inclusive. Ties resolve to the leftmost position. Complexity: O(1).
func (ix *Index[T]) Query(i, j int) (int, error) {
	if i < 0 || j < i || j >= len(ix.values) {
		return 0, fmt.Errorf("%w: i=%d, j=%d, len=%d", ErrInvalidRange, i, j, len(ix.values))
	}
	if ix.naive {
		min := i
		for x := i + 1; x <= j; x++ {
			if ix.values[x] < ix.values[min] {
				min = x
			}
		}
		return min, nil
	}

	mbI := microblockOf(i)
	mbJ := microblockOf(j)
	sMi := mbI * microSize
	iPos := i - sMi

	if mbI == mbJ {
		// the whole range lives in one microblock
		mask := clearBits(ix.pqAt(ix.blockTypes[mbI], j-sMi), iPos)
		if mask == 0 {
			return j, nil
		}
		return sMi + lsb(mask), nil
	}

	// The range decomposes into up to four microblock pieces plus sparse
	// spans. Each piece contributes its leftmost minimum; the winner is
	// picked at the end by value, then by position, which keeps ties
	// leftmost across pieces regardless of evaluation order.
	var cand [9]int
	nc := 0

	// left in-microblock piece: [i, end of i's microblock]
	if mask := clearBits(ix.pqAt(ix.blockTypes[mbI], microSize-1), iPos); mask == 0 {
		cand[nc] = sMi + microSize - 1
	} else {
		cand[nc] = sMi + lsb(mask)
	}
	nc++

	// right in-microblock piece: [start of j's microblock, j]
	sMj := mbJ * microSize
	jPos := j - sMj
	if mask := ix.pqAt(ix.blockTypes[mbJ], jPos); mask == 0 {
		cand[nc] = j
	} else {
		cand[nc] = sMj + lsb(mask)
	}
	nc++

	if mbJ > mbI+1 {
		bI := blockOf(i)
		bJ := blockOf(j)
		sBi := bI * blockSize
		sBj := bJ * blockSize

		if sBi+microSize > i {
			// i sits in the first microblock of its block; the block's
			// second microblock is not covered yet
			if mask := ix.pqAt(ix.blockTypes[mbI+1], microSize-1); mask == 0 {
				cand[nc] = sBi + blockSize - 1
			} else {
				cand[nc] = sMi + microSize + lsb(mask)
			}
			nc++
		}
		if j >= sBj+microSize {
			// mirror case: the first microblock of j's block
			if mask := ix.pqAt(ix.blockTypes[mbJ-1], microSize-1); mask == 0 {
				cand[nc] = sMj - 1
			} else {
				cand[nc] = sBj + lsb(mask)
			}
			nc++
		}

		if bJ-bI > 1 {
			from := bI + 1 // first full block strictly inside the range
			if sBj-sBi-blockSize <= superSize {
				// one out-of-block query covers all full blocks
				k := log2(bJ - bI - 2)
				tt := 1 << k
				cand[nc] = ix.mAt(k, from)
				cand[nc+1] = ix.mAt(k, bJ-tt)
				nc += 2
			} else {
				// too wide for the block table: out-of-block queries up
				// to the nearest superblock boundaries, superblock table
				// in between
				sbI := superblockOf(i)
				sbJ := superblockOf(j)

				bTmp := blockOf((sbI + 1) * superSize)
				k := log2(bTmp - from)
				tt := 1 << k
				cand[nc] = ix.mAt(k, from)
				cand[nc+1] = ix.mAt(k, bTmp+1-tt)
				nc += 2

				bTmp = blockOf(sbJ * superSize)
				k = log2(bJ - bTmp)
				tt = 1 << k
				bTmp-- // one block further left is covered anyway
				cand[nc] = ix.mAt(k, bTmp)
				cand[nc+1] = ix.mAt(k, bJ-tt)
				nc += 2

				if sbJ > sbI+1 {
					k = log2(sbJ - sbI - 2)
					tt = 1 << k
					p := ix.mPrime[k][sbI+1]
					q := ix.mPrime[k][sbJ-tt]
					if ix.values[p] <= ix.values[q] {
						cand[nc] = p
					} else {
						cand[nc] = q
					}
					nc++
				}
			}
		}
	}

	best := cand[0]
	for _, c := range cand[1:nc] {
		if ix.values[c] < ix.values[best] || (ix.values[c] == ix.values[best] && c < best) {
			best = c
		}
	}
	return best, nil
}

// init builds the succinct tables, or flags the naive fallback when the
// input is too short for the fixed block geometry to pay off.
func (ix *Index[T]) init() {
	n := len(ix.values)
	if n == 0 {
		ix.naive = true
		return
	}

	microCount := microblockOf(n-1) + 1
	blockCount := blockOf(n-1) + 1
	superCount := superblockOf(n-1) + 1

	// The block geometry is fixed by machine-friendly powers of two, not
	// by the input size, so short inputs (under 113 entries) would build
	// tables bigger than the array itself. A plain scan wins there.
	if blockCount < superSize/(2*blockSize) {
		ix.naive = true
		return
	}

	a := ix.values

	// Microblock typing per Fischer/Heun: simulate pushing each entry
	// onto the rightmost path of the block's Cartesian tree, summing
	// ballot numbers for every popped node.
	ix.blockTypes = make([]uint16, microCount)
	ix.pq = make([]uint8, catalan[microSize][microSize]*microSize)
	for ty := 0; ty < catalan[microSize][microSize]; ty++ {
		ix.pq[ty*microSize] = 1 // impossible value, marks the row uncomputed
	}

	var rp [microSize + 1]T // rightmost path of the Cartesian tree
	var gstack [microSize]int
	z := 0
	for mb := 0; mb < microCount; mb++ {
		start := z
		end := start + microSize
		if end > n {
			end = n
		}

		q := microSize
		p := microSize - 1
		ty := 0
		rp[1] = a[z]
		for z++; z < end; z++ {
			p--
			// rp[0] is never read: the q-p-1 > 0 guard replaces the
			// minus-infinity stopper of the textbook formulation
			for q-p-1 > 0 && rp[q-p-1] > a[z] {
				ty += catalan[p][q]
				q--
			}
			rp[q-p] = a[z]
		}
		ix.blockTypes[mb] = uint16(ty)

		// First block of a type computes the shared query row (Alstrup
		// et al. SPAA'02): pq[ty][j] marks, bit by bit, the chain of
		// previous smaller-or-equal elements ending at j.
		if ix.pq[ty*microSize] == 1 {
			ix.pq[ty*microSize] = 0
			gs := 0
			for j := start; j < end; j++ {
				for gs > 0 && a[j] < a[gstack[gs-1]] {
					gs--
				}
				if gs > 0 {
					g := gstack[gs-1]
					ix.pq[ty*microSize+(j-start)] = ix.pq[ty*microSize+(g-start)] | uint8(1)<<(g%microSize)
				} else {
					ix.pq[ty*microSize+(j-start)] = 0
				}
				gstack[gs] = j
				gs++
			}
		}
	}

	// Row 0 of both sparse tables: per-block minimum offsets and
	// per-superblock minimum positions, one left-to-right sweep.
	for k := range ix.m {
		ix.m[k] = make([]uint8, blockCount)
	}
	mPrimeDepth := bits.Len(uint(superCount))
	ix.mPrime = make([][]int, mPrimeDepth)
	for k := range ix.mPrime {
		ix.mPrime[k] = make([]int, superCount)
	}

	z = 0
	q := 0 // position of the minimum in the current superblock
	g := 0 // index of the current superblock
	for b := 0; b < blockCount; b++ {
		start := z
		p := start // position of the minimum in the current block
		end := start + blockSize
		if end > n {
			end = n
		}
		if a[z] < a[q] {
			q = z
		}
		for z++; z < end; z++ {
			if a[z] < a[p] {
				p = z
			}
			if a[z] < a[q] {
				q = z
			}
		}
		ix.m[0][b] = uint8(p - start)
		if z%superSize == 0 || z == n {
			ix.mPrime[0][g] = q
			g++
			q = z
		}
	}

	// Doubling rows; <= keeps the leftmost minimum on ties.
	dist := 1
	for k := 1; k < mDepth; k++ {
		for b := 0; b < blockCount-dist; b++ {
			if a[ix.mAt(k-1, b)] <= a[ix.mAt(k-1, b+dist)] {
				ix.m[k][b] = ix.m[k-1][b]
			} else {
				ix.m[k][b] = ix.m[k-1][b+dist] + uint8(dist*blockSize)
			}
		}
		for b := blockCount - dist; b < blockCount; b++ {
			ix.m[k][b] = ix.m[k-1][b]
		}
		dist *= 2
	}

	dist = 1
	for k := 1; k < mPrimeDepth; k++ {
		for s := 0; s < superCount-dist; s++ {
			if a[ix.mPrime[k-1][s]] <= a[ix.mPrime[k-1][s+dist]] {
				ix.mPrime[k][s] = ix.mPrime[k-1][s]
			} else {
				ix.mPrime[k][s] = ix.mPrime[k-1][s+dist]
			}
		}
		for s := superCount - dist; s < superCount; s++ {
			ix.mPrime[k][s] = ix.mPrime[k-1][s]
		}
		dist *= 2
	}
}

// pqAt reads the in-microblock query mask for the given type and in-block
// end position.
func (ix *Index[T]) pqAt(ty uint16, j int) uint8 {
	return ix.pq[int(ty)*microSize+j]
}

// mAt resolves a block sparse-table entry to an absolute array position.
func (ix *Index[T]) mAt(k, b int) int {
	return b*blockSize + int(ix.m[k][b])
}

// clearBits drops the x least significant bits of mask.
func clearBits(mask uint8, x int) uint8 {
	return mask &^ (uint8(1)<<x - 1)
}

// lsb returns the position of the least significant set bit; mask must be
// non-zero.
func lsb(mask uint8) int {
	return bits.TrailingZeros8(mask)
}
