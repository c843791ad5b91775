// SPDX-License-Identifier: MIT

// Package rmq answers range-minimum queries over an integer slice in
// O(1) after O(n) preprocessing, using O(n) space.
//
// What:
//
//	Index[T] takes a slice A of any integer type and answers
//	Query(i, j) = the position of the minimum of A[i..j] (both ends
//	inclusive), ties resolved to the leftmost position.
//
// How:
//
//	The classic Fischer/Heun (CPM'06) succinct layout. The array is cut
//	into microblocks of 8, blocks of 16 and superblocks of 256 entries.
//	Each microblock is classified by the shape of its Cartesian tree
//	(a ballot-number code, at most C(8)=1430 types); per type one 8×8
//	bit table answers all in-microblock queries, shared by every
//	microblock of that type. Across blocks a sparse table of in-block
//	offsets spans up to one superblock; across superblocks a second,
//	much smaller sparse table of absolute positions finishes the job.
//	A query decomposes into at most two in-microblock lookups and a
//	handful of table reads, all O(1).
//
//	Inputs shorter than 113 entries skip the precomputation entirely
//	and fall back to a linear scan per query; at that size the scan is
//	faster than the machinery and costs no extra memory.
//
// Errors:
//
//	▸ ErrInvalidRange — Query with i > j or a bound outside [0, n).
//
// Complexity: New O(n) time and space, Query O(1) (O(j-i) in the small
// fallback regime).
package rmq
