// SPDX-License-Identifier: MIT

package rmq

// catalan holds the ballot numbers C(p,q): the number of lattice paths
// from (p,q) to (0,0) that never cross the diagonal. Column q on the
// diagonal is the q-th Catalan number. The triangle is consulted while
// coding microblock Cartesian-tree types, so ranks up to microSize
// suffice; catalan[microSize][microSize] is the number of distinct types.
var catalan = [microSize + 1][microSize + 1]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 1, 2, 3, 4, 5, 6, 7, 8},
	{0, 0, 2, 5, 9, 14, 20, 27, 35},
	{0, 0, 0, 5, 14, 28, 48, 75, 110},
	{0, 0, 0, 0, 14, 42, 90, 165, 275},
	{0, 0, 0, 0, 0, 42, 132, 297, 572},
	{0, 0, 0, 0, 0, 0, 132, 429, 1001},
	{0, 0, 0, 0, 0, 0, 0, 429, 1430},
	{0, 0, 0, 0, 0, 0, 0, 0, 1430},
}
