// SPDX-License-Identifier: MIT

package rmq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylotree/rmq"
)

// bruteMin is the reference answer: leftmost position of the minimum.
func bruteMin(a []int, i, j int) int {
	min := i
	for x := i + 1; x <= j; x++ {
		if a[x] < a[min] {
			min = x
		}
	}
	return min
}

// checkAgainstBrute compares the index against the linear scan on a fixed
// set of ranges plus random ones.
func checkAgainstBrute(t *testing.T, a []int, rng *rand.Rand, samples int) {
	t.Helper()
	ix := rmq.New(a)
	n := len(a)

	// full range, single positions, prefix and suffix ranges
	if n > 0 {
		got, err := ix.Query(0, n-1)
		require.NoError(t, err)
		assert.Equal(t, bruteMin(a, 0, n-1), got, "full range, n=%d", n)
		for _, p := range []int{0, n / 2, n - 1} {
			got, err = ix.Query(p, p)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	}
	for s := 0; s < samples; s++ {
		i := rng.Intn(n)
		j := i + rng.Intn(n-i)
		got, err := ix.Query(i, j)
		require.NoError(t, err)
		want := bruteMin(a, i, j)
		if got != want {
			t.Fatalf("n=%d query(%d,%d): got %d (value %d), want %d (value %d)",
				n, i, j, got, a[got], want, a[want])
		}
	}
}

func TestQuery_RandomArrays(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 7, 8, 9, 16, 100, 112, 113, 128, 255, 256, 257, 1000, 5000, 10000} {
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(1000) - 500
		}
		checkAgainstBrute(t, a, rng, 400)
	}
}

// Few distinct values force constant tie-breaking across all table
// layers, including the superblock path.
func TestQuery_TiesResolveLeftmost(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{113, 600, 2000, 5000} {
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(3)
		}
		checkAgainstBrute(t, a, rng, 600)
	}
}

func TestQuery_AllEqual(t *testing.T) {
	a := make([]int, 2000)
	ix := rmq.New(a)
	rng := rand.New(rand.NewSource(3))
	for s := 0; s < 500; s++ {
		i := rng.Intn(len(a))
		j := i + rng.Intn(len(a)-i)
		got, err := ix.Query(i, j)
		require.NoError(t, err)
		assert.Equal(t, i, got, "query(%d,%d) on constant array", i, j)
	}
}

func TestQuery_SortedArrays(t *testing.T) {
	n := 1500
	asc := make([]int, n)
	desc := make([]int, n)
	for i := 0; i < n; i++ {
		asc[i] = i
		desc[i] = n - i
	}
	ixAsc := rmq.New(asc)
	ixDesc := rmq.New(desc)
	rng := rand.New(rand.NewSource(11))
	for s := 0; s < 300; s++ {
		i := rng.Intn(n)
		j := i + rng.Intn(n-i)
		got, err := ixAsc.Query(i, j)
		require.NoError(t, err)
		assert.Equal(t, i, got)
		got, err = ixDesc.Query(i, j)
		require.NoError(t, err)
		assert.Equal(t, j, got)
	}
}

func TestQuery_InvalidRange(t *testing.T) {
	ix := rmq.New([]int{3, 1, 2})

	_, err := ix.Query(2, 1)
	assert.ErrorIs(t, err, rmq.ErrInvalidRange)
	_, err = ix.Query(-1, 1)
	assert.ErrorIs(t, err, rmq.ErrInvalidRange)
	_, err = ix.Query(0, 3)
	assert.ErrorIs(t, err, rmq.ErrInvalidRange)

	big := rmq.New(make([]int, 500))
	_, err = big.Query(400, 200)
	assert.ErrorIs(t, err, rmq.ErrInvalidRange)
}

func TestQuery_EmptyInput(t *testing.T) {
	ix := rmq.New([]int(nil))
	assert.Equal(t, 0, ix.Len())
	_, err := ix.Query(0, 0)
	assert.ErrorIs(t, err, rmq.ErrInvalidRange)
}

// The index is generic over integer kinds; spot-check a couple.
func TestQuery_OtherIntegerKinds(t *testing.T) {
	u := []uint16{5, 0, 7, 0, 2}
	ixU := rmq.New(u)
	got, err := ixU.Query(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	d := make([]int8, 300)
	rng := rand.New(rand.NewSource(9))
	for i := range d {
		d[i] = int8(rng.Intn(256) - 128)
	}
	ixD := rmq.New(d)
	for s := 0; s < 200; s++ {
		i := rng.Intn(len(d))
		j := i + rng.Intn(len(d)-i)
		got, err = ixD.Query(i, j)
		require.NoError(t, err)
		min := i
		for x := i + 1; x <= j; x++ {
			if d[x] < d[min] {
				min = x
			}
		}
		assert.Equal(t, min, got)
	}
}
