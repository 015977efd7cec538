package hashsearch_test

import (
	"context"
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2016/hashsearch"
)

func TestSum(t *testing.T) {
	d := hashsearch.Sum("abc", 3231929)
	assert.Equal(t, "00000155f8105dff7f56ee10fa9b9abd", hex.EncodeToString(d[:]))
	assert.True(t, hashsearch.FiveZeros(d))
}

func TestStretched(t *testing.T) {
	assert.Equal(t, "577571be4de9dcce85a041ba0410f29f", hashsearch.Stretched("abc0", 1))
	assert.Equal(t, "eec80a0c92dc8a0777c619d9bb51e910", hashsearch.Stretched("abc0", 2))
	assert.Equal(t, "16062ce768787384c81fe17a7a60c7e3", hashsearch.Stretched("abc0", 3))
	assert.Equal(t, "a107ff634856bb300138cac6568c0f24", hashsearch.Stretched("abc0", 2017))
}

func TestFirstMatch_FiveZeros(t *testing.T) {
	ctx := context.Background()
	m, err := hashsearch.FirstMatch(ctx, "abc", 3231000, hashsearch.FiveZeros,
		hashsearch.WithBatchSize(512), hashsearch.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, 3231929, m.N)
	assert.Equal(t, hashsearch.Sum("abc", 3231929), m.Digest)
}

func TestFirstMatch_LowestWins(t *testing.T) {
	// a loose predicate hits several times per batch; the parallel search
	// must agree with a sequential scan
	pred := func(d hashsearch.Digest) bool { return d[0] < 0x08 }
	want := -1
	for n := 100; ; n++ {
		if pred(hashsearch.Sum("xyz", n)) {
			want = n
			break
		}
	}

	for _, workers := range []int{1, 3, 8} {
		m, err := hashsearch.FirstMatch(context.Background(), "xyz", 100, pred,
			hashsearch.WithBatchSize(1000), hashsearch.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, want, m.N, "workers=%d", workers)
	}
}

func TestFirstMatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := hashsearch.FirstMatch(ctx, "abc", 0, func(hashsearch.Digest) bool { return false })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStream_InOrder(t *testing.T) {
	var got []int
	for n, h := range hashsearch.Stream(context.Background(), "abc", 1,
		hashsearch.WithBatchSize(7), hashsearch.WithWorkers(3)) {
		require.Equal(t, hashsearch.Stretched("abc"+strconv.Itoa(n), 1), h)
		got = append(got, n)
		if n == 20 {
			break
		}
	}
	require.Len(t, got, 21)
	for i, n := range got {
		assert.Equal(t, i, n)
	}
}

func TestStream_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	count := 0
	for range hashsearch.Stream(ctx, "abc", 1, hashsearch.WithBatchSize(4)) {
		count++
	}
	assert.Zero(t, count)
}

func TestOptions_Panic(t *testing.T) {
	assert.PanicsWithValue(t, hashsearch.ErrBadOption.Error(), func() {
		hashsearch.WithWorkers(0)(&hashsearch.Options{})
	})
	assert.PanicsWithValue(t, hashsearch.ErrBadOption.Error(), func() {
		hashsearch.WithBatchSize(-1)(&hashsearch.Options{})
	})
}
